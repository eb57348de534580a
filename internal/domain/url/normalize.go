// Package url turns command-line site targets into URLs.
package url

import (
	"net/url"
	"strings"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

var schemes = []string{"http://", "https://", "file://"}

func hasScheme(input string) bool {
	lower := strings.ToLower(input)
	for _, s := range schemes {
		if strings.HasPrefix(lower, s) {
			return true
		}
	}
	return false
}

// Normalize adds https:// to targets without a scheme. A bare host gets a
// trailing slash so it reads as the site root.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || strings.Contains(input, "://") {
		return input
	}
	if !strings.Contains(input, "/") {
		input += "/"
	}
	return "https://" + input
}

// LooksLikeURL reports whether input names a web location rather than a
// configured site ID: an explicit scheme, or a host containing a dot or
// equal to localhost.
func LooksLikeURL(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" || strings.ContainsAny(input, " \t") {
		return false
	}
	if hasScheme(input) {
		return true
	}
	u, err := url.Parse("https://" + input)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return strings.Contains(host, ".") || host == "localhost"
}

// Host returns the rule-table host of rawURL, or "" when it has none.
func Host(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return ""
	}
	return entity.NormalizeHost(u.Hostname())
}
