package shell

import (
	"fmt"
	"strings"

	"github.com/bnema/chatdeck/internal/domain/entity"
	siteurl "github.com/bnema/chatdeck/internal/domain/url"
)

// SelectSites picks the sites to open. Each arg is either a configured site
// ID or a URL; with no args every configured site is returned.
func SelectSites(configured []entity.Site, args []string) ([]entity.Site, error) {
	if len(args) == 0 {
		return append([]entity.Site(nil), configured...), nil
	}

	byID := make(map[string]entity.Site, len(configured))
	for _, s := range configured {
		byID[s.ID] = s
	}

	out := make([]entity.Site, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if s, ok := byID[arg]; ok {
			out = append(out, s)
			continue
		}
		site, err := siteFromURL(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, site)
	}
	return out, nil
}

func siteFromURL(raw string) (entity.Site, error) {
	if !siteurl.LooksLikeURL(raw) {
		return entity.Site{}, fmt.Errorf("%q is neither a configured site nor a URL", raw)
	}
	target := siteurl.Normalize(raw)
	host := siteurl.Host(target)
	if host == "" {
		return entity.Site{}, fmt.Errorf("%q has no host", raw)
	}
	return entity.Site{ID: host, Title: host, URL: target}, nil
}
