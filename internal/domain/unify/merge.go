// Package unify merges per-host unification rules and renders them into the
// stylesheet and script bundles injected into embedded chat views.
package unify

import (
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// Merge combines the wildcard rule and the rule for rawURL's host.
// A URL that cannot be parsed, or has no host, yields an empty config.
func Merge(table entity.RuleTable, rawURL string) entity.MergedConfig {
	host, ok := HostOf(rawURL)
	if !ok {
		return entity.MergedConfig{}
	}

	wildcard := table.Wildcard()
	rule := table[host]

	return entity.MergedConfig{
		Host:          host,
		HideSelectors: append(wildcard.Hide.Normalized(), rule.Hide.Normalized()...),
		CSSVars:       mergeMaps(wildcard.Variables(), rule.Variables()),
		CSS:           joinNonEmpty("\n", wildcard.StyleText(), rule.StyleText()),
		JS:            lo.Ternary(rule.JS != "", rule.JS, wildcard.JS),
		Flags:         mergeMaps(wildcard.Flags, rule.Flags),
		ClassTweaks:   concat(wildcard.ClassTweaks, rule.ClassTweaks),
		StyleTweaks:   concat(wildcard.StyleTweaks, rule.StyleTweaks),
		UserCSS:       rule.UserCSS,
		UserJS:        rule.UserJS,
		UserEnabled:   rule.UserEnabled,
	}
}

// HostOf extracts the normalized rule-table key for rawURL.
func HostOf(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	return entity.NormalizeHost(u.Hostname()), true
}

// mergeMaps shallow-merges base and over; over wins per key.
// Returns nil when both are empty.
func mergeMaps[V any](base, over map[string]V) map[string]V {
	if len(base) == 0 && len(over) == 0 {
		return nil
	}
	return lo.Assign(base, over)
}

func concat[T any](a, b []T) []T {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(lo.Compact(parts), sep)
}
