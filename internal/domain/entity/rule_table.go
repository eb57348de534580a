package entity

import (
	"net"
	"sort"
	"strings"
)

// WildcardHost is the rule-table key whose rule applies to every host.
const WildcardHost = "*"

// RuleTable maps a normalized host (or WildcardHost) to its rule.
type RuleTable map[string]UnifyRule

// NormalizeHost lower-cases a host, drops any port and trailing dot,
// and strips a leading "www.".
func NormalizeHost(host string) string {
	host = strings.TrimSpace(strings.ToLower(host))
	if host == WildcardHost {
		return host
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	host = strings.TrimSuffix(host, ".")
	return strings.TrimPrefix(host, "www.")
}

// Lookup returns the rule stored for host after normalization.
func (t RuleTable) Lookup(host string) (UnifyRule, bool) {
	if t == nil {
		return UnifyRule{}, false
	}
	rule, ok := t[NormalizeHost(host)]
	return rule, ok
}

// Wildcard returns the rule stored under the wildcard key.
func (t RuleTable) Wildcard() UnifyRule {
	return t[WildcardHost]
}

// Hosts returns the table keys in sorted order, wildcard first.
func (t RuleTable) Hosts() []string {
	hosts := make([]string, 0, len(t))
	for h := range t {
		hosts = append(hosts, h)
	}
	sort.Slice(hosts, func(i, j int) bool {
		if hosts[i] == WildcardHost || hosts[j] == WildcardHost {
			return hosts[i] == WildcardHost && hosts[j] != WildcardHost
		}
		return hosts[i] < hosts[j]
	})
	return hosts
}

// Clone returns a shallow copy of the table; rules are value types.
func (t RuleTable) Clone() RuleTable {
	out := make(RuleTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Normalized returns a copy of the table with every key normalized.
// When two keys collapse to the same host the later key in sorted order wins.
func (t RuleTable) Normalized() RuleTable {
	out := make(RuleTable, len(t))
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out[NormalizeHost(k)] = t[k]
	}
	return out
}
