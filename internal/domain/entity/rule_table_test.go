package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHost(t *testing.T) {
	tests := map[string]string{
		"WWW.Claude.AI":     "claude.ai",
		"chatgpt.com:443":   "chatgpt.com",
		"www.perplexity.ai": "perplexity.ai",
		"poe.com.":          "poe.com",
		"*":                 "*",
		"[::1]:8080":        "::1",
		"wwwexample.com":    "wwwexample.com",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeHost(in), in)
	}
}

func TestRuleTable_Lookup(t *testing.T) {
	table := RuleTable{
		WildcardHost: {JS: "w"},
		"claude.ai":  {JS: "c"},
	}

	rule, ok := table.Lookup("www.claude.ai")
	assert.True(t, ok)
	assert.Equal(t, "c", rule.JS)

	_, ok = table.Lookup("example.com")
	assert.False(t, ok)
	assert.Equal(t, "w", table.Wildcard().JS)
	assert.Equal(t, []string{"*", "claude.ai"}, table.Hosts())
}

func TestRuleTable_Normalized(t *testing.T) {
	table := RuleTable{"WWW.Poe.com": {JS: "p"}}
	assert.Equal(t, "p", table.Normalized()["poe.com"].JS)
}

func TestMergedConfig_IsEmpty(t *testing.T) {
	assert.True(t, MergedConfig{}.IsEmpty())
	assert.True(t, MergedConfig{Host: "x"}.IsEmpty())
	assert.False(t, MergedConfig{JS: "1"}.IsEmpty())
}
