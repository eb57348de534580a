package rules_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/domain/entity"
	repomocks "github.com/bnema/chatdeck/internal/domain/repository/mocks"
	"github.com/bnema/chatdeck/internal/domain/unify"
	"github.com/bnema/chatdeck/internal/infrastructure/rules"
)

const userRules = `
["claude.ai"]
hide = ".only-this"

["WWW.Other.ORG"]
js = "void 0"

["example.com"]
css = ["body { color: red }", "main { margin: 0 }"]
cssVars = { accentColor = "#f00" }

[["example.com".styleTweaks]]
selector = "header"
styles = { "border-radius" = "0" }
important = true
`

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults_CoverBuiltInHosts(t *testing.T) {
	table, err := rules.Defaults()
	require.NoError(t, err)

	for _, host := range []string{
		entity.WildcardHost, "chatgpt.com", "claude.ai", "gemini.google.com",
		"chat.mistral.ai", "perplexity.ai", "poe.com", "copilot.microsoft.com",
	} {
		_, ok := table[host]
		assert.True(t, ok, "missing built-in rule for %s", host)
	}
	assert.True(t, table.Wildcard().Flags[entity.FlagBaselineCSS])

	// Copies are independent.
	delete(table, "poe.com")
	again, err := rules.Defaults()
	require.NoError(t, err)
	assert.Contains(t, again, "poe.com")
}

func TestParse_StringOrListAndCaseSensitiveVars(t *testing.T) {
	table, err := rules.Parse([]byte(userRules))
	require.NoError(t, err)

	rule, ok := table.Lookup("www.example.com")
	require.True(t, ok)
	assert.Equal(t, entity.TextList{"body { color: red }", "main { margin: 0 }"}, rule.CSS)
	assert.Equal(t, map[string]string{"accentColor": "#f00"}, rule.CSSVars)
	require.Len(t, rule.StyleTweaks, 1)
	assert.Equal(t, "header", rule.StyleTweaks[0].Selector)
	assert.True(t, rule.StyleTweaks[0].Important)

	other, ok := table["other.org"]
	require.True(t, ok, "keys are normalized")
	assert.Equal(t, "void 0", other.JS)

	claude, ok := table.Lookup("claude.ai")
	require.True(t, ok)
	assert.Equal(t, entity.SelectorList{".only-this"}, claude.Hide)
}

func TestParse_ReportsPosition(t *testing.T) {
	_, err := rules.Parse([]byte("[\"x.com\"]\nhide = \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rules at line")
}

func TestParse_RejectsWrongShape(t *testing.T) {
	_, err := rules.Parse([]byte("[\"x.com\"]\nhide = 3\n"))
	require.Error(t, err)
}

func TestLoadFile_MissingIsEmpty(t *testing.T) {
	table, err := rules.LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestStore_UserRulesReplaceBuiltInHosts(t *testing.T) {
	store, err := rules.NewStore(writeRules(t, userRules), nil)
	require.NoError(t, err)

	table, err := store.Table(context.Background())
	require.NoError(t, err)

	claude := table["claude.ai"]
	assert.Equal(t, entity.SelectorList{".only-this"}, claude.Hide)
	assert.Empty(t, claude.ExtraCSS, "user host replaces the whole built-in rule")
	assert.Contains(t, table, "chatgpt.com")
	assert.Contains(t, table, "example.com")
}

func TestStore_ReloadsChangedFile(t *testing.T) {
	path := writeRules(t, "[\"a.com\"]\nhide = \".one\"\n")
	store, err := rules.NewStore(path, nil)
	require.NoError(t, err)

	table, err := store.Table(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.SelectorList{".one"}, table["a.com"].Hide)

	require.NoError(t, os.WriteFile(path, []byte("[\"a.com\"]\nhide = [\".one\", \".two\"]\n"), 0o644))
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	table, err = store.Table(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.SelectorList{".one", ".two"}, table["a.com"].Hide)

	require.NoError(t, os.Remove(path))
	table, err = store.Table(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, table, "a.com")
}

func TestStore_AppliesOverrides(t *testing.T) {
	repo := repomocks.NewMockSiteOverrideRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]*entity.SiteOverride{
		{Host: "claude.ai", UserCSS: "body{}", UserJS: "void 0", Enabled: true},
		{Host: "WWW.New.Example", UserCSS: "p{}", Enabled: false},
		{Host: entity.WildcardHost, UserCSS: "ignored"},
	}, nil)

	store, err := rules.NewStore("", repo)
	require.NoError(t, err)

	table, err := store.Table(context.Background())
	require.NoError(t, err)

	claude := table["claude.ai"]
	assert.Equal(t, "body{}", claude.UserCSS)
	assert.Equal(t, "void 0", claude.UserJS)
	assert.True(t, claude.UserEnabled)
	assert.NotEmpty(t, claude.Hide, "built-in fields survive the override")

	fresh := table["new.example"]
	assert.Equal(t, "p{}", fresh.UserCSS)
	assert.False(t, fresh.UserEnabled)

	assert.Empty(t, table.Wildcard().UserCSS)

	cfg := unify.Merge(table, "https://claude.ai/chat/1")
	assert.Equal(t, "body{}", cfg.UserCSS)
}

func TestStore_OverrideListError(t *testing.T) {
	repo := repomocks.NewMockSiteOverrideRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("database is locked"))

	store, err := rules.NewStore("", repo)
	require.NoError(t, err)

	_, err = store.Table(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list site overrides")
}

func TestJSONSchema_ListFieldsAcceptStringOrArray(t *testing.T) {
	data, err := rules.JSONSchema()
	require.NoError(t, err)

	var doc struct {
		Type                 string `json:"type"`
		AdditionalProperties struct {
			Properties map[string]struct {
				OneOf []map[string]any `json:"oneOf"`
			} `json:"properties"`
		} `json:"additionalProperties"`
		Defs map[string]any `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "object", doc.Type)
	props := doc.AdditionalProperties.Properties
	assert.Len(t, props["hide"].OneOf, 2)
	assert.Len(t, props["css"].OneOf, 2)
	assert.Contains(t, doc.Defs, "StyleTweak")
}
