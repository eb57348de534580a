package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topLevelTables(content string) []string {
	var roots []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			continue
		}
		root, _, _ := strings.Cut(strings.Trim(line, "[]"), ".")
		if len(roots) == 0 || roots[len(roots)-1] != root {
			roots = append(roots, root)
		}
	}
	return roots
}

func TestWriteConfigOrdered_LayoutAndReadable(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	require.NoError(t, WriteConfigOrdered(cfg, configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(content), "# chatdeck configuration."))
	assert.Equal(t,
		[]string{"database", "logging", "appearance", "browser", "relay", "unify", "sites"},
		topLevelTables(string(content)))

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, cfg.Relay.Addr, decoded.Relay.Addr)
	assert.Equal(t, cfg.Unify.AutoStyle, decoded.Unify.AutoStyle)
	require.Len(t, decoded.Sites, len(cfg.Sites))
	assert.Equal(t, "chatgpt", decoded.Sites[0].ID)
	assert.Equal(t, "perplexity", decoded.Sites[len(decoded.Sites)-1].ID)

	entries, err := os.ReadDir(filepath.Dir(configPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file left behind")
}

func TestOrderSections(t *testing.T) {
	input := `title = 'x'

[[sites]]
id = 'b'

[relay]
addr = '127.0.0.1:8787'

[zeta]
k = 1

[unify]
rules_file = ''

  [unify.auto_style]
  limit = 3

[appearance]
color_scheme = 'default'

[alpha]
k = 2

[[sites]]
id = 'a'
`

	got := orderSections(input)

	assert.True(t, strings.HasPrefix(got, "title = 'x'\n\n[appearance]"))
	assert.Equal(t, []string{"appearance", "relay", "unify", "alpha", "zeta", "sites"}, topLevelTables(got))
	assert.Less(t, strings.Index(got, "[unify]"), strings.Index(got, "[unify.auto_style]"))
	assert.Less(t, strings.Index(got, "id = 'b'"), strings.Index(got, "id = 'a'"), "array tables keep their order")
	assert.True(t, strings.HasSuffix(got, "id = 'a'\n"))
	assert.NotContains(t, got, "\n\n\n")
}

func TestJSONSchema_UsesTomlNames(t *testing.T) {
	out, err := JSONSchema()
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"color_scheme"`)
	assert.Contains(t, s, `"fallback_system_browser"`)
	assert.Contains(t, s, `"auto_unify"`)
	assert.NotContains(t, s, `"ColorScheme"`)
}
