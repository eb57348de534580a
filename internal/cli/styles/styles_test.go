package styles_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/domain/entity"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	theme := styles.NewTheme(true)
	out := styles.RenderTable(theme, []styles.Column{{Title: "Host"}, {Title: "N"}}, [][]string{
		{"a.example", "1"},
		{"much-longer.example", "22"},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Host")
	col := strings.Index(lines[3], "22")
	assert.Equal(t, col, strings.Index(lines[2], "1"), "second column starts at the same offset")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", styles.Truncate("short", 10))
	assert.Equal(t, "abcd…", styles.Truncate("abcdefgh", 5))
	assert.Equal(t, "a b", styles.Truncate("a\nb", 0))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{4 * 24 * time.Hour, "4d ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, styles.RelativeTime(now.Add(-tt.ago), now))
	}
	assert.Contains(t, styles.RelativeTime(now.AddDate(0, -3, 0), now), "2025-12")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", styles.FormatBytes(512))
	assert.Equal(t, "1.5 KiB", styles.FormatBytes(1536))
	assert.Equal(t, "3.0 MiB", styles.FormatBytes(3<<20))
}

func TestRulesRenderer(t *testing.T) {
	theme := styles.NewTheme(false)
	r := styles.NewRulesRenderer(theme)

	out := r.RenderTable(entity.RuleTable{
		"*":           {Hide: entity.SelectorList{".ad"}},
		"claude.ai":   {JS: "x()", UserCSS: "a{}", UserEnabled: true},
		"chatgpt.com": {CSS: entity.TextList{"b{}"}},
	})
	assert.Less(t, strings.Index(out, "*"), strings.Index(out, "chatgpt.com"))
	assert.Less(t, strings.Index(out, "chatgpt.com"), strings.Index(out, "claude.ai"))
	assert.Contains(t, out, "on")

	merged := r.RenderMerged("https://claude.ai/new", entity.MergedConfig{
		Host:          "claude.ai",
		HideSelectors: []string{".banner"},
		CSSVars:       map[string]string{"--bg": "#000"},
		Flags:         map[string]bool{entity.FlagBaselineCSS: true},
	})
	assert.Contains(t, merged, "claude.ai")
	assert.Contains(t, merged, ".banner")
	assert.Contains(t, merged, "--bg: #000")
	assert.Contains(t, merged, entity.FlagBaselineCSS)

	assert.Contains(t, r.RenderTable(nil), "No rules")
}

func TestConversationsRenderer_Transcript(t *testing.T) {
	theme := styles.NewTheme(true)
	r := styles.NewConversationsRenderer(theme, nil)

	conv := &entity.Conversation{ID: "c1", Title: "Plans"}
	out := r.RenderTranscript(conv, []entity.Message{
		{Role: entity.RoleUser, Content: "hi"},
		{Role: entity.RoleAssistant, Content: "hello\nthere"},
	})
	assert.Contains(t, out, "Plans")
	assert.Less(t, strings.Index(out, "you"), strings.Index(out, "assistant"))
	assert.Contains(t, out, "  there")
}

func TestMarkdownRenderer(t *testing.T) {
	md, err := styles.NewMarkdownRenderer(styles.NewTheme(true), 60)
	require.NoError(t, err)

	out := md.Render("# Title\n\nsome **bold** text")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}

func TestRenderError(t *testing.T) {
	out := styles.RenderError(styles.NewTheme(true), errors.New("boom"))
	assert.Contains(t, out, "boom")
}
