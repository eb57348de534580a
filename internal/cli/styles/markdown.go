package styles

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/bnema/chatdeck/internal/infrastructure/cache"
)

// renderCacheSize bounds how many rendered replies a renderer keeps. The chat
// view re-renders the whole transcript on every streamed delta.
const renderCacheSize = 256

// MarkdownRenderer renders assistant replies for the terminal.
type MarkdownRenderer struct {
	tr       *glamour.TermRenderer
	rendered *cache.LRU[string, string]
}

// NewMarkdownRenderer creates a renderer wrapping at width cells.
func NewMarkdownRenderer(theme *Theme, width int) (*MarkdownRenderer, error) {
	style := "light"
	if theme == nil || theme.Dark {
		style = "dark"
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &MarkdownRenderer{tr: tr, rendered: cache.NewLRU[string, string](renderCacheSize)}, nil
}

// Render returns md rendered, or md unchanged when rendering fails.
func (r *MarkdownRenderer) Render(md string) string {
	return r.rendered.GetOrSet(md, func() string {
		out, err := r.tr.Render(md)
		if err != nil {
			return md
		}
		return strings.TrimLeft(out, "\n")
	})
}
