package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column is one column of a static table.
type Column struct {
	Title string
	// MaxWidth truncates longer cells with an ellipsis. Zero means unbounded.
	MaxWidth int
}

// RenderTable renders rows as aligned columns under a highlighted header.
func RenderTable(theme *Theme, columns []Column, rows [][]string) string {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c.Title)
	}
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for i := range columns {
			var v string
			if i < len(row) {
				v = Truncate(row[i], columns[i].MaxWidth)
			}
			cells[r][i] = v
			widths[i] = max(widths[i], lipgloss.Width(v))
		}
	}

	header := theme.Highlight
	var b strings.Builder
	for i, c := range columns {
		b.WriteString("  ")
		b.WriteString(header.Width(widths[i]).Render(c.Title))
	}
	b.WriteByte('\n')
	for i := range columns {
		b.WriteString("  ")
		b.WriteString(theme.Subtle.Render(strings.Repeat("─", widths[i])))
	}
	for _, row := range cells {
		b.WriteByte('\n')
		for i, v := range row {
			b.WriteString("  ")
			b.WriteString(theme.Normal.Width(widths[i]).Render(v))
		}
	}
	return b.String()
}

// Truncate shortens s to width cells, ending with an ellipsis.
func Truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
