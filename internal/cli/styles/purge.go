package styles

import (
	"fmt"
)

// PurgeItem is one removable location.
type PurgeItem struct {
	Name   string
	Path   string
	Exists bool
	Size   int64
}

// RenderPurgeList renders what a purge would remove.
func RenderPurgeList(theme *Theme, items []PurgeItem) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		size := "-"
		if it.Exists {
			size = FormatBytes(it.Size)
		}
		rows = append(rows, []string{it.Name, it.Path, size})
	}
	return RenderTable(theme, []Column{
		{Title: "What"},
		{Title: "Path", MaxWidth: 60},
		{Title: "Size"},
	}, rows)
}

// FormatBytes formats a byte count with a binary unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
