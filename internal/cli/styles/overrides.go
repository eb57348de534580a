package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// RenderOverrides lists site overrides.
func RenderOverrides(theme *Theme, overrides []*entity.SiteOverride) string {
	if len(overrides) == 0 {
		return RenderEmpty(theme, "site overrides")
	}
	rows := make([][]string, 0, len(overrides))
	for _, o := range overrides {
		state := "off"
		if o.Enabled {
			state = "on"
		}
		rows = append(rows, []string{
			o.Host,
			state,
			fmt.Sprintf("%d B", len(o.UserCSS)),
			fmt.Sprintf("%d B", len(o.UserJS)),
			RelativeTime(o.UpdatedAt, time.Now()),
		})
	}
	return RenderTable(theme, []Column{
		{Title: "Host", MaxWidth: 40},
		{Title: "State"},
		{Title: "CSS"},
		{Title: "JS"},
		{Title: "Updated"},
	}, rows)
}

// RenderCode renders a titled block of generated code.
func RenderCode(theme *Theme, title, code string) string {
	if strings.TrimSpace(code) == "" {
		return RenderEmpty(theme, title)
	}
	return theme.Box.Render(theme.BoxHeader.Render(title) + "\n" + code)
}
