package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderSuccess renders a one-line success message.
func RenderSuccess(theme *Theme, msg string) string {
	return fmt.Sprintf("  %s %s", theme.SuccessStyle.Render(IconCheck), theme.Normal.Render(msg))
}

// RenderError renders a one-line error message.
func RenderError(theme *Theme, err error) string {
	return fmt.Sprintf("  %s %s", theme.ErrorStyle.Render(IconX), theme.ErrorStyle.Render(err.Error()))
}

// RenderInfo renders a one-line informational message.
func RenderInfo(theme *Theme, msg string) string {
	return fmt.Sprintf("  %s %s", lipgloss.NewStyle().Foreground(theme.Accent).Render(IconInfo), theme.Subtle.Render(msg))
}

// RenderEmpty renders the placeholder for an empty listing.
func RenderEmpty(theme *Theme, what string) string {
	return theme.Subtle.Render(fmt.Sprintf("  No %s.", what))
}
