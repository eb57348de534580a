package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// ConversationsRenderer renders stored conversations.
type ConversationsRenderer struct {
	theme    *Theme
	markdown *MarkdownRenderer
}

// NewConversationsRenderer creates a renderer. markdown may be nil, in which
// case message bodies are printed verbatim.
func NewConversationsRenderer(theme *Theme, markdown *MarkdownRenderer) *ConversationsRenderer {
	return &ConversationsRenderer{theme: theme, markdown: markdown}
}

// RenderList renders the conversation listing.
func (r *ConversationsRenderer) RenderList(convs []*entity.Conversation) string {
	if len(convs) == 0 {
		return RenderEmpty(r.theme, "conversations")
	}
	rows := make([][]string, 0, len(convs))
	for _, c := range convs {
		rows = append(rows, []string{string(c.ID), c.Title, RelativeTime(c.UpdatedAt, time.Now())})
	}
	return RenderTable(r.theme, []Column{
		{Title: "ID"},
		{Title: "Title", MaxWidth: 48},
		{Title: "Updated"},
	}, rows)
}

// RenderTranscript renders a conversation and its messages.
func (r *ConversationsRenderer) RenderTranscript(conv *entity.Conversation, msgs []entity.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s %s\n", r.theme.Title.Render(conv.Title), r.theme.Subtle.Render(string(conv.ID)))
	if len(msgs) == 0 {
		b.WriteString("\n" + RenderEmpty(r.theme, "messages") + "\n")
		return b.String()
	}
	for _, m := range msgs {
		b.WriteString("\n")
		b.WriteString(r.RenderMessage(m))
	}
	return b.String()
}

// RenderMessage renders one message with its role label.
func (r *ConversationsRenderer) RenderMessage(m entity.Message) string {
	body := m.Content
	if r.markdown != nil {
		body = r.markdown.Render(body)
	} else {
		body = "  " + strings.ReplaceAll(body, "\n", "\n  ") + "\n"
	}
	return fmt.Sprintf("  %s\n%s", r.RoleLabel(m.Role), body)
}

// RoleLabel renders the speaker label of a message.
func (r *ConversationsRenderer) RoleLabel(role entity.Role) string {
	switch role {
	case entity.RoleUser:
		return r.theme.UserLabel.Render("you")
	case entity.RoleAssistant:
		return r.theme.AssistantLabel.Render("assistant")
	default:
		return r.theme.SystemLabel.Render(string(role))
	}
}

// RelativeTime formats t relative to now ("just now", "5m ago", "3d ago").
// Times older than a month are printed as dates.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("2006-01-02")
	}
}
