// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/logging"
)

const (
	inputHeight   = 3
	chromeHeight  = inputHeight + 3
	minWrapWidth  = 40
	streamBacklog = 32
)

// ChatConfig holds the dependencies of a chat session.
type ChatConfig struct {
	Chat *usecase.SendChatUseCase
	// Conversations loads the history of ConversationID. Optional.
	Conversations  *usecase.ManageConversationsUseCase
	ConversationID entity.ConversationID
	Model          string
}

// ChatModel is the Bubble Tea model for the interactive chat.
type ChatModel struct {
	input    textarea.Model
	viewport viewport.Model
	renderer *styles.ConversationsRenderer

	messages  []entity.Message
	partial   strings.Builder
	streaming bool
	events    <-chan streamEvent
	cancel    context.CancelFunc
	err       error
	width     int
	height    int

	ctx   context.Context
	cfg   ChatConfig
	theme *styles.Theme
}

type streamEvent struct {
	delta string
	done  bool
	out   *usecase.SendChatOutput
	err   error
}

type streamEventMsg streamEvent

type historyLoadedMsg struct {
	msgs []entity.Message
	err  error
}

// NewChatModel creates a chat model.
func NewChatModel(ctx context.Context, theme *styles.Theme, cfg ChatConfig) *ChatModel {
	input := textarea.New()
	input.Placeholder = "Ask anything. Enter sends, Ctrl+J inserts a newline."
	input.ShowLineNumbers = false
	input.SetHeight(inputHeight)
	input.KeyMap.InsertNewline.SetKeys("ctrl+j")
	input.Focus()

	m := &ChatModel{
		input:    input,
		viewport: viewport.New(80, 20),
		ctx:      ctx,
		cfg:      cfg,
		theme:    theme,
		width:    80,
		height:   24,
	}
	m.setRenderer(80)
	return m
}

// Messages returns the transcript shown so far.
func (m *ChatModel) Messages() []entity.Message {
	return append([]entity.Message(nil), m.messages...)
}

// Err returns the last error shown in the status line.
func (m *ChatModel) Err() error { return m.err }

// Init implements tea.Model.
func (m *ChatModel) Init() tea.Cmd {
	if m.cfg.ConversationID == "" || m.cfg.Conversations == nil {
		return textarea.Blink
	}
	return tea.Batch(textarea.Blink, m.loadHistory)
}

func (m *ChatModel) loadHistory() tea.Msg {
	_, msgs, err := m.cfg.Conversations.Get(m.ctx, m.cfg.ConversationID)
	return historyLoadedMsg{msgs: msgs, err: err}
}

// Update implements tea.Model.
func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case "enter":
			return m, m.send()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.messages = msg.msgs
		}
		m.refresh()
		return m, nil

	case streamEventMsg:
		return m, m.handleStream(streamEvent(msg))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) send() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.streaming {
		return nil
	}
	m.input.Reset()
	m.err = nil
	m.messages = append(m.messages, entity.Message{Role: entity.RoleUser, Content: text})
	m.streaming = true
	m.partial.Reset()

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	events := make(chan streamEvent, streamBacklog)
	m.events = events

	input := usecase.SendChatInput{
		Messages:       m.Messages(),
		Model:          m.cfg.Model,
		ConversationID: m.cfg.ConversationID,
	}
	go func() {
		defer close(events)
		out, err := m.cfg.Chat.Stream(ctx, input, func(delta string) error {
			select {
			case events <- streamEvent{delta: delta}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		events <- streamEvent{done: true, out: out, err: err}
	}()

	m.refresh()
	return waitForEvent(events)
}

func waitForEvent(events <-chan streamEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return streamEventMsg(ev)
	}
}

func (m *ChatModel) handleStream(ev streamEvent) tea.Cmd {
	if !ev.done {
		m.partial.WriteString(ev.delta)
		m.refresh()
		return waitForEvent(m.events)
	}

	m.streaming = false
	m.cancel()
	m.cancel = nil
	if ev.err != nil {
		m.err = ev.err
		logging.FromContext(m.ctx).Debug().Err(ev.err).Msg("chat stream failed")
	} else {
		m.messages = append(m.messages, ev.out.Reply)
	}
	m.partial.Reset()
	m.refresh()
	return nil
}

func (m *ChatModel) resize(width, height int) {
	m.width, m.height = width, height
	m.input.SetWidth(width)
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeHeight, 1)
	m.setRenderer(width)
	m.refresh()
}

func (m *ChatModel) setRenderer(width int) {
	md, err := styles.NewMarkdownRenderer(m.theme, max(width-4, minWrapWidth))
	if err != nil {
		md = nil
	}
	m.renderer = styles.NewConversationsRenderer(m.theme, md)
}

func (m *ChatModel) refresh() {
	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(m.renderer.RenderMessage(msg))
		b.WriteString("\n")
	}
	if m.streaming {
		b.WriteString("  " + m.renderer.RoleLabel(entity.RoleAssistant) + "\n")
		b.WriteString("  " + strings.ReplaceAll(m.partial.String(), "\n", "\n  ") + m.theme.Subtle.Render("▍"))
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m *ChatModel) View() string {
	status := m.theme.Subtle.Render(fmt.Sprintf("  %s %d messages  enter send  pgup/pgdown scroll  esc quit", styles.IconChat, len(m.messages)))
	switch {
	case m.err != nil:
		status = m.theme.ErrorStyle.Render("  " + styles.IconX + " " + m.err.Error())
	case m.streaming:
		status = m.theme.Subtle.Render("  " + styles.IconClock + " thinking…")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), status, m.input.View())
}
