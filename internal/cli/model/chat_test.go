package model

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/chatdeck/internal/application/port"
	portmocks "github.com/bnema/chatdeck/internal/application/port/mocks"
	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/domain/entity"
)

// drive feeds cmd results back into the model until no command is left.
func drive(t *testing.T, m *ChatModel, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 100, "model did not settle")
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = m.Update(msg)
	}
}

func newChat(t *testing.T, provider port.ChatProvider) *ChatModel {
	t.Helper()
	uc := usecase.NewSendChatUseCase(provider, nil)
	return NewChatModel(context.Background(), styles.NewTheme(true), ChatConfig{Chat: uc, Model: "m1"})
}

func TestChatModel_StreamsReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := portmocks.NewMockChatProvider(ctrl)
	provider.EXPECT().Name().Return("fake").AnyTimes()
	provider.EXPECT().
		Stream(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req port.ChatRequest, onDelta func(string) error) error {
			assert.Equal(t, "m1", req.Model)
			assert.Equal(t, []entity.Message{{Role: entity.RoleUser, Content: "hi"}}, req.Messages)
			for _, d := range []string{"Hel", "lo"} {
				if err := onDelta(d); err != nil {
					return err
				}
			}
			return nil
		})

	m := newChat(t, provider)
	m.input.SetValue("  hi ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.streaming)
	assert.Empty(t, m.input.Value())

	drive(t, m, cmd)

	assert.False(t, m.streaming)
	require.NoError(t, m.Err())
	msgs := m.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, entity.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Hello", msgs[1].Content)
}

func TestChatModel_ShowsProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := portmocks.NewMockChatProvider(ctrl)
	provider.EXPECT().Name().Return("fake").AnyTimes()
	provider.EXPECT().
		Stream(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w for openai", port.ErrMissingAPIKey))

	m := newChat(t, provider)
	m.input.SetValue("hi")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drive(t, m, cmd)

	require.ErrorIs(t, m.Err(), port.ErrMissingAPIKey)
	assert.Len(t, m.Messages(), 1, "user message stays in the transcript")
	assert.Contains(t, m.View(), "API key")
}

func TestChatModel_IgnoresEmptyInputAndSendWhileStreaming(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := portmocks.NewMockChatProvider(ctrl)

	m := newChat(t, provider)
	m.input.SetValue("   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	m.streaming = true
	m.input.SetValue("queued")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "queued", m.input.Value())
}

func TestChatModel_LoadsHistory(t *testing.T) {
	m := newChat(t, portmocks.NewMockChatProvider(gomock.NewController(t)))
	_, cmd := m.Update(historyLoadedMsg{msgs: []entity.Message{
		{Role: entity.RoleUser, Content: "earlier question"},
		{Role: entity.RoleAssistant, Content: "earlier answer"},
	}})
	assert.Nil(t, cmd)
	assert.Len(t, m.Messages(), 2)
	assert.True(t, strings.Contains(m.viewport.View(), "earlier") || m.viewport.TotalLineCount() > 0)
}

func TestChatModel_Resize(t *testing.T) {
	m := newChat(t, portmocks.NewMockChatProvider(gomock.NewController(t)))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.viewport.Width)
	assert.Equal(t, 40-chromeHeight, m.viewport.Height)
}
