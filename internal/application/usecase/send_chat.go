package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/logging"
)

// ErrInvalidChatRequest marks requests rejected before reaching the provider.
var ErrInvalidChatRequest = errors.New("invalid chat request")

// SendChatInput contains parameters for one chat exchange.
type SendChatInput struct {
	Messages []entity.Message
	Model    string

	// ConversationID, when set, persists the exchange into that conversation.
	ConversationID entity.ConversationID
}

// SendChatOutput contains the result of a chat exchange.
type SendChatOutput struct {
	Reply        entity.Message
	Model        string
	FinishReason string
	Persisted    bool
}

// SendChatUseCase relays a chat exchange to the upstream provider.
type SendChatUseCase struct {
	provider port.ChatProvider
	convs    *ManageConversationsUseCase
}

// NewSendChatUseCase creates a chat use case. convs may be nil, in which case
// exchanges are never persisted.
func NewSendChatUseCase(provider port.ChatProvider, convs *ManageConversationsUseCase) *SendChatUseCase {
	return &SendChatUseCase{provider: provider, convs: convs}
}

// Execute sends the messages and waits for the complete reply.
func (uc *SendChatUseCase) Execute(ctx context.Context, input SendChatInput) (*SendChatOutput, error) {
	log := logging.FromContext(ctx)

	req, err := uc.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	resp, err := uc.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s completion failed: %w", uc.provider.Name(), err)
	}

	out := &SendChatOutput{
		Reply:        assistantMessage(resp.Content),
		Model:        resp.Model,
		FinishReason: resp.FinishReason,
	}
	out.Persisted = uc.persist(ctx, input, out.Reply)

	log.Debug().
		Str("provider", uc.provider.Name()).
		Str("model", out.Model).
		Int("reply_len", len(out.Reply.Content)).
		Msg("chat completed")
	return out, nil
}

// Stream sends the messages and forwards every delta to onDelta. The full
// reply is persisted only when the stream completes.
func (uc *SendChatUseCase) Stream(
	ctx context.Context,
	input SendChatInput,
	onDelta func(delta string) error,
) (*SendChatOutput, error) {
	req, err := uc.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	var content strings.Builder
	err = uc.provider.Stream(ctx, req, func(delta string) error {
		content.WriteString(delta)
		if onDelta != nil {
			return onDelta(delta)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s stream failed: %w", uc.provider.Name(), err)
	}

	out := &SendChatOutput{
		Reply: assistantMessage(content.String()),
		Model: req.Model,
	}
	out.Persisted = uc.persist(ctx, input, out.Reply)
	return out, nil
}

func (uc *SendChatUseCase) prepare(ctx context.Context, input SendChatInput) (port.ChatRequest, error) {
	if len(input.Messages) == 0 {
		return port.ChatRequest{}, fmt.Errorf("%w: no messages", ErrInvalidChatRequest)
	}
	for i := range input.Messages {
		m := input.Messages[i]
		if !m.Role.Valid() {
			return port.ChatRequest{}, fmt.Errorf("%w: message %d has role %q", ErrInvalidChatRequest, i, m.Role)
		}
		if strings.TrimSpace(m.Content) == "" {
			return port.ChatRequest{}, fmt.Errorf("%w: message %d is empty", ErrInvalidChatRequest, i)
		}
	}
	if input.Messages[len(input.Messages)-1].Role == entity.RoleAssistant {
		return port.ChatRequest{}, fmt.Errorf("%w: last message must not be from the assistant", ErrInvalidChatRequest)
	}

	if input.ConversationID != "" {
		if uc.convs == nil {
			return port.ChatRequest{}, fmt.Errorf("%w: conversation storage disabled", ErrInvalidChatRequest)
		}
		if _, err := uc.convs.find(ctx, input.ConversationID); err != nil {
			return port.ChatRequest{}, fmt.Errorf("%w: %w", ErrInvalidChatRequest, err)
		}
	}

	return port.ChatRequest{Model: input.Model, Messages: input.Messages}, nil
}

// persist stores the exchange. A storage failure does not fail the exchange:
// the reply was already produced.
func (uc *SendChatUseCase) persist(ctx context.Context, input SendChatInput, reply entity.Message) bool {
	if input.ConversationID == "" || uc.convs == nil {
		return false
	}
	log := logging.FromContext(ctx)

	msgs := make([]entity.Message, 0, len(input.Messages)+1)
	msgs = append(msgs, input.Messages...)
	msgs = append(msgs, reply)

	if err := uc.convs.ReplaceMessages(ctx, input.ConversationID, msgs); err != nil {
		log.Warn().Err(err).Str("conversation_id", string(input.ConversationID)).Msg("failed to persist chat exchange")
		return false
	}
	return true
}

func assistantMessage(content string) entity.Message {
	return entity.Message{
		Role:      entity.RoleAssistant,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
