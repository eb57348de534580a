package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/domain/repository"
	"github.com/bnema/chatdeck/internal/logging"
)

// ManageConversationsUseCase handles the local conversation store.
type ManageConversationsUseCase struct {
	convRepo repository.ConversationRepository
}

// NewManageConversationsUseCase creates a new conversation management use case.
func NewManageConversationsUseCase(convRepo repository.ConversationRepository) *ManageConversationsUseCase {
	return &ManageConversationsUseCase{convRepo: convRepo}
}

// Create stores a new conversation. An empty title gets the default one.
func (uc *ManageConversationsUseCase) Create(ctx context.Context, title string) (*entity.Conversation, error) {
	log := logging.FromContext(ctx)

	conv := entity.NewConversation(title)
	if err := uc.convRepo.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	log.Debug().Str("conversation_id", string(conv.ID)).Str("title", conv.Title).Msg("conversation created")
	return conv, nil
}

// Get returns the conversation and its messages.
func (uc *ManageConversationsUseCase) Get(
	ctx context.Context,
	id entity.ConversationID,
) (*entity.Conversation, []entity.Message, error) {
	conv, err := uc.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	msgs, err := uc.convRepo.Messages(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return conv, msgs, nil
}

// List returns the most recently updated conversations first.
func (uc *ManageConversationsUseCase) List(ctx context.Context, limit int) ([]*entity.Conversation, error) {
	convs, err := uc.convRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

// Rename changes the conversation title.
func (uc *ManageConversationsUseCase) Rename(ctx context.Context, id entity.ConversationID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: empty title", entity.ErrInvalidConversation)
	}
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.convRepo.Rename(ctx, id, title); err != nil {
		return fmt.Errorf("failed to rename conversation: %w", err)
	}
	return nil
}

// Delete removes the conversation and its messages.
func (uc *ManageConversationsUseCase) Delete(ctx context.Context, id entity.ConversationID) error {
	log := logging.FromContext(ctx)

	if err := uc.convRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	log.Debug().Str("conversation_id", string(id)).Msg("conversation deleted")
	return nil
}

// ReplaceMessages validates msgs, renumbers them from zero and stores them as
// the complete message set of the conversation.
func (uc *ManageConversationsUseCase) ReplaceMessages(
	ctx context.Context,
	id entity.ConversationID,
	msgs []entity.Message,
) error {
	for i := range msgs {
		if err := msgs[i].Validate(); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}

	if err := uc.convRepo.ReplaceMessages(ctx, id, entity.Renumber(id, msgs)); err != nil {
		return fmt.Errorf("failed to replace messages: %w", err)
	}
	return nil
}

// Messages returns the ordered messages of a conversation.
func (uc *ManageConversationsUseCase) Messages(ctx context.Context, id entity.ConversationID) ([]entity.Message, error) {
	if _, err := uc.find(ctx, id); err != nil {
		return nil, err
	}
	msgs, err := uc.convRepo.Messages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return msgs, nil
}

func (uc *ManageConversationsUseCase) find(ctx context.Context, id entity.ConversationID) (*entity.Conversation, error) {
	if id == "" {
		return nil, entity.ErrConversationNotFound
	}
	conv, err := uc.convRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrConversationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	if conv == nil {
		return nil, entity.ErrConversationNotFound
	}
	return conv, nil
}
