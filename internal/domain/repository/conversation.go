package repository

import (
	"context"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// ConversationRepository persists conversations and their messages.
type ConversationRepository interface {
	Create(ctx context.Context, conv *entity.Conversation) error
	FindByID(ctx context.Context, id entity.ConversationID) (*entity.Conversation, error)
	// List returns conversations by most recent update first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*entity.Conversation, error)
	Rename(ctx context.Context, id entity.ConversationID, title string) error

	// Delete removes the conversation and, by cascade, its messages.
	Delete(ctx context.Context, id entity.ConversationID) error

	// ReplaceMessages swaps the whole message set in one transaction.
	ReplaceMessages(ctx context.Context, id entity.ConversationID, msgs []entity.Message) error
	Messages(ctx context.Context, id entity.ConversationID) ([]entity.Message, error)
}
