package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/domain/repository"
	"github.com/bnema/chatdeck/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/chatdeck/internal/logging"
)

type conversationRepo struct {
	db      *sql.DB
	queries *sqlc.Queries
}

// NewConversationRepository creates a new SQLite-backed conversation repository.
func NewConversationRepository(db *sql.DB) repository.ConversationRepository {
	return &conversationRepo{db: db, queries: sqlc.New(db)}
}

func (r *conversationRepo) Create(ctx context.Context, conv *entity.Conversation) error {
	log := logging.FromContext(ctx)
	if err := conv.Validate(); err != nil {
		return err
	}

	log.Debug().Str("conversation_id", string(conv.ID)).Msg("creating conversation")

	updatedAt := conv.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = conv.CreatedAt
	}
	return r.queries.InsertConversation(ctx, sqlc.InsertConversationParams{
		ID:        string(conv.ID),
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt.UTC(),
		UpdatedAt: updatedAt.UTC(),
	})
}

func (r *conversationRepo) FindByID(ctx context.Context, id entity.ConversationID) (*entity.Conversation, error) {
	row, err := r.queries.GetConversationByID(ctx, string(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrConversationNotFound
		}
		return nil, err
	}
	return conversationFromRow(row), nil
}

func (r *conversationRepo) List(ctx context.Context, limit int) ([]*entity.Conversation, error) {
	// SQLite treats a negative LIMIT as no limit.
	queryLimit := int64(-1)
	if limit > 0 {
		queryLimit = int64(limit)
	}
	rows, err := r.queries.ListConversations(ctx, queryLimit)
	if err != nil {
		return nil, err
	}

	convs := make([]*entity.Conversation, len(rows))
	for i := range rows {
		convs[i] = conversationFromRow(rows[i])
	}
	return convs, nil
}

func (r *conversationRepo) Rename(ctx context.Context, id entity.ConversationID, title string) error {
	n, err := r.queries.RenameConversation(ctx, sqlc.RenameConversationParams{
		Title:     title,
		UpdatedAt: time.Now().UTC(),
		ID:        string(id),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrConversationNotFound
	}
	return nil
}

func (r *conversationRepo) Delete(ctx context.Context, id entity.ConversationID) error {
	log := logging.FromContext(ctx)

	n, err := r.queries.DeleteConversation(ctx, string(id))
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrConversationNotFound
	}

	log.Debug().Str("conversation_id", string(id)).Msg("deleted conversation")
	return nil
}

func (r *conversationRepo) ReplaceMessages(ctx context.Context, id entity.ConversationID, msgs []entity.Message) error {
	log := logging.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("replace rollback reported non-terminal error")
		}
	}()

	txQueries := r.queries.WithTx(tx)
	n, err := txQueries.TouchConversation(ctx, sqlc.TouchConversationParams{
		UpdatedAt: time.Now().UTC(),
		ID:        string(id),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrConversationNotFound
	}

	if err := txQueries.DeleteMessages(ctx, string(id)); err != nil {
		return err
	}
	for i := range msgs {
		m := msgs[i]
		if err := m.Validate(); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		createdAt := m.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		if err := txQueries.InsertMessage(ctx, sqlc.InsertMessageParams{
			ConversationID: string(id),
			Position:       int64(m.Position),
			Role:           string(m.Role),
			Content:        m.Content,
			CreatedAt:      createdAt.UTC(),
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace transaction: %w", err)
	}

	log.Debug().Str("conversation_id", string(id)).Int("messages", len(msgs)).Msg("replaced messages")
	return nil
}

func (r *conversationRepo) Messages(ctx context.Context, id entity.ConversationID) ([]entity.Message, error) {
	rows, err := r.queries.ListMessages(ctx, string(id))
	if err != nil {
		return nil, err
	}

	msgs := make([]entity.Message, len(rows))
	for i, row := range rows {
		msgs[i] = entity.Message{
			ConversationID: entity.ConversationID(row.ConversationID),
			Position:       int(row.Position),
			Role:           entity.Role(row.Role),
			Content:        row.Content,
			CreatedAt:      row.CreatedAt,
		}
	}
	return msgs, nil
}

func conversationFromRow(row sqlc.Conversation) *entity.Conversation {
	return &entity.Conversation{
		ID:        entity.ConversationID(row.ID),
		Title:     row.Title,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
