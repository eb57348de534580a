package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/domain/repository"
)

// LazyConversationRepository wraps a conversation repository with lazy database initialization.
type LazyConversationRepository struct {
	provider port.DatabaseProvider
	repo     repository.ConversationRepository
	once     sync.Once
	initErr  error
}

// NewLazyConversationRepository creates a lazy-loading conversation repository.
func NewLazyConversationRepository(provider port.DatabaseProvider) repository.ConversationRepository {
	return &LazyConversationRepository{provider: provider}
}

func (r *LazyConversationRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewConversationRepository(db)
	})
	return r.initErr
}

func (r *LazyConversationRepository) Create(ctx context.Context, conv *entity.Conversation) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Create(ctx, conv)
}

func (r *LazyConversationRepository) FindByID(ctx context.Context, id entity.ConversationID) (*entity.Conversation, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByID(ctx, id)
}

func (r *LazyConversationRepository) List(ctx context.Context, limit int) ([]*entity.Conversation, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx, limit)
}

func (r *LazyConversationRepository) Rename(ctx context.Context, id entity.ConversationID, title string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Rename(ctx, id, title)
}

func (r *LazyConversationRepository) Delete(ctx context.Context, id entity.ConversationID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, id)
}

func (r *LazyConversationRepository) ReplaceMessages(
	ctx context.Context,
	id entity.ConversationID,
	msgs []entity.Message,
) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.ReplaceMessages(ctx, id, msgs)
}

func (r *LazyConversationRepository) Messages(ctx context.Context, id entity.ConversationID) ([]entity.Message, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Messages(ctx, id)
}

// LazySiteOverrideRepository wraps an override repository with lazy database initialization.
type LazySiteOverrideRepository struct {
	provider port.DatabaseProvider
	repo     repository.SiteOverrideRepository
	once     sync.Once
	initErr  error
}

// NewLazySiteOverrideRepository creates a lazy-loading override repository.
func NewLazySiteOverrideRepository(provider port.DatabaseProvider) repository.SiteOverrideRepository {
	return &LazySiteOverrideRepository{provider: provider}
}

func (r *LazySiteOverrideRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSiteOverrideRepository(db)
	})
	return r.initErr
}

func (r *LazySiteOverrideRepository) Save(ctx context.Context, o *entity.SiteOverride) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, o)
}

func (r *LazySiteOverrideRepository) Get(ctx context.Context, host string) (*entity.SiteOverride, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, host)
}

func (r *LazySiteOverrideRepository) List(ctx context.Context) ([]*entity.SiteOverride, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazySiteOverrideRepository) Delete(ctx context.Context, host string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, host)
}

func (r *LazySiteOverrideRepository) SetEnabled(ctx context.Context, host string, enabled bool) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SetEnabled(ctx, host, enabled)
}
