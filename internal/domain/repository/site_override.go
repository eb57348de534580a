package repository

import (
	"context"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// SiteOverrideRepository persists user CSS/JS overrides keyed by host.
type SiteOverrideRepository interface {
	// Save inserts or replaces the override for its host.
	Save(ctx context.Context, o *entity.SiteOverride) error
	// Get returns nil, nil when the host has no override.
	Get(ctx context.Context, host string) (*entity.SiteOverride, error)
	List(ctx context.Context) ([]*entity.SiteOverride, error)
	Delete(ctx context.Context, host string) error
	SetEnabled(ctx context.Context, host string, enabled bool) error
}
