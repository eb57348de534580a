package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/domain/repository"
	"github.com/bnema/chatdeck/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/chatdeck/internal/logging"
)

type siteOverrideRepo struct {
	queries *sqlc.Queries
}

// NewSiteOverrideRepository creates a new SQLite-backed override repository.
func NewSiteOverrideRepository(db *sql.DB) repository.SiteOverrideRepository {
	return &siteOverrideRepo{queries: sqlc.New(db)}
}

func (r *siteOverrideRepo) Save(ctx context.Context, o *entity.SiteOverride) error {
	log := logging.FromContext(ctx)
	if err := o.Validate(); err != nil {
		return err
	}

	log.Debug().Str("host", o.Host).Bool("enabled", o.Enabled).Msg("saving site override")

	updatedAt := o.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return r.queries.UpsertSiteOverride(ctx, sqlc.UpsertSiteOverrideParams{
		Host:      o.Host,
		UserCss:   o.UserCSS,
		UserJs:    o.UserJS,
		Enabled:   boolToInt(o.Enabled),
		UpdatedAt: updatedAt.UTC(),
	})
}

func (r *siteOverrideRepo) Get(ctx context.Context, host string) (*entity.SiteOverride, error) {
	row, err := r.queries.GetSiteOverride(ctx, host)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return overrideFromRow(row), nil
}

func (r *siteOverrideRepo) List(ctx context.Context) ([]*entity.SiteOverride, error) {
	rows, err := r.queries.ListSiteOverrides(ctx)
	if err != nil {
		return nil, err
	}

	overrides := make([]*entity.SiteOverride, len(rows))
	for i := range rows {
		overrides[i] = overrideFromRow(rows[i])
	}
	return overrides, nil
}

func (r *siteOverrideRepo) Delete(ctx context.Context, host string) error {
	return r.queries.DeleteSiteOverride(ctx, host)
}

func (r *siteOverrideRepo) SetEnabled(ctx context.Context, host string, enabled bool) error {
	n, err := r.queries.SetSiteOverrideEnabled(ctx, sqlc.SetSiteOverrideEnabledParams{
		Enabled:   boolToInt(enabled),
		UpdatedAt: time.Now().UTC(),
		Host:      host,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrOverrideNotFound
	}
	return nil
}

func overrideFromRow(row sqlc.SiteOverride) *entity.SiteOverride {
	return &entity.SiteOverride{
		Host:      row.Host,
		UserCSS:   row.UserCss,
		UserJS:    row.UserJs,
		Enabled:   row.Enabled != 0,
		UpdatedAt: row.UpdatedAt,
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
