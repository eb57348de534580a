package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/domain/repository"
	"github.com/bnema/chatdeck/internal/domain/unify"
	"github.com/bnema/chatdeck/internal/logging"
)

// ManageOverridesUseCase edits per-host user CSS/JS. Changes are picked up by
// the next injection pass.
type ManageOverridesUseCase struct {
	overrideRepo repository.SiteOverrideRepository
}

// NewManageOverridesUseCase creates a new override management use case.
func NewManageOverridesUseCase(overrideRepo repository.SiteOverrideRepository) *ManageOverridesUseCase {
	return &ManageOverridesUseCase{overrideRepo: overrideRepo}
}

// ResolveHost accepts either a bare host or a URL and returns the rule-table key.
func ResolveHost(target string) (string, error) {
	target = strings.TrimSpace(target)
	if strings.Contains(target, "://") {
		host, ok := unify.HostOf(target)
		if !ok {
			return "", fmt.Errorf("%w: cannot parse %q", entity.ErrInvalidOverride, target)
		}
		return host, nil
	}
	host := entity.NormalizeHost(target)
	if host == "" || host == entity.WildcardHost {
		return "", fmt.Errorf("%w: invalid host %q", entity.ErrInvalidOverride, target)
	}
	return host, nil
}

// SetCSS stores user CSS for the host. A new override starts enabled.
func (uc *ManageOverridesUseCase) SetCSS(ctx context.Context, target, css string) (*entity.SiteOverride, error) {
	return uc.update(ctx, target, func(o *entity.SiteOverride) { o.UserCSS = css })
}

// SetJS stores user JS for the host. A new override starts enabled.
func (uc *ManageOverridesUseCase) SetJS(ctx context.Context, target, js string) (*entity.SiteOverride, error) {
	return uc.update(ctx, target, func(o *entity.SiteOverride) { o.UserJS = js })
}

// Enable turns the user CSS/JS of the host on.
func (uc *ManageOverridesUseCase) Enable(ctx context.Context, target string) error {
	return uc.setEnabled(ctx, target, true)
}

// Disable keeps the stored CSS/JS but stops injecting it.
func (uc *ManageOverridesUseCase) Disable(ctx context.Context, target string) error {
	return uc.setEnabled(ctx, target, false)
}

// Get returns the override for the host, or nil when none exists.
func (uc *ManageOverridesUseCase) Get(ctx context.Context, target string) (*entity.SiteOverride, error) {
	host, err := ResolveHost(target)
	if err != nil {
		return nil, err
	}
	o, err := uc.overrideRepo.Get(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to get override: %w", err)
	}
	return o, nil
}

// List returns every stored override.
func (uc *ManageOverridesUseCase) List(ctx context.Context) ([]*entity.SiteOverride, error) {
	overrides, err := uc.overrideRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	return overrides, nil
}

// Clear deletes the override of the host.
func (uc *ManageOverridesUseCase) Clear(ctx context.Context, target string) error {
	log := logging.FromContext(ctx)

	host, err := ResolveHost(target)
	if err != nil {
		return err
	}
	if err := uc.overrideRepo.Delete(ctx, host); err != nil {
		return fmt.Errorf("failed to clear override: %w", err)
	}

	log.Info().Str("host", host).Msg("override cleared")
	return nil
}

func (uc *ManageOverridesUseCase) update(
	ctx context.Context,
	target string,
	apply func(o *entity.SiteOverride),
) (*entity.SiteOverride, error) {
	log := logging.FromContext(ctx)

	host, err := ResolveHost(target)
	if err != nil {
		return nil, err
	}

	o, err := uc.overrideRepo.Get(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to get override: %w", err)
	}
	if o == nil {
		o = &entity.SiteOverride{Host: host, Enabled: true}
	}
	apply(o)
	o.UpdatedAt = time.Now().UTC()

	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := uc.overrideRepo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to save override: %w", err)
	}

	log.Info().Str("host", host).Bool("enabled", o.Enabled).Msg("override saved")
	return o, nil
}

func (uc *ManageOverridesUseCase) setEnabled(ctx context.Context, target string, enabled bool) error {
	host, err := ResolveHost(target)
	if err != nil {
		return err
	}
	if err := uc.overrideRepo.SetEnabled(ctx, host, enabled); err != nil {
		return fmt.Errorf("failed to update override: %w", err)
	}
	return nil
}
