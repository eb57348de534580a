package shell

import (
	"github.com/bnema/chatdeck/internal/domain/autostyle"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

// AutoStyleOptions turns the configured styler defaults into install options.
// The auto pass is always enabled for auto_unify sites.
func AutoStyleOptions(cfg config.AutoStyleConfig) autostyle.Options {
	opts := autostyle.DefaultOptions()
	opts.Presets = append([]string(nil), cfg.Presets...)
	opts.ShadowDOM = cfg.ShadowDOM
	opts.ForceInline = cfg.ForceInline

	auto := autostyle.AutoOptions{
		Background:   cfg.Background,
		BorderRadius: cfg.BorderRadius,
		Spacing:      cfg.Spacing,
	}
	if cfg.Limit > 0 {
		limit := cfg.Limit
		auto.Limit = &limit
	}
	opts.Auto = &auto
	return opts
}
