package colorscheme

import (
	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

// ConfigSource returns the current configuration; config.Manager satisfies it.
type ConfigSource interface {
	Get() *config.Config
}

// ConfigAdapter reads appearance.color_scheme from the live configuration so
// that hot reloads are honoured by the next Refresh.
type ConfigAdapter struct {
	source ConfigSource
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(source ConfigSource) *ConfigAdapter {
	return &ConfigAdapter{source: source}
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	if a == nil || a.source == nil {
		return ""
	}
	cfg := a.source.Get()
	if cfg == nil {
		return ""
	}
	return string(cfg.Appearance.ColorScheme)
}
