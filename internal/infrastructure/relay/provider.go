package relay

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
)

// NewProvider builds the upstream provider selected by cfg.
func NewProvider(cfg config.RelayConfig, keys *KeyResolver) (port.ChatProvider, error) {
	httpClient := &http.Client{Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second}
	key := func(provider string) KeyFunc {
		return func() (string, error) { return keys.Resolve(provider) }
	}

	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAIProvider(key(config.ProviderOpenAI), cfg.Model, cfg.BaseURL, httpClient), nil
	case config.ProviderGemini:
		return NewGeminiProvider(key(config.ProviderGemini), cfg.Model, cfg.BaseURL, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown relay provider %q", cfg.Provider)
	}
}
