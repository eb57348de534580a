package config

import "github.com/bnema/chatdeck/internal/domain/entity"

const (
	defaultRelayAddr      = "127.0.0.1:8787"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultRequestTimeout = 120 // seconds
	defaultWindowWidth    = 1280
	defaultWindowHeight   = 860
	maxAutoStyleLimit     = 12
)

// DefaultSites returns the chat views opened when the config lists none.
func DefaultSites() []entity.Site {
	return []entity.Site{
		{ID: "chatgpt", Title: "ChatGPT", URL: "https://chatgpt.com/"},
		{ID: "claude", Title: "Claude", URL: "https://claude.ai/new"},
		{ID: "gemini", Title: "Gemini", URL: "https://gemini.google.com/app"},
		{ID: "mistral", Title: "Le Chat", URL: "https://chat.mistral.ai/chat"},
		{ID: "perplexity", Title: "Perplexity", URL: "https://www.perplexity.ai/"},
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Appearance: AppearanceConfig{
			ColorScheme: ThemeDefault,
		},
		Browser: BrowserConfig{
			Engine:       EngineChromium,
			WindowWidth:  defaultWindowWidth,
			WindowHeight: defaultWindowHeight,
		},
		Sites: DefaultSites(),
		Relay: RelayConfig{
			Addr:                  defaultRelayAddr,
			Provider:              ProviderOpenAI,
			Model:                 defaultOpenAIModel,
			RequestTimeoutSeconds: defaultRequestTimeout,
		},
		Unify: UnifyConfig{
			AutoStyle: AutoStyleConfig{
				Presets:      []string{"flattenPage"},
				Background:   true,
				BorderRadius: true,
				Spacing:      false,
				ShadowDOM:    true,
			},
		},
	}
}
