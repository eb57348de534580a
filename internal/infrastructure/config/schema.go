package config

import "github.com/bnema/chatdeck/internal/domain/entity"

// Config represents the complete configuration for chatdeck.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	// Browser controls the engine hosting the chat views.
	Browser BrowserConfig `mapstructure:"browser" toml:"browser" json:"browser"`
	// Sites lists the embedded chat views, opened in order.
	Sites []entity.Site `mapstructure:"sites" toml:"sites" json:"sites"`
	// Relay configures the local chat relay and its upstream provider.
	Relay RelayConfig `mapstructure:"relay" toml:"relay" json:"relay"`
	// Unify configures site unification and the standalone styler.
	Unify UnifyConfig `mapstructure:"unify" toml:"unify" json:"unify"`
}

// DatabaseConfig holds the conversation database location.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/chatdeck/chatdeck.sqlite when empty.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite database file"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/chatdeck/logs when empty.
	LogDir string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
}

// ColorScheme is the configured theme preference.
type ColorScheme string

const (
	ThemeDefault     ColorScheme = "default"
	ThemePreferDark  ColorScheme = "prefer-dark"
	ThemePreferLight ColorScheme = "prefer-light"
)

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	// ColorScheme overrides the desktop preference unless set to "default".
	ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
}

// BrowserConfig controls the Chromium instance.
type BrowserConfig struct {
	// Engine selects the web engine: chromium (DevTools protocol, supports
	// headless and auto styling) or webkitgtk (native GTK windows, needs a
	// build with the webkitgtk tag).
	Engine string `mapstructure:"engine" toml:"engine" json:"engine" jsonschema:"enum=chromium,enum=webkitgtk"`
	// Bin is the Chromium binary. Empty means auto-detect or download.
	Bin string `mapstructure:"bin" toml:"bin" json:"bin"`
	// DebuggerURL connects to an already running browser instead of launching one.
	DebuggerURL string `mapstructure:"debugger_url" toml:"debugger_url" json:"debugger_url"`
	Headless    bool   `mapstructure:"headless" toml:"headless" json:"headless"`
	// UserDataDir defaults to $XDG_STATE_HOME/chatdeck/<engine> when empty.
	UserDataDir string `mapstructure:"user_data_dir" toml:"user_data_dir" json:"user_data_dir"`
	// FallbackSystemBrowser opens the sites in the default browser when
	// Chromium cannot be started.
	FallbackSystemBrowser bool `mapstructure:"fallback_system_browser" toml:"fallback_system_browser" json:"fallback_system_browser"`
	WindowWidth           int  `mapstructure:"window_width" toml:"window_width" json:"window_width" jsonschema:"minimum=320"`
	WindowHeight          int  `mapstructure:"window_height" toml:"window_height" json:"window_height" jsonschema:"minimum=240"`
}

// Web engines.
const (
	EngineChromium  = "chromium"
	EngineWebKitGTK = "webkitgtk"
)

// Relay providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// RelayConfig configures the local chat relay.
type RelayConfig struct {
	Addr     string `mapstructure:"addr" toml:"addr" json:"addr"`
	Provider string `mapstructure:"provider" toml:"provider" json:"provider" jsonschema:"enum=openai,enum=gemini"`
	Model    string `mapstructure:"model" toml:"model" json:"model"`
	// BaseURL points the OpenAI provider at a compatible endpoint.
	BaseURL string `mapstructure:"base_url" toml:"base_url" json:"base_url"`
	// EnvFile is consulted for API keys after the process environment.
	EnvFile               string `mapstructure:"env_file" toml:"env_file" json:"env_file"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" toml:"request_timeout_seconds" json:"request_timeout_seconds" jsonschema:"minimum=1"`
}

// UnifyConfig configures injection rules and the standalone styler.
type UnifyConfig struct {
	// RulesFile defaults to $XDG_CONFIG_HOME/chatdeck/rules.toml when empty.
	RulesFile string          `mapstructure:"rules_file" toml:"rules_file" json:"rules_file"`
	AutoStyle AutoStyleConfig `mapstructure:"auto_style" toml:"auto_style" json:"auto_style"`
}

// AutoStyleConfig holds the styler defaults for sites with auto_unify.
type AutoStyleConfig struct {
	Presets      []string `mapstructure:"presets" toml:"presets" json:"presets"`
	Background   bool     `mapstructure:"background" toml:"background" json:"background"`
	BorderRadius bool     `mapstructure:"border_radius" toml:"border_radius" json:"border_radius"`
	Spacing      bool     `mapstructure:"spacing" toml:"spacing" json:"spacing"`
	// Limit caps auto-detected candidates. 0 uses the built-in default.
	Limit       int  `mapstructure:"limit" toml:"limit" json:"limit" jsonschema:"minimum=0,maximum=12"`
	ForceInline bool `mapstructure:"force_inline" toml:"force_inline" json:"force_inline"`
	ShadowDOM   bool `mapstructure:"shadow_dom" toml:"shadow_dom" json:"shadow_dom"`
}
