package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithFile(filepath.Join(configDir, "config.toml"))
}

// NewManagerWithFile creates a manager bound to an explicit config file.
func NewManagerWithFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// CHATDECK_RELAY_ADDR, CHATDECK_BROWSER_HEADLESS, ...
	v.SetEnvPrefix("CHATDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms shared with the logger bootstrap.
	if err := v.BindEnv("logging.level", "CHATDECK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CHATDECK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CHATDECK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CHATDECK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
			m.viper.ConfigFileUsed(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.viper.ConfigFileUsed(), createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reload unmarshals, completes, normalizes and validates the configuration.
// Must be called with m.mu held for write.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := fillPaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func fillPaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Unify.RulesFile == "" {
		rulesFile, err := GetRulesFile()
		if err != nil {
			return fmt.Errorf("failed to get rules path: %w", err)
		}
		config.Unify.RulesFile = rulesFile
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	if config.Browser.UserDataDir == "" {
		stateDir, err := GetStateDir()
		if err != nil {
			return fmt.Errorf("failed to get state directory: %w", err)
		}
		engine := strings.ToLower(strings.TrimSpace(config.Browser.Engine))
		if engine == "" {
			engine = EngineChromium
		}
		config.Browser.UserDataDir = filepath.Join(stateDir, engine)
	}
	return nil
}

func normalizeConfig(config *Config) {
	switch ColorScheme(strings.ToLower(string(config.Appearance.ColorScheme))) {
	case ThemePreferDark:
		config.Appearance.ColorScheme = ThemePreferDark
	case ThemePreferLight:
		config.Appearance.ColorScheme = ThemePreferLight
	default:
		config.Appearance.ColorScheme = ThemeDefault
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.Browser.Engine = strings.ToLower(strings.TrimSpace(config.Browser.Engine))
	if config.Browser.Engine == "" {
		config.Browser.Engine = EngineChromium
	}

	config.Relay.Provider = strings.ToLower(strings.TrimSpace(config.Relay.Provider))
	config.Relay.Model = strings.TrimSpace(config.Relay.Model)
	if config.Relay.Model == "" {
		switch config.Relay.Provider {
		case ProviderGemini:
			config.Relay.Model = defaultGeminiModel
		default:
			config.Relay.Model = defaultOpenAIModel
		}
	}

	for i := range config.Sites {
		s := &config.Sites[i]
		s.ID = strings.TrimSpace(s.ID)
		s.URL = strings.TrimSpace(s.URL)
		if s.Title == "" {
			s.Title = s.ID
		}
	}

	presets := config.Unify.AutoStyle.Presets[:0]
	for _, p := range config.Unify.AutoStyle.Presets {
		if p = strings.TrimSpace(p); p != "" {
			presets = append(presets, p)
		}
	}
	config.Unify.AutoStyle.Presets = presets
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Sites = append([]entity.Site(nil), m.config.Sites...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to the config file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.viper.ConfigFileUsed()
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path is resolved in fillPaths.
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)

	m.viper.SetDefault("appearance.color_scheme", string(defaults.Appearance.ColorScheme))

	m.viper.SetDefault("browser.engine", defaults.Browser.Engine)
	m.viper.SetDefault("browser.headless", defaults.Browser.Headless)
	m.viper.SetDefault("browser.fallback_system_browser", defaults.Browser.FallbackSystemBrowser)
	m.viper.SetDefault("browser.window_width", defaults.Browser.WindowWidth)
	m.viper.SetDefault("browser.window_height", defaults.Browser.WindowHeight)

	m.viper.SetDefault("sites", defaults.Sites)

	m.viper.SetDefault("relay.addr", defaults.Relay.Addr)
	m.viper.SetDefault("relay.provider", defaults.Relay.Provider)
	m.viper.SetDefault("relay.request_timeout_seconds", defaults.Relay.RequestTimeoutSeconds)

	m.viper.SetDefault("unify.auto_style.presets", defaults.Unify.AutoStyle.Presets)
	m.viper.SetDefault("unify.auto_style.background", defaults.Unify.AutoStyle.Background)
	m.viper.SetDefault("unify.auto_style.border_radius", defaults.Unify.AutoStyle.BorderRadius)
	m.viper.SetDefault("unify.auto_style.spacing", defaults.Unify.AutoStyle.Spacing)
	m.viper.SetDefault("unify.auto_style.limit", defaults.Unify.AutoStyle.Limit)
	m.viper.SetDefault("unify.auto_style.force_inline", defaults.Unify.AutoStyle.ForceInline)
	m.viper.SetDefault("unify.auto_style.shadow_dom", defaults.Unify.AutoStyle.ShadowDOM)
}
