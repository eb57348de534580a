// Package cli holds the dependencies shared by the chatdeck commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/infrastructure/colorscheme"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
	"github.com/bnema/chatdeck/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/chatdeck/internal/infrastructure/relay"
	"github.com/bnema/chatdeck/internal/infrastructure/rules"
	"github.com/bnema/chatdeck/internal/logging"
)

// App holds CLI dependencies. The database is opened on first use.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme

	db    *sqlite.LazyDB
	Rules *rules.Store
	Keys  *relay.KeyResolver

	Conversations *usecase.ManageConversationsUseCase
	Overrides     *usecase.ManageOverridesUseCase

	ctx context.Context
}

// NewApp loads the configuration and wires the CLI dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return NewAppWithManager(mgr)
}

// NewAppWithManager wires the CLI dependencies around an already loaded manager.
func NewAppWithManager(mgr *config.Manager) (*App, error) {
	cfg := mgr.Get()

	logger := logging.New(logConfig(cfg))
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	overrideRepo := sqlite.NewLazySiteOverrideRepository(db)

	store, err := rules.NewStore(cfg.Unify.RulesFile, overrideRepo)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	return &App{
		Config:        cfg,
		Manager:       mgr,
		Theme:         styles.NewTheme(prefersDark(cfg)),
		db:            db,
		Rules:         store,
		Keys:          relay.NewKeyResolver(cfg.Relay.EnvFile, relay.KeyringStore{}),
		Conversations: usecase.NewManageConversationsUseCase(sqlite.NewLazyConversationRepository(db)),
		Overrides:     usecase.NewManageOverridesUseCase(overrideRepo),
		ctx:           ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases the database if it was opened.
func (a *App) Close() error {
	return a.db.Close()
}

// logConfig keeps CLI output quiet: only warnings reach stderr unless the
// config or CHATDECK_LOG_LEVEL ask for more.
func logConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()
	lc.Format = cfg.Logging.Format
	lc.TimeFormat = "15:04:05"

	level := cfg.Logging.Level
	if env := os.Getenv("CHATDECK_LOG_LEVEL"); env != "" {
		level = env
	}
	lc.Level = logging.ParseLevel(level)

	if cfg.Logging.EnableFileLog && cfg.Logging.LogDir != "" {
		lc.FilePath = filepath.Join(cfg.Logging.LogDir, logging.SessionFilename(logging.GenerateSessionID()))
	}
	return lc
}

// prefersDark resolves the terminal theme from config and environment without
// touching D-Bus.
func prefersDark(cfg *config.Config) bool {
	r := colorscheme.NewResolver(colorscheme.NewConfigAdapter(staticConfig{cfg}))
	r.RegisterDetector(colorscheme.NewEnvDetector())
	return r.Resolve().PrefersDark
}

type staticConfig struct{ cfg *config.Config }

func (s staticConfig) Get() *config.Config { return s.cfg }
