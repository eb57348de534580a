// Package shell runs the chat deck: one browser window per configured site,
// each kept unified with the rule table and the desktop theme. The windows
// come from Chromium over the DevTools protocol or from WebKitGTK.
package shell

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pkg/browser"

	"github.com/bnema/chatdeck/internal/application/usecase"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
	"github.com/bnema/chatdeck/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/chatdeck/internal/infrastructure/rules"
	"github.com/bnema/chatdeck/internal/logging"
)

// ErrNoSites is returned by Run when there is nothing to open.
var ErrNoSites = errors.New("no sites to open")

// Shell owns the engine and everything attached to its pages.
type Shell struct {
	mgr   *config.Manager
	db    *sqlite.LazyDB
	rules *rules.Store
	theme *themeStack

	injector *usecase.UnifyInjector

	startEngine func(context.Context, config.BrowserConfig) (engine, error)
	openURL     func(string) error

	mu    sync.Mutex
	views []*view
}

// New wires the rule store, database and theme resolver. Nothing is launched
// until Run.
func New(ctx context.Context, mgr *config.Manager) (*Shell, error) {
	ctx = logging.WithComponent(ctx, "shell")
	cfg := mgr.Get()

	db := sqlite.NewLazyDB(cfg.Database.Path)
	store, err := rules.NewStore(cfg.Unify.RulesFile, sqlite.NewLazySiteOverrideRepository(db))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	theme := newThemeStack(ctx, mgr)

	return &Shell{
		mgr:         mgr,
		db:          db,
		rules:       store,
		theme:       theme,
		injector:    usecase.NewUnifyInjector(store, theme.resolver),
		startEngine: startEngine,
		openURL:     browser.OpenURL,
	}, nil
}

// Run opens sites and blocks until ctx is done or every window was closed.
func (s *Shell) Run(ctx context.Context, sites []entity.Site) error {
	ctx = logging.WithComponent(ctx, "shell")
	log := logging.FromContext(ctx)
	timer := NewStartupTimer()

	if len(sites) == 0 {
		return ErrNoSites
	}
	cfg := s.mgr.Get()

	eng, err := s.startEngine(ctx, cfg.Browser)
	timer.Mark("browser")
	if err != nil {
		if !cfg.Browser.FallbackSystemBrowser {
			return fmt.Errorf("failed to start %s engine: %w", cfg.Browser.Engine, err)
		}
		log.Warn().Err(err).Str("engine", cfg.Browser.Engine).Msg("browser unavailable, opening sites in the system browser")
		return s.openFallback(ctx, sites)
	}
	log.Info().Str("engine", eng.Name()).Msg("engine started")
	defer func() {
		if closeErr := eng.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close browser")
		}
	}()

	var wg sync.WaitGroup
	for _, site := range sites {
		v, openErr := s.openView(ctx, eng, site)
		if openErr != nil {
			log.Error().Err(openErr).Str("site", site.ID).Msg("failed to open site")
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-v.attachment.Done()
		}()
	}
	timer.Mark("sites")
	timer.Log(ctx)

	if len(s.openViews()) == 0 {
		return fmt.Errorf("failed to open any of %d sites", len(sites))
	}

	allClosed := make(chan struct{})
	go func() {
		wg.Wait()
		close(allClosed)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case <-allClosed:
		log.Info().Msg("all windows closed")
	}
	s.closeViews()
	return nil
}

func (s *Shell) openFallback(ctx context.Context, sites []entity.Site) error {
	var errs []error
	for _, site := range sites {
		if err := s.openURL(site.URL); err != nil {
			errs = append(errs, fmt.Errorf("open %s: %w", site.ID, err))
			continue
		}
		logging.FromContext(ctx).Info().Str("site", site.ID).Str("url", site.URL).Msg("opened in system browser")
	}
	return errors.Join(errs...)
}

func (s *Shell) openViews() []*view {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*view(nil), s.views...)
}

func (s *Shell) closeViews() {
	s.mu.Lock()
	views := s.views
	s.views = nil
	s.mu.Unlock()

	for _, v := range views {
		v.close()
	}
}

// Close releases the theme watcher and the database.
func (s *Shell) Close() error {
	s.closeViews()
	return errors.Join(s.theme.Close(), s.db.Close())
}
