package cdp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"

	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
	"github.com/bnema/chatdeck/internal/logging"
)

// ErrBrowserClosed is returned when opening a page on a closed browser.
var ErrBrowserClosed = errors.New("browser closed")

// Browser owns the Chromium process (when launched) and its pages.
type Browser struct {
	cfg      config.BrowserConfig
	rod      *rod.Browser
	launcher *launcher.Launcher
	ctx      context.Context

	mu     sync.Mutex
	pages  map[string]*Page
	closed bool
}

// Start connects to cfg.DebuggerURL when set, otherwise launches Chromium.
func Start(ctx context.Context, cfg config.BrowserConfig) (*Browser, error) {
	log := logging.FromContext(ctx).With().Str("component", "cdp").Logger()

	b := &Browser{
		cfg:   cfg,
		ctx:   ctx,
		pages: make(map[string]*Page),
	}

	controlURL := cfg.DebuggerURL
	if controlURL != "" {
		resolved, err := launcher.ResolveURL(controlURL)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve debugger url %s: %w", controlURL, err)
		}
		controlURL = resolved
		log.Info().Str("control_url", controlURL).Msg("connecting to running browser")
	} else {
		b.launcher = newLauncher(ctx, cfg)
		url, err := b.launcher.Launch()
		if err != nil {
			return nil, fmt.Errorf("failed to launch chromium: %w", err)
		}
		controlURL = url
		log.Info().Int("pid", b.launcher.PID()).Msg("chromium launched")
	}

	browser := rod.New().ControlURL(controlURL).NoDefaultDevice().Context(ctx)
	if err := browser.Connect(); err != nil {
		b.killLauncher()
		return nil, fmt.Errorf("failed to connect to chromium: %w", err)
	}
	if err := (proto.TargetSetDiscoverTargets{Discover: true}).Call(browser); err != nil {
		_ = browser.Close()
		b.killLauncher()
		return nil, fmt.Errorf("failed to enable target discovery: %w", err)
	}
	b.rod = browser
	return b, nil
}

func newLauncher(ctx context.Context, cfg config.BrowserConfig) *launcher.Launcher {
	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		UserDataDir(cfg.UserDataDir).
		Delete("enable-automation").
		Set(flags.Flag("window-size"), strconv.Itoa(cfg.WindowWidth)+","+strconv.Itoa(cfg.WindowHeight))
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}
	return l
}

// OpenSite opens site in a new window and returns its surface.
func (b *Browser) OpenSite(ctx context.Context, site entity.Site) (*Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBrowserClosed
	}
	if existing, ok := b.pages[site.ID]; ok {
		return existing, nil
	}

	width, height := b.cfg.WindowWidth, b.cfg.WindowHeight
	rp, err := b.rod.Context(ctx).Page(proto.TargetCreateTarget{
		URL:       site.URL,
		NewWindow: !b.cfg.Headless,
		Width:     &width,
		Height:    &height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", site.URL, err)
	}

	page := newPage(b.ctx, site.ID, b.rod, rp, site.URL)
	page.OnDestroyed(func() {
		b.mu.Lock()
		if b.pages[site.ID] == page {
			delete(b.pages, site.ID)
		}
		b.mu.Unlock()
	})
	b.pages[site.ID] = page

	logging.FromContext(ctx).Debug().
		Str("component", "cdp").
		Str("site", site.ID).
		Str("url", site.URL).
		Msg("page opened")
	return page, nil
}

// Pages returns the open pages.
func (b *Browser) Pages() []*Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Page, 0, len(b.pages))
	for _, p := range b.pages {
		out = append(out, p)
	}
	return out
}

// Close closes every page, then the browser. A launched Chromium is killed;
// its profile directory is kept.
func (b *Browser) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	pages := make([]*Page, 0, len(b.pages))
	for _, p := range b.pages {
		pages = append(pages, p)
	}
	b.mu.Unlock()

	var errs []error
	for _, p := range pages {
		if b.launcher != nil {
			p.markDestroyed()
			continue
		}
		// Leave the attached browser running but close our tabs.
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close page %s: %w", p.ID(), err))
		}
	}
	if b.launcher != nil {
		if err := b.rod.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
		b.killLauncher()
	}
	return errors.Join(errs...)
}

func (b *Browser) killLauncher() {
	if b.launcher == nil {
		return
	}
	b.launcher.Kill()
}
