//go:build webkitgtk

package webkitgtk

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
	"github.com/bnema/chatdeck/internal/logging"
)

// Engine owns the GTK main loop and one window per opened site.
type Engine struct {
	cfg  config.BrowserConfig
	ctx  context.Context
	done chan struct{}

	// Main thread only.
	loop    *glib.MainLoop
	session *webkit.NetworkSession

	mu     sync.Mutex
	pages  map[string]*Page
	closed bool
}

// Start initializes GTK on a dedicated OS thread and runs its main loop
// there until Close.
func Start(ctx context.Context, cfg config.BrowserConfig) (*Engine, error) {
	e := &Engine{
		cfg:   cfg,
		ctx:   ctx,
		done:  make(chan struct{}),
		pages: make(map[string]*Page),
	}

	ready := make(chan error, 1)
	go e.run(ready)
	if err := <-ready; err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Str("component", "webkitgtk").
		Str("data_dir", cfg.UserDataDir).
		Msg("gtk main loop running")
	return e, nil
}

func (e *Engine) run(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(e.done)

	if !gtk.InitCheck() {
		ready <- ErrNoDisplay
		return
	}

	// The first network session becomes the default of every web view.
	if data, cache := dataDirs(e.cfg.UserDataDir); data != "" {
		e.session = webkit.NewNetworkSession(data, cache)
	} else {
		e.session = webkit.NewNetworkSessionEphemeral()
	}

	e.loop = glib.NewMainLoop(nil, false)
	ready <- nil
	e.loop.Run()
}

// invoke runs fn on the GTK main thread and waits until it returned.
func (e *Engine) invoke(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	glib.IdleAdd(func() bool {
		fn()
		close(ran)
		return false
	})

	select {
	case <-ran:
		return nil
	case <-e.done:
		return ErrEngineClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OpenSite opens site in a new window. Opening an already open site returns
// its existing surface.
func (e *Engine) OpenSite(ctx context.Context, site entity.Site) (port.WebSurface, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, ErrEngineClosed
	}
	if existing, ok := e.pages[site.ID]; ok {
		e.mu.Unlock()
		return existing, nil
	}
	e.mu.Unlock()

	var page *Page
	if err := e.invoke(ctx, func() { page = e.newPage(ctx, site) }); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", site.ID, err)
	}

	e.mu.Lock()
	e.pages[site.ID] = page
	e.mu.Unlock()
	page.OnDestroyed(func() {
		e.mu.Lock()
		delete(e.pages, site.ID)
		e.mu.Unlock()
	})

	logging.FromContext(ctx).Debug().
		Str("component", "webkitgtk").
		Str("site", site.ID).
		Msg("window presented")
	return page, nil
}

// newPage builds the window and its web view. Main thread only.
func (e *Engine) newPage(ctx context.Context, site entity.Site) *Page {
	view := webkit.NewWebView()
	win := gtk.NewWindow()
	win.SetTitle(site.Title)
	win.SetDefaultSize(e.cfg.WindowWidth, e.cfg.WindowHeight)
	win.SetChild(view)

	p := &Page{
		id:     site.ID,
		engine: e,
		view:   view,
		window: win,
		url:    site.URL,
		gone:   make(chan struct{}),
	}
	p.connect(ctx)

	view.LoadURI(site.URL)
	win.Present()
	return p
}

// Close destroys every window and stops the main loop.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	pages := make([]*Page, 0, len(e.pages))
	for _, p := range e.pages {
		pages = append(pages, p)
	}
	e.mu.Unlock()

	err := e.invoke(context.Background(), func() {
		for _, p := range pages {
			p.window.Destroy()
		}
		e.loop.Quit()
	})
	<-e.done
	if errors.Is(err, ErrEngineClosed) {
		return nil
	}
	return err
}
