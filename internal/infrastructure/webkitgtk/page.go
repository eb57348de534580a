//go:build webkitgtk

package webkitgtk

import (
	"context"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/infrastructure/surface"
	"github.com/bnema/chatdeck/internal/logging"
)

// Page is one GTK window showing a chat site.
type Page struct {
	id     string
	engine *Engine

	// Main thread only.
	view   *webkit.WebView
	window *gtk.Window
	sheet  *webkit.UserStyleSheet

	mu  sync.RWMutex
	url string

	loadFinished surface.Listeners
	navigated    surface.Listeners
	destroyed    surface.Listeners
	destroyOnce  sync.Once
	gone         chan struct{}

	errs surface.ScriptErrors
}

var _ port.WebSurface = (*Page)(nil)

// connect forwards the view signals. Listeners run off the main thread
// because they call back into the page. Main thread only.
func (p *Page) connect(ctx context.Context) {
	log := logging.FromContext(ctx).With().
		Str("component", "webkitgtk").
		Str("surface", p.id).
		Logger()

	p.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		switch event {
		case webkit.LoadCommitted:
			p.setURL(p.view.URI())
		case webkit.LoadFinished:
			log.Debug().Str("url", p.view.URI()).Msg("load finished")
			go p.loadFinished.Emit()
		}
	})
	p.view.Connect("notify::uri", func() {
		next := p.view.URI()
		prev := p.setURL(next)
		if inPageNavigation(p.view.IsLoading(), prev, next) {
			go p.navigated.Emit()
		}
	})
	p.view.ConnectClose(func() {
		p.window.Destroy()
	})
	p.window.ConnectDestroy(p.markDestroyed)
}

func (p *Page) ID() string { return p.id }

func (p *Page) URL() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.url
}

// setURL stores u and returns the previous URL.
func (p *Page) setURL(u string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	prev := p.url
	p.url = u
	return prev
}

// EvaluateScript runs js in the main world and waits for its completion.
func (p *Page) EvaluateScript(ctx context.Context, js string) error {
	return p.errs.Report(ctx, "webkitgtk", p.id, p.URL(), "evaluate", p.evaluate(ctx, js))
}

func (p *Page) evaluate(ctx context.Context, js string) error {
	if p.isDestroyed() {
		return ErrViewDestroyed
	}

	result := make(chan error, 1)
	err := p.engine.invoke(ctx, func() {
		if p.isDestroyed() {
			result <- ErrViewDestroyed
			return
		}
		p.view.EvaluateJavascript(ctx, js, -1, "", "", func(res gio.AsyncResulter) {
			_, err := p.view.EvaluateJavascriptFinish(res)
			result <- err
		})
	})
	if err != nil {
		return err
	}

	select {
	case err := <-result:
		return err
	case <-p.gone:
		return ErrViewDestroyed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InsertStyleSheet installs css as the page's user stylesheet, replacing the
// previous one. User stylesheets apply to the current document at once and
// are not subject to the site's content security policy.
func (p *Page) InsertStyleSheet(ctx context.Context, css string) error {
	if p.isDestroyed() {
		return ErrViewDestroyed
	}
	err := p.engine.invoke(ctx, func() {
		if p.isDestroyed() {
			return
		}
		ucm := p.view.UserContentManager()
		if p.sheet != nil {
			ucm.RemoveStyleSheet(p.sheet)
		}
		p.sheet = webkit.NewUserStyleSheet(css, webkit.UserContentInjectAllFrames, webkit.UserStyleLevelUser, nil, nil)
		ucm.AddStyleSheet(p.sheet)
	})
	return p.errs.Report(ctx, "webkitgtk", p.id, p.URL(), "insert_style", err)
}

func (p *Page) OnLoadFinished(fn func()) func()    { return p.loadFinished.Add(fn) }
func (p *Page) OnNavigatedInPage(fn func()) func() { return p.navigated.Add(fn) }

// OnDestroyed subscribes to window destruction. Subscribing after the window
// was destroyed calls fn immediately.
func (p *Page) OnDestroyed(fn func()) func() {
	if p.isDestroyed() {
		fn()
		return func() {}
	}
	return p.destroyed.Add(fn)
}

func (p *Page) isDestroyed() bool {
	select {
	case <-p.gone:
		return true
	default:
		return false
	}
}

func (p *Page) markDestroyed() {
	p.destroyOnce.Do(func() {
		close(p.gone)
		go p.destroyed.Emit()
	})
}

// Close destroys the window. Destroy listeners run once.
func (p *Page) Close() error {
	if p.isDestroyed() {
		return nil
	}
	return p.engine.invoke(context.Background(), func() {
		p.window.Destroy()
	})
}
