// Package cdp drives Chromium over the DevTools protocol with go-rod and
// exposes its pages as web surfaces.
package cdp

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/infrastructure/surface"
)

// Page is one browser tab showing a chat site.
type Page struct {
	id   string
	rod  *rod.Page
	ctx  context.Context
	stop context.CancelFunc

	mu  sync.RWMutex
	url string

	loadFinished surface.Listeners
	navigated    surface.Listeners
	destroyed    surface.Listeners
	destroyOnce  sync.Once

	errs surface.ScriptErrors
}

var _ port.WebSurface = (*Page)(nil)

// newPage wraps p and starts forwarding its events until the target is
// destroyed or ctx is done.
func newPage(ctx context.Context, id string, browser *rod.Browser, p *rod.Page, initialURL string) *Page {
	ctx, stop := context.WithCancel(ctx)
	page := &Page{
		id:   id,
		rod:  p,
		ctx:  ctx,
		stop: stop,
		url:  initialURL,
	}

	go p.Context(ctx).EachEvent(
		func(*proto.PageLoadEventFired) {
			page.loadFinished.Emit()
		},
		func(e *proto.PageFrameNavigated) {
			if e.Frame != nil && e.Frame.ParentID == "" {
				page.setURL(e.Frame.URL)
			}
		},
		func(e *proto.PageNavigatedWithinDocument) {
			if e.FrameID != p.FrameID {
				return
			}
			page.setURL(e.URL)
			page.navigated.Emit()
		},
	)()

	go browser.Context(ctx).EachEvent(func(e *proto.TargetTargetDestroyed) bool {
		if e.TargetID != p.TargetID {
			return false
		}
		page.markDestroyed()
		return true
	})()

	return page
}

func (p *Page) ID() string { return p.id }

func (p *Page) URL() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.url
}

func (p *Page) setURL(u string) {
	p.mu.Lock()
	p.url = u
	p.mu.Unlock()
}

// Rod returns the underlying rod page.
func (p *Page) Rod() *rod.Page { return p.rod }

// EvaluateScript runs js as a classic script in the page's main world.
func (p *Page) EvaluateScript(ctx context.Context, js string) error {
	res, err := proto.RuntimeEvaluate{
		Expression:    js,
		ReturnByValue: true,
	}.Call(p.rod.Context(ctx))
	if err == nil && res.ExceptionDetails != nil {
		err = &rod.EvalError{RuntimeExceptionDetails: res.ExceptionDetails}
	}
	return p.runJSResult(ctx, "evaluate", err)
}

// InsertStyleSheet appends a <style data-chatdeck-unify> element.
func (p *Page) InsertStyleSheet(ctx context.Context, css string) error {
	_, err := p.rod.Context(ctx).Evaluate(rod.Eval(surface.InsertStyleJS, css))
	return p.runJSResult(ctx, "insert_style", err)
}

func (p *Page) runJSResult(ctx context.Context, op string, err error) error {
	return p.errs.Report(ctx, "cdp", p.id, p.URL(), op, err)
}

func (p *Page) OnLoadFinished(fn func()) func()    { return p.loadFinished.Add(fn) }
func (p *Page) OnNavigatedInPage(fn func()) func() { return p.navigated.Add(fn) }

// OnDestroyed subscribes to target destruction. Subscribing after the page
// was destroyed calls fn immediately.
func (p *Page) OnDestroyed(fn func()) func() {
	if p.ctx.Err() != nil {
		fn()
		return func() {}
	}
	return p.destroyed.Add(fn)
}

func (p *Page) markDestroyed() {
	p.destroyOnce.Do(func() {
		p.destroyed.Emit()
		p.stop()
	})
}

// Navigate loads url in the page.
func (p *Page) Navigate(ctx context.Context, url string) error {
	if err := p.rod.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	p.setURL(url)
	return nil
}

// Close closes the tab. Destroy listeners run once.
func (p *Page) Close() error {
	err := p.rod.Close()
	p.markDestroyed()
	return err
}
