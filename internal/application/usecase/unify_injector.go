package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/domain/unify"
	"github.com/bnema/chatdeck/internal/logging"
)

// InjectOp names one operation of an injection pass.
type InjectOp string

const (
	OpTheme InjectOp = "theme"
	OpCSS   InjectOp = "css"
	OpJS    InjectOp = "js"
)

// PassResult reports what one injection pass did.
type PassResult struct {
	SurfaceID string
	URL       string
	Config    entity.MergedConfig
	Ran       []InjectOp
	Failed    map[InjectOp]error
}

// OK reports whether every operation that ran succeeded.
func (r *PassResult) OK() bool { return len(r.Failed) == 0 }

func (r *PassResult) record(mu *sync.Mutex, op InjectOp, err error) {
	mu.Lock()
	defer mu.Unlock()
	r.Ran = append(r.Ran, op)
	if err != nil {
		r.Failed[op] = err
	}
}

// UnifyInjector keeps embedded surfaces visually unified across navigations.
type UnifyInjector struct {
	rules port.RuleSource
	theme port.ThemeSource

	passes atomic.Int64
}

// NewUnifyInjector creates an injector reading rules and theme from the given sources.
func NewUnifyInjector(rules port.RuleSource, theme port.ThemeSource) *UnifyInjector {
	return &UnifyInjector{rules: rules, theme: theme}
}

// Passes returns how many injection passes ran.
func (uc *UnifyInjector) Passes() int64 { return uc.passes.Load() }

// Attachment is the set of subscriptions held for one surface.
type Attachment struct {
	once    sync.Once
	mu      sync.Mutex
	cancels []func()
	done    chan struct{}
}

// Detach removes every subscription. Only the first call has an effect.
func (a *Attachment) Detach() {
	a.once.Do(func() {
		a.mu.Lock()
		cancels := a.cancels
		a.cancels = nil
		a.mu.Unlock()
		for _, cancel := range cancels {
			if cancel != nil {
				cancel()
			}
		}
		close(a.done)
	})
}

// Done is closed once the attachment is detached.
func (a *Attachment) Done() <-chan struct{} { return a.done }

func (a *Attachment) add(cancel func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancels = append(a.cancels, cancel)
}

// Attach subscribes the injector to surface lifecycle events and the theme
// source. Each load or in-page navigation triggers a full pass; a theme
// change re-injects only the theme script. The attachment detaches itself
// when the surface is destroyed.
func (uc *UnifyInjector) Attach(ctx context.Context, surface port.WebSurface) *Attachment {
	ctx = logging.WithSurface(logging.WithComponent(context.WithoutCancel(ctx), "unify-injector"), surface.ID())
	log := logging.FromContext(ctx)

	a := &Attachment{done: make(chan struct{})}
	a.add(surface.OnLoadFinished(func() {
		uc.Inject(ctx, surface)
	}))
	a.add(surface.OnNavigatedInPage(func() {
		uc.Inject(ctx, surface)
	}))
	if uc.theme != nil {
		a.add(uc.theme.OnChange(func(dark bool) {
			if err := uc.applyTheme(ctx, surface, dark); err != nil {
				log.Warn().Err(err).Bool("dark", dark).Msg("theme sync failed")
			}
		}))
	}
	a.add(surface.OnDestroyed(func() {
		log.Debug().Msg("surface destroyed, detaching")
		a.Detach()
	}))

	log.Debug().Msg("attached")
	return a
}

// Inject runs one full injection pass: the theme script, the stylesheet and
// the script bundle are applied concurrently. Failures are logged and never
// abort sibling operations.
func (uc *UnifyInjector) Inject(ctx context.Context, surface port.WebSurface) *PassResult {
	uc.passes.Add(1)
	rawURL := surface.URL()
	log := logging.FromContext(ctx).With().Str("url", rawURL).Logger()

	table, err := uc.rules.Table(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("rule table unavailable, injecting theme only")
		table = entity.RuleTable{}
	}
	cfg := unify.Merge(table, rawURL)
	css := unify.BuildCSS(cfg)
	js := unify.BuildJS(cfg)

	result := &PassResult{
		SurfaceID: surface.ID(),
		URL:       rawURL,
		Config:    cfg,
		Failed:    make(map[InjectOp]error),
	}
	var mu sync.Mutex

	var g errgroup.Group
	g.Go(func() error {
		dark := uc.theme != nil && uc.theme.PrefersDark()
		result.record(&mu, OpTheme, uc.applyTheme(ctx, surface, dark))
		return nil
	})
	if css != "" {
		g.Go(func() error {
			result.record(&mu, OpCSS, guarded(func() error { return surface.InsertStyleSheet(ctx, css) }))
			return nil
		})
	}
	if js != "" {
		g.Go(func() error {
			result.record(&mu, OpJS, guarded(func() error { return surface.EvaluateScript(ctx, js) }))
			return nil
		})
	}
	_ = g.Wait()

	for op, opErr := range result.Failed {
		ev := log.Warn()
		if errors.Is(opErr, port.ErrSurfaceNavigating) {
			ev = log.Debug()
		}
		ev.Err(opErr).Str("op", string(op)).Msg("injection step failed")
	}
	log.Debug().
		Str("host", cfg.Host).
		Int("css_bytes", len(css)).
		Int("js_bytes", len(js)).
		Int("ran", len(result.Ran)).
		Int("failed", len(result.Failed)).
		Msg("injection pass complete")
	return result
}

func (uc *UnifyInjector) applyTheme(ctx context.Context, surface port.WebSurface, dark bool) error {
	return guarded(func() error { return surface.EvaluateScript(ctx, unify.ThemeScript(dark)) })
}

// guarded converts a panic in fn into an error.
func guarded(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
