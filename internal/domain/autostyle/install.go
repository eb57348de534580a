package autostyle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/logging"
)

const maxFrameDepth = 8

// ErrNoDocument is returned by Install when the window has no document.
var ErrNoDocument = errors.New("autostyle: window has no document")

// Options configures Install.
type Options struct {
	Presets []string
	Tweaks  []entity.StyleTweak
	// Auto enables the heuristic pass when non-nil.
	Auto *AutoOptions
	// ShadowDOM also styles open shadow roots.
	ShadowDOM bool
	// ForceInline additionally sets every declaration inline on matched elements.
	ForceInline bool
	// Observe re-applies after DOM mutations.
	Observe bool
	// TrackHistory re-applies after pushState, replaceState and popstate.
	TrackHistory bool
	// Policy overrides the default scoring policy.
	Policy *ScoringPolicy
}

// DefaultOptions enables shadow roots, mutation observing and history tracking.
func DefaultOptions() Options {
	return Options{ShadowDOM: true, Observe: true, TrackHistory: true}
}

type trackedStyle struct {
	el   StyleElement
	text string
}

// Handle owns everything an installation attached to a window.
type Handle struct {
	win    Window
	opts   Options
	tweaks []entity.StyleTweak
	css    string
	logger zerolog.Logger

	runMu sync.Mutex

	mu        sync.Mutex
	styles    map[string]*trackedStyle
	order     []string
	scheduled bool
	applying  bool
	closed    bool

	disconnect     func()
	restoreHistory func()
	removePopState func()

	cleanupOnce sync.Once
}

// Install assembles the tweak list, applies it to every reachable scope of
// win and, depending on opts, keeps it applied until Cleanup.
func Install(ctx context.Context, win Window, opts Options) (*Handle, error) {
	if win == nil || win.Document() == nil {
		return nil, ErrNoDocument
	}
	log := logging.FromContext(ctx).With().Str("component", "autostyle").Logger()

	policy := DefaultScoringPolicy()
	if opts.Policy != nil {
		policy = *opts.Policy
	}

	var presetTweaks []entity.StyleTweak
	for _, name := range opts.Presets {
		tweaks, ok := Preset(name)
		if !ok {
			log.Debug().Str("preset", name).Msg("unknown preset ignored")
			continue
		}
		presetTweaks = append(presetTweaks, tweaks...)
	}

	var autoTweaks []entity.StyleTweak
	if opts.Auto != nil {
		var err error
		autoTweaks, err = AutoTweaks(win.Document(), win.Viewport(), *opts.Auto, policy)
		if err != nil {
			log.Debug().Err(err).Msg("auto heuristic skipped")
		}
	}

	tweaks := AssembleTweaks(presetTweaks, opts.Tweaks, autoTweaks)
	h := &Handle{
		win:    win,
		opts:   opts,
		tweaks: tweaks,
		css:    BuildStyleSheet(tweaks),
		logger: log,
		styles: make(map[string]*trackedStyle),
	}

	h.run()

	if opts.Observe {
		h.observe()
	}
	if opts.TrackHistory {
		h.trackHistory()
	}

	log.Debug().
		Int("tweaks", len(tweaks)).
		Int("scopes", len(h.order)).
		Bool("observe", opts.Observe).
		Bool("history", opts.TrackHistory).
		Msg("styler installed")
	return h, nil
}

// Tweaks returns the assembled tweak list.
func (h *Handle) Tweaks() []entity.StyleTweak {
	out := make([]entity.StyleTweak, len(h.tweaks))
	copy(out, h.tweaks)
	return out
}

// CSS returns the stylesheet injected into every scope.
func (h *Handle) CSS() string {
	return h.css
}

// Refresh re-applies the tweaks to every reachable scope.
func (h *Handle) Refresh() {
	h.run()
}

// Cleanup detaches the observer, restores history, removes the popstate
// listener and removes the injected style elements. Safe to call repeatedly.
func (h *Handle) Cleanup() {
	h.cleanupOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		disconnect, restore, removePop := h.disconnect, h.restoreHistory, h.removePopState
		h.mu.Unlock()

		h.guard("disconnect observer", disconnect)
		h.guard("restore history", restore)
		h.guard("remove popstate listener", removePop)

		h.runMu.Lock()
		defer h.runMu.Unlock()
		h.mu.Lock()
		styles, order := h.styles, h.order
		h.styles = map[string]*trackedStyle{}
		h.order = nil
		h.mu.Unlock()

		for _, key := range order {
			ts := styles[key]
			if ts == nil || !ts.el.Connected() {
				continue
			}
			h.guard("remove style", func() {
				if err := ts.el.Remove(); err != nil {
					h.logger.Debug().Err(err).Str("scope", key).Msg("remove style failed")
				}
			})
		}
	})
}

// guard runs fn, turning a panic into a debug log.
func (h *Handle) guard(step string, fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			h.logger.Debug().Str("step", step).Interface("panic", r).Msg("cleanup step failed")
		}
	}()
	fn()
}

func (h *Handle) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

func (h *Handle) observe() {
	doc := h.win.Document()
	root := doc.Root()
	if root == nil {
		return
	}
	disconnect, err := h.win.Observe(root, ObserveOptions{
		ChildList:       true,
		Subtree:         true,
		Attributes:      true,
		AttributeFilter: []string{"class", "style"},
	}, h.onMutations)
	if err != nil {
		h.logger.Debug().Err(err).Msg("mutation observer unavailable")
		return
	}
	h.mu.Lock()
	h.disconnect = disconnect
	h.mu.Unlock()
}

func (h *Handle) trackHistory() {
	restore, err := h.win.PatchHistory(h.run)
	if err != nil {
		// Mutation-only tracking from here on.
		h.logger.Debug().Err(err).Msg("history patch failed")
	}
	removePop := h.win.OnPopState(h.run)

	h.mu.Lock()
	h.restoreHistory = restore
	h.removePopState = removePop
	h.mu.Unlock()
}

func (h *Handle) onMutations(records []Mutation) {
	h.mu.Lock()
	applying := h.applying
	h.mu.Unlock()

	relevant := false
	for _, m := range records {
		switch m.Type {
		case MutationChildList:
			relevant = relevant || m.AddedNodes > 0
		case MutationAttributes:
			if applying {
				continue
			}
			relevant = relevant || m.AttributeName == "class" || m.AttributeName == "style"
		}
	}
	if relevant {
		h.schedule()
	}
}

// schedule coalesces re-runs into one microtask.
func (h *Handle) schedule() {
	h.mu.Lock()
	if h.closed || h.scheduled {
		h.mu.Unlock()
		return
	}
	h.scheduled = true
	h.mu.Unlock()

	h.win.QueueMicrotask(func() {
		h.mu.Lock()
		h.scheduled = false
		h.mu.Unlock()
		h.run()
	})
}

type scopeTarget struct {
	scope Scope
	nonce string
}

// run applies the stylesheet (and inline styles) to every reachable scope.
func (h *Handle) run() {
	if h.isClosed() {
		return
	}
	h.runMu.Lock()
	defer h.runMu.Unlock()
	if h.isClosed() {
		return
	}

	targets := h.collect()
	for _, t := range targets {
		if err := h.ensureStyle(t); err != nil {
			h.logger.Debug().Err(err).Str("scope", t.scope.Key()).Msg("style injection failed")
		}
	}
	if h.opts.ForceInline {
		h.applyInline(targets)
	}
}

func (h *Handle) collect() []scopeTarget {
	var targets []scopeTarget
	seen := map[string]bool{}

	var visitDoc func(doc Document, depth int)
	visitDoc = func(doc Document, depth int) {
		if doc == nil || seen[doc.Key()] {
			return
		}
		seen[doc.Key()] = true
		nonce := doc.Nonce()
		targets = append(targets, scopeTarget{scope: doc, nonce: nonce})

		if h.opts.ShadowDOM {
			for _, sr := range shadowRoots(doc.Root()) {
				if !seen[sr.Key()] {
					seen[sr.Key()] = true
					targets = append(targets, scopeTarget{scope: sr, nonce: nonce})
				}
			}
		}

		if depth >= maxFrameDepth {
			return
		}
		for _, frame := range doc.Frames() {
			child, err := frame.ContentDocument()
			if err != nil {
				// Cross-origin frames are not ours to style.
				h.logger.Trace().Err(err).Msg("frame skipped")
				continue
			}
			visitDoc(child, depth+1)
		}
	}
	visitDoc(h.win.Document(), 0)
	return targets
}

// shadowRoots walks the tree depth-first, descending into shadow roots too.
func shadowRoots(root Element) []ShadowRoot {
	if root == nil {
		return nil
	}
	var out []ShadowRoot
	var walk func(el Element)
	walk = func(el Element) {
		if sr := el.ShadowRoot(); sr != nil {
			out = append(out, sr)
			for _, c := range sr.Children() {
				walk(c)
			}
		}
		for _, c := range el.Children() {
			walk(c)
		}
	}
	walk(root)
	return out
}

func (h *Handle) ensureStyle(t scopeTarget) error {
	key := t.scope.Key()

	h.mu.Lock()
	ts := h.styles[key]
	h.mu.Unlock()

	if ts != nil && ts.el.Connected() {
		if ts.text == h.css {
			return nil
		}
		if err := ts.el.SetText(h.css); err != nil {
			return fmt.Errorf("refresh style: %w", err)
		}
		ts.text = h.css
		return nil
	}

	el, err := t.scope.InsertStyle(h.css, t.nonce)
	if err != nil {
		return fmt.Errorf("insert style: %w", err)
	}

	h.mu.Lock()
	if _, known := h.styles[key]; !known {
		h.order = append(h.order, key)
	}
	h.styles[key] = &trackedStyle{el: el, text: h.css}
	h.mu.Unlock()
	return nil
}

func (h *Handle) applyInline(targets []scopeTarget) {
	h.mu.Lock()
	h.applying = true
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		h.applying = false
		h.mu.Unlock()
	}()

	for _, t := range targets {
		for _, tweak := range h.tweaks {
			els, err := t.scope.QuerySelectorAll(tweak.Selector)
			if err != nil {
				continue
			}
			priority := tweak.Priority()
			decls := tweak.Styles.Sorted()
			for _, el := range els {
				for _, d := range decls {
					value, prio := el.InlineStyle(d.Property)
					if value == d.Value && prio == priority {
						continue
					}
					if err := el.SetStyleProperty(d.Property, d.Value, priority); err != nil {
						h.logger.Trace().Err(err).Str("property", d.Property).Msg("inline style failed")
					}
				}
			}
		}
	}
}
