// Package colorscheme resolves the desktop light/dark preference and reports
// changes to the injector.
package colorscheme

import (
	"sort"
	"strings"
	"sync"

	"github.com/bnema/chatdeck/internal/application/port"
)

const (
	sourceFallback = "fallback"
	sourceConfig   = "config"
)

// ConfigProvider exposes the configured color scheme.
// Expected values: "default", "prefer-dark", "prefer-light", "dark", "light".
type ConfigProvider interface {
	GetColorScheme() string
}

type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
// A config override wins; otherwise detectors are asked in priority order.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	resolved  bool
	callbacks []*callbackWrapper
}

var _ port.ColorSchemeResolver = (*Resolver)(nil)

// NewResolver creates a resolver. config may be nil.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config: config,
		current: port.ColorSchemePreference{
			PrefersDark: true,
			Source:      sourceFallback,
		},
	}
}

// Resolve evaluates the preference without notifying anyone.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked()
}

func (r *Resolver) resolveLocked() port.ColorSchemePreference {
	if r.config != nil {
		switch strings.ToLower(strings.TrimSpace(r.config.GetColorScheme())) {
		case "prefer-dark", "dark":
			return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
		case "prefer-light", "light":
			return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
		}
	}

	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{PrefersDark: prefersDark, Source: detector.Name()}
		}
	}

	// Chat UIs default to dark.
	return port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}
}

// RegisterDetector adds a detector to the chain.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Refresh re-evaluates the preference and notifies subscribers when the
// light/dark value changed.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()
	pref := r.resolveLocked()
	changed := r.resolved && pref.PrefersDark != r.current.PrefersDark
	r.current = pref
	r.resolved = true

	var callbacks []*callbackWrapper
	if changed {
		callbacks = make([]*callbackWrapper, len(r.callbacks))
		copy(callbacks, r.callbacks)
	}
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(pref)
	}
	return pref
}

// Current returns the last refreshed preference, refreshing once if needed.
func (r *Resolver) Current() port.ColorSchemePreference {
	r.mu.RLock()
	pref, ok := r.current, r.resolved
	r.mu.RUnlock()
	if !ok {
		return r.Refresh()
	}
	return pref
}

// PrefersDark implements port.ThemeSource.
func (r *Resolver) PrefersDark() bool {
	return r.Current().PrefersDark
}

// Subscribe registers a callback receiving the full preference on change.
func (r *Resolver) Subscribe(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}

// OnChange implements port.ThemeSource.
func (r *Resolver) OnChange(fn func(dark bool)) func() {
	return r.Subscribe(func(p port.ColorSchemePreference) { fn(p.PrefersDark) })
}
