// Package surface holds helpers shared by the web surface adapters.
package surface

import (
	"maps"
	"slices"
	"sync"
)

// Listeners is a set of callbacks that can be removed individually. The
// zero value is ready to use.
type Listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

// Add registers fn. The returned cancel is idempotent.
func (l *Listeners) Add(fn func()) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

// Emit runs every callback in registration order outside the lock.
func (l *Listeners) Emit() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.fns))
	for _, id := range slices.Sorted(maps.Keys(l.fns)) {
		fns = append(fns, l.fns[id])
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of registered callbacks.
func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}
