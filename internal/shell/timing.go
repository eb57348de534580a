package shell

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/chatdeck/internal/logging"
)

// StartupTimer records how long each startup phase took.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases map[string]time.Duration
	order  []string
	now    func() time.Time
}

// NewStartupTimer creates a timer starting from now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	t := now()
	return &StartupTimer{
		start:  t,
		last:   t,
		phases: make(map[string]time.Duration),
		now:    now,
	}
}

// Mark records the time since the previous mark under phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] += now.Sub(t.last)
	t.last = now
}

// Phase returns the recorded duration of phase.
func (t *StartupTimer) Phase(phase string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phases[phase]
}

// Log writes every phase, in first-mark order, as one debug line.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", t.now().Sub(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
