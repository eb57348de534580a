package surface

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/logging"
)

const (
	// runJSAggregateWindow is how long repeated non-fatal errors stay quiet.
	runJSAggregateWindow = 30 * time.Second
	// runJSAggregateLogEvery forces a log line every N repeats inside a window.
	runJSAggregateLogEvery = 50
)

// Errors raised while the page is navigating away; the next load event
// re-runs the injection anyway.
var nonFatalRunJSErrors = []string{
	"operation was canceled",
	"context canceled",
	"execution context was destroyed",
	"cannot find context with specified id",
	"inspected target navigated or closed",
	"target closed",
}

// classifyRunJSEvaluateError reports whether err is expected during
// navigation and returns a normalized signature for aggregation.
func classifyRunJSEvaluateError(err error) (nonFatal bool, signature string) {
	msg := normalizeRunJSErrorSignature(err.Error())
	for _, s := range nonFatalRunJSErrors {
		if strings.Contains(msg, s) {
			nonFatal = true
			break
		}
	}
	return nonFatal, "evaluate_error:" + msg
}

// normalizeRunJSErrorSignature lower-cases and collapses whitespace.
func normalizeRunJSErrorSignature(msg string) string {
	fields := strings.Fields(strings.ToLower(msg))
	if len(fields) == 0 {
		return "empty"
	}
	return strings.Join(fields, " ")
}

// runJSDomain returns the lower-cased host of rawURL or "unknown".
func runJSDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.ToLower(u.Hostname())
}

type runJSErrorState struct {
	count      uint64
	windowFrom time.Time
}

// runJSErrorAggregator throttles repeated evaluate errors per domain and
// signature. Fatal errors always log.
type runJSErrorAggregator struct {
	mu    sync.Mutex
	state map[string]*runJSErrorState
}

// ScriptErrors turns script evaluation failures of one surface into log
// lines and port errors. The zero value is ready to use.
type ScriptErrors struct {
	agg runJSErrorAggregator
	now func() time.Time
}

// Report logs err once per aggregation window and wraps navigation races
// with port.ErrSurfaceNavigating. A nil err is returned as is.
func (e *ScriptErrors) Report(ctx context.Context, component, surfaceID, pageURL, op string, err error) error {
	if err == nil {
		return nil
	}
	nonFatal, signature := classifyRunJSEvaluateError(err)
	domain := runJSDomain(pageURL)

	now := time.Now
	if e.now != nil {
		now = e.now
	}
	if shouldLog, count := e.agg.shouldLog(domain, signature, nonFatal, now()); shouldLog {
		log := logging.FromContext(ctx)
		ev := log.Warn()
		if nonFatal {
			ev = log.Debug()
		}
		ev.Err(err).
			Str("component", component).
			Str("surface", surfaceID).
			Str("domain", domain).
			Str("op", op).
			Uint64("count", count).
			Msg("run javascript failed")
	}

	if nonFatal {
		return fmt.Errorf("%w: %w", port.ErrSurfaceNavigating, err)
	}
	return err
}

func (a *runJSErrorAggregator) shouldLog(domain, signature string, nonFatal bool, now time.Time) (bool, uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == nil {
		a.state = make(map[string]*runJSErrorState)
	}

	key := domain + "|" + signature
	st, ok := a.state[key]
	if !ok {
		st = &runJSErrorState{windowFrom: now}
		a.state[key] = st
	}
	st.count++

	if !nonFatal || st.count == 1 {
		return true, st.count
	}
	if now.Sub(st.windowFrom) >= runJSAggregateWindow {
		st.windowFrom = now
		return true, st.count
	}
	return st.count%runJSAggregateLogEvery == 0, st.count
}
