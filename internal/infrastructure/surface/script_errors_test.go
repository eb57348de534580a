package surface

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/chatdeck/internal/application/port"
	"github.com/bnema/chatdeck/internal/logging"
)

func TestClassifyRunJSEvaluateError(t *testing.T) {
	t.Run("non-fatal canceled", func(t *testing.T) {
		nonFatal, signature := classifyRunJSEvaluateError(errors.New("Operation was canceled"))
		assert.True(t, nonFatal)
		assert.Equal(t, "evaluate_error:operation was canceled", signature)
	})

	t.Run("non-fatal context destroyed", func(t *testing.T) {
		nonFatal, signature := classifyRunJSEvaluateError(errors.New("{-32000 Execution context was destroyed. }"))
		assert.True(t, nonFatal)
		assert.Equal(t, "evaluate_error:{-32000 execution context was destroyed. }", signature)
	})

	t.Run("fatal unknown", func(t *testing.T) {
		nonFatal, signature := classifyRunJSEvaluateError(errors.New("SyntaxError:  Unexpected token"))
		assert.False(t, nonFatal)
		assert.Equal(t, "evaluate_error:syntaxerror: unexpected token", signature)
	})
}

func TestNormalizeRunJSErrorSignature(t *testing.T) {
	assert.Equal(t, "empty", normalizeRunJSErrorSignature(" \n\t "))
	assert.Equal(t, "foo bar baz", normalizeRunJSErrorSignature(" Foo   BAR\tbaz "))
}

func TestRunJSDomain(t *testing.T) {
	assert.Equal(t, "sub.example.com", runJSDomain("https://Sub.Example.com/path?q=1"))
	assert.Equal(t, "unknown", runJSDomain("not a uri"))
	assert.Equal(t, "unknown", runJSDomain(""))
}

func TestShouldLogRunJSError_NonFatalAggregation(t *testing.T) {
	agg := &runJSErrorAggregator{}
	now := time.Now()

	shouldLog, count := agg.shouldLog("example.com", "sig", true, now)
	assert.True(t, shouldLog)
	assert.Equal(t, uint64(1), count)

	shouldLog, count = agg.shouldLog("example.com", "sig", true, now.Add(10*time.Second))
	assert.False(t, shouldLog)
	assert.Equal(t, uint64(2), count)

	shouldLog, count = agg.shouldLog("example.com", "sig", true, now.Add(31*time.Second))
	assert.True(t, shouldLog)
	assert.Equal(t, uint64(3), count)

	shouldLog, _ = agg.shouldLog("other.com", "sig", true, now.Add(32*time.Second))
	assert.True(t, shouldLog, "domains aggregate separately")
}

func TestShouldLogRunJSError_NonFatalLogsEveryN(t *testing.T) {
	agg := &runJSErrorAggregator{}
	base := time.Now()
	for i := 1; i < runJSAggregateLogEvery; i++ {
		shouldLog, _ := agg.shouldLog("example.com", "sig", true, base)
		assert.Equal(t, i == 1, shouldLog)
	}

	shouldLog, count := agg.shouldLog("example.com", "sig", true, base)
	assert.True(t, shouldLog)
	assert.Equal(t, uint64(runJSAggregateLogEvery), count)
}

func TestShouldLogRunJSError_FatalAlwaysLogs(t *testing.T) {
	agg := &runJSErrorAggregator{}
	base := time.Now()

	shouldLog, count := agg.shouldLog("example.com", "fatal-sig", false, base)
	assert.True(t, shouldLog)
	assert.Equal(t, uint64(1), count)

	shouldLog, count = agg.shouldLog("example.com", "fatal-sig", false, base)
	assert.True(t, shouldLog)
	assert.Equal(t, uint64(2), count)
}

func TestScriptErrors_Report(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	now := time.Unix(0, 0)
	errs := &ScriptErrors{now: func() time.Time { return now }}

	assert.NoError(t, errs.Report(ctx, "webkitgtk", "s1", "https://chat.example/", "evaluate", nil))

	err := errs.Report(ctx, "webkitgtk", "s1", "https://chat.example/", "evaluate", errors.New("Operation was canceled"))
	assert.ErrorIs(t, err, port.ErrSurfaceNavigating)
	assert.Contains(t, buf.String(), `"component":"webkitgtk"`)
	assert.Contains(t, buf.String(), `"domain":"chat.example"`)

	buf.Reset()
	err = errs.Report(ctx, "webkitgtk", "s1", "https://chat.example/", "evaluate", errors.New("Operation was canceled"))
	assert.ErrorIs(t, err, port.ErrSurfaceNavigating)
	assert.Empty(t, buf.String(), "repeat inside the window stays quiet")

	err = errs.Report(ctx, "cdp", "s1", "https://chat.example/", "evaluate", errors.New("SyntaxError: x"))
	assert.NotErrorIs(t, err, port.ErrSurfaceNavigating)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
