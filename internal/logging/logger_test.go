package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_WritesFileCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", SessionFilename("20260101_000000_abcd"))
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.FilePath = path

	logger := New(cfg)
	logger.Info().Str("component", "test").Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithComponent(WithContext(context.Background(), logger), "injector")

	FromContext(ctx).Info().Msg("x")

	assert.Contains(t, buf.String(), `"component":"injector"`)
}

func TestParseSessionFilename(t *testing.T) {
	id, ok := ParseSessionFilename("session_20251217_205106_a7b3.log")
	require.True(t, ok)
	assert.Equal(t, "20251217_205106_a7b3", id)

	_, ok = ParseSessionFilename("other.log")
	assert.False(t, ok)
}

func TestShortSessionID(t *testing.T) {
	assert.Equal(t, "a7b3", ShortSessionID("20251217_205106_a7b3"))
	assert.Equal(t, "legacy", ShortSessionID("legacy"))
}

func TestListSessions(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, SessionFilename("20251217_205106_a7b3"))
	newer := filepath.Join(dir, SessionFilename("20251218_101010_beef"))
	require.NoError(t, os.WriteFile(older, []byte("a\n"), 0o600))
	require.NoError(t, os.WriteFile(newer, []byte("bb\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crash.txt"), nil, 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "session_dir.log"), 0o700))

	base := time.Date(2025, 12, 18, 10, 10, 10, 0, time.UTC)
	require.NoError(t, os.Chtimes(older, base.Add(-time.Hour), base.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newer, base, base))

	sessions, err := ListSessions(dir)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "20251218_101010_beef", sessions[0].ID)
	assert.Equal(t, newer, sessions[0].Path)
	assert.Equal(t, int64(3), sessions[0].Size)
	assert.Equal(t, "20251217_205106_a7b3", sessions[1].ID)
}

func TestListSessions_MissingDir(t *testing.T) {
	sessions, err := ListSessions(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
