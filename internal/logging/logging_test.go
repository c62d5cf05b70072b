package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	logger.Trace().Msg("hidden")
	logger.Debug().Str("k", "v").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Contains(t, entry, "time")
}

func TestNew_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "console", Output: &buf})

	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("CANDLE_LOG_LEVEL", "error")
	t.Setenv("CANDLE_LOG_FORMAT", "json")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "usecase")
	ctx = WithWorkspace(ctx, 3)
	ctx = WithWinKey(ctx, "w1")
	ctx = With(ctx, map[string]any{"op": "open"})

	FromContext(ctx).Info().Msg("done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "usecase", entry["component"])
	assert.EqualValues(t, 3, entry["workspace"])
	assert.Equal(t, "w1", entry["win_key"])
	assert.Equal(t, "open", entry["op"])
}

func TestWith_FieldOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	ctx := With(WithContext(context.Background(), logger), map[string]any{"zeta": 1, "alpha": 2, "mid": 3})
	FromContext(ctx).Info().Msg("ordered")

	line := buf.String()
	alpha := strings.Index(line, `"alpha"`)
	mid := strings.Index(line, `"mid"`)
	zeta := strings.Index(line, `"zeta"`)
	require.True(t, alpha >= 0 && mid >= 0 && zeta >= 0, line)
	assert.Less(t, alpha, mid)
	assert.Less(t, mid, zeta)
}

func TestFromContext_NoLogger(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	// Disabled logger must not panic.
	log.Info().Msg("nothing")
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "console"},
		FileConfig{Enabled: true, Dir: dir, MaxSizeMB: 1},
	)
	require.NoError(t, err)

	logger.Info().Str("k", "v").Msg("to file")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, DefaultLogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewWithFile_Disabled(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 1, 0, false)
	require.NoError(t, err)
	r.maxSize = 16

	for i := 0; i < 4; i++ {
		_, err := r.Write([]byte("0123456789abcdef"))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)
	assert.FileExists(t, r.Path())
}

func TestRecoverPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})
	ctx := WithContext(context.Background(), logger)

	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() {
		defer RecoverPanic(ctx)
		panic(boom)
	})
	assert.Contains(t, buf.String(), `"message":"PANIC"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}
