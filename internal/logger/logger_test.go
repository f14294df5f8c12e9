package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: the logger is process-global.

func TestInit_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "debug"))
	defer Close()

	assert.Equal(t, filepath.Join(dir, "debug.log"), GetLogPath())

	LogInfo("session %s started", "abc")
	LogError("validation failed: %v", "timeout")
	Logger().Debug().Str("word", "apple").Msg("secret chosen")

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "session abc started")
	assert.Contains(t, string(data), "validation failed: timeout")
	assert.Contains(t, string(data), `"word":"apple"`)
}

func TestInit_RespectsLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "error"))
	defer Close()

	LogInfo("hidden")
	LogError("shown")

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestInit_RotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	big := make([]byte, maxLogSize+1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "debug.log"), big, 0o600))

	require.NoError(t, Init(dir, "info"))
	defer Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	info, err := os.Stat(GetLogPath())
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestLogger_DiscardsBeforeInit(t *testing.T) {
	Close()
	assert.NotPanics(t, func() {
		LogInfo("nobody hears this")
		LogPanic("boom")
	})
}
