package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestInitWritesJSONToFile(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	closer, err := Init(false, path)
	require.NoError(t, err)
	slog.Info("schedule loaded", "sessions", 14)
	slog.Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "schedule loaded", rec["msg"])
	assert.Equal(t, float64(14), rec["sessions"])
}

func TestInitDebug(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "app.log")

	closer, err := Init(true, path)
	require.NoError(t, err)
	slog.Debug("clipboard write failed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "clipboard write failed")
}

func TestInitWithoutFileDiscards(t *testing.T) {
	restoreDefault(t)
	closer, err := Init(true, "")
	require.NoError(t, err)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelError))
	assert.NoError(t, closer.Close())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelWarn).Info("dropped")
	assert.Empty(t, buf.String())
	New(&buf, slog.LevelWarn).Warn("kept")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}
