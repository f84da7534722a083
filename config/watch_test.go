package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("config:\n  seed: 1\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("config:\n  seed: 2\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for settings file")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, open := <-w.Events
	assert.False(t, open)
}

func TestNewWatcherNeedsPath(t *testing.T) {
	_, err := NewWatcher("")
	assert.ErrorIs(t, err, ErrNoConfigPath)
}
