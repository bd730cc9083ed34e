package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_RunsAfterChange(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(source, []byte("v1"), 0o600))

	w, err := New([]string{source}, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runs := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			runs <- struct{}{}
			return nil
		})
	}()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "press.html"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(source, []byte("v2"), 0o600))

	select {
	case <-runs:
	case <-ctx.Done():
		t.Fatal("expected a run after the source changed")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_Relevant(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "index.html")

	w, err := New([]string{source}, time.Millisecond, nil)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.True(t, w.relevant(fsnotify.Event{Name: source, Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: source, Op: fsnotify.Create}))
	assert.False(t, w.relevant(fsnotify.Event{Name: source, Op: fsnotify.Chmod}))
	assert.False(t, w.relevant(fsnotify.Event{Name: filepath.Join(dir, "other.html"), Op: fsnotify.Write}))
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "gone", "index.html")}, time.Millisecond, nil)
	assert.Error(t, err)
}
