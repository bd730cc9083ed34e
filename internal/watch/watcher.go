// Package watch re-runs a function whenever one of a set of files changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
	"git.home.luguber.info/inful/layoutsync/internal/logfields"
)

// Watcher debounces filesystem events for a fixed set of files.
//
// The containing directories are watched rather than the files, so editors
// that save by renaming over the original still trigger a run.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    []string
	debounce time.Duration
	logger   *slog.Logger
}

// New watches files, waiting debounce after the last event before a run.
func New(files []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryWatch, "failed to create file watcher").Fatal().Build()
	}

	w := &Watcher{fsw: fsw, debounce: debounce, logger: logger}
	var dirs []string
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fsw.Close()
			return nil, ferrors.WrapError(err, ferrors.CategoryWatch, "failed to resolve watched path").
				Fatal().
				WithContext("path", f).
				Build()
		}
		w.files = append(w.files, abs)
		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, ferrors.WrapError(err, ferrors.CategoryWatch, "failed to watch directory").
				Fatal().
				WithContext("dir", dir).
				Build()
		}
	}
	return w, nil
}

// Run calls fn once per debounced burst of changes until ctx is done.
//
// fn runs on the calling goroutine, so two calls never overlap; events that
// arrive while it runs start a new debounce afterwards. Errors from fn are
// logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("Change detected", logfields.File(ev.Name), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := fn(ctx); err != nil {
				w.logger.Warn("Run after change failed", logfields.Error(err))
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return slices.Contains(w.files, abs)
}
