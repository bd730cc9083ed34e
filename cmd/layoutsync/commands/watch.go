package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"git.home.luguber.info/inful/layoutsync/internal/config"
	"git.home.luguber.info/inful/layoutsync/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce     time.Duration `help:"Quiet period after a change before syncing (overrides config)"`
	RequireClean bool          `name:"require-clean" help:"Refuse to overwrite pages with uncommitted git changes"`
	NoColor      bool          `name:"no-color" help:"Disable colored status output"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, used, err := root.loadConfig()
	if err != nil {
		return err
	}
	w.apply(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	flags := SyncFlags{Color: !w.NoColor}
	if _, err := RunSync(ctx, cfg, flags, g.stdout()); err != nil {
		slog.Warn("Initial sync failed", "error", err)
	}

	files := []string{filepath.Join(cfg.SiteDir, cfg.Source)}
	if used != "" {
		files = append(files, used)
	}
	watcher, err := watch.New(files, cfg.Watch.Debounce, slog.Default())
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	slog.Info("Watching for changes", "files", files, "debounce", cfg.Watch.Debounce.String())
	err = watcher.Run(ctx, func(ctx context.Context) error {
		if used != "" {
			next, _, err := root.loadConfig()
			if err != nil {
				return err
			}
			w.apply(next)
			cfg = next
		}
		_, syncErr := RunSync(ctx, cfg, flags, g.stdout())
		return syncErr
	})
	slog.Info("Watch stopped")
	return err
}

func (w *WatchCmd) apply(cfg *config.Config) {
	if w.Debounce > 0 {
		cfg.Watch.Debounce = w.Debounce
	}
	if w.RequireClean {
		cfg.Guard.RequireClean = true
	}
}
