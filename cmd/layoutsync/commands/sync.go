package commands

import (
	"context"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/layoutsync/internal/config"
	"git.home.luguber.info/inful/layoutsync/internal/gitguard"
	"git.home.luguber.info/inful/layoutsync/internal/layoutsync"
	"git.home.luguber.info/inful/layoutsync/internal/logfields"
	"git.home.luguber.info/inful/layoutsync/internal/metrics"
	"git.home.luguber.info/inful/layoutsync/internal/storage"
)

// SyncCmd implements the 'sync' command.
type SyncCmd struct {
	DryRun       bool   `name:"dry-run" short:"n" help:"Report what would change without writing"`
	Diff         bool   `help:"Print a diff for each changed page (implies --dry-run)"`
	MetricsFile  string `name:"metrics-file" help:"Write Prometheus metrics to this textfile after the run" type:"path"`
	RequireClean bool   `name:"require-clean" help:"Refuse to overwrite pages with uncommitted git changes"`
	NoColor      bool   `name:"no-color" help:"Disable colored status output"`
}

func (s *SyncCmd) Run(g *Global, root *CLI) error {
	cfg, _, err := root.loadConfig()
	if err != nil {
		return err
	}
	s.apply(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_, err = RunSync(ctx, cfg, s.flags(), g.stdout())
	return err
}

func (s *SyncCmd) apply(cfg *config.Config) {
	if s.MetricsFile != "" {
		cfg.Metrics.TextfilePath = s.MetricsFile
	}
	if s.RequireClean {
		cfg.Guard.RequireClean = true
	}
}

func (s *SyncCmd) flags() SyncFlags {
	return SyncFlags{DryRun: s.DryRun || s.Diff, Diff: s.Diff, Color: !s.NoColor}
}

// SyncFlags are the per-invocation switches not kept in configuration.
type SyncFlags struct {
	DryRun bool
	Diff   bool
	Color  bool
}

// RunSync performs one sync batch for cfg, printing a status line per target to out.
func RunSync(ctx context.Context, cfg *config.Config, flags SyncFlags, out io.Writer) (*layoutsync.Report, error) {
	opts := syncOptions(cfg)
	opts.DryRun = flags.DryRun
	opts.Diff = flags.Diff
	opts.Logger = slog.Default()
	opts.OnResult = layoutsync.NewStatusPrinter(out, flags.DryRun, flags.Diff, flags.Color).Print

	if cfg.Guard.RequireClean && !flags.DryRun {
		guard, err := gitguard.Open(cfg.SiteDir)
		if err != nil {
			return nil, err
		}
		opts.Guard = guard
	}

	var reg *prom.Registry
	if cfg.Metrics.TextfilePath != "" {
		reg = prom.NewRegistry()
		opts.Recorder = metrics.NewPrometheusRecorder(reg)
	}

	report, err := layoutsync.New(storage.NewFSStore(cfg.SiteDir), opts).Run(ctx)

	if reg != nil {
		if werr := metrics.WriteTextfile(cfg.Metrics.TextfilePath, reg); werr != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Error(werr))
		}
	}
	return report, err
}
