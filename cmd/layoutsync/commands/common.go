package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/layoutsync/internal/audit"
	"git.home.luguber.info/inful/layoutsync/internal/config"
	"git.home.luguber.info/inful/layoutsync/internal/layoutsync"
	"git.home.luguber.info/inful/layoutsync/internal/version"
)

// Vars are the kong interpolation variables used in help text and --version.
func Vars() kong.Vars {
	return kong.Vars{
		"config_file": config.DefaultFileName,
		"version":     version.String(),
	}
}

// Global context passed to subcommands.
type Global struct {
	Stdout io.Writer
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path (default: ${config_file} when present)" type:"path"`
	SiteDir   string           `name:"site-dir" short:"C" help:"Site directory holding the documents (overrides config)" type:"path"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format: text or json (overrides config)"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Sync  SyncCmd  `cmd:"" default:"withargs" help:"Copy shared fragments from the source page into the target pages (default)"`
	Watch WatchCmd `cmd:"" help:"Sync once, then again whenever the source page or config changes"`
	Audit AuditCmd `cmd:"" help:"Report placeholder links and incomplete pages"`
	Init  InitCmd  `cmd:"" help:"Write the default configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	c.setupLogging(config.LoggingConfig{Level: config.LogLevelInfo, Format: config.NormalizeLogFormat(c.LogFormat)})
	return nil
}

// setupLogging installs the default logger. -v and --log-format win over cfg.
func (c *CLI) setupLogging(cfg config.LoggingConfig) {
	level := cfg.Level.SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	format := cfg.Format
	if c.LogFormat != "" {
		format = config.NormalizeLogFormat(c.LogFormat)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// loadConfig resolves the configuration, applies global overrides and
// reconfigures logging from it. used is empty when built-in defaults apply.
func (c *CLI) loadConfig() (cfg *config.Config, used string, err error) {
	cfg, used, err = config.Resolve(c.Config)
	if err != nil {
		return nil, "", err
	}
	if c.SiteDir != "" {
		cfg.SiteDir = c.SiteDir
	}
	c.setupLogging(cfg.Logging)
	if used != "" {
		slog.Debug("Loaded configuration", "path", used)
	}
	return cfg, used, nil
}

// syncOptions maps configuration onto synchronizer options.
func syncOptions(cfg *config.Config) layoutsync.Options {
	opts := layoutsync.Options{
		Source:  cfg.Source,
		Targets: cfg.Targets,
		BodyTag: cfg.Body.Tag,
	}
	for _, f := range cfg.Fragments {
		opts.Fragments = append(opts.Fragments, layoutsync.Fragment{Name: f.Name, Selectors: f.Selectors()})
	}
	if !cfg.Body.Disabled {
		rule := cfg.Body.Classes
		opts.BodyRule = &rule
	}
	return opts
}

func auditOptions(cfg *config.Config) audit.Options {
	return audit.Options{
		ExcludeDirs:     cfg.Audit.ExcludeDirs,
		MinPageBytes:    cfg.Audit.MinPageBytes,
		SmallPageAllow:  cfg.Audit.SmallPageAllow,
		MinMainText:     cfg.Audit.MinMainText,
		RequiredScripts: cfg.Audit.RequiredScripts,
		Logger:          slog.Default(),
	}
}
