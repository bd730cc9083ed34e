// Package config holds the layoutsync configuration: the compiled-in site
// layout defaults and an optional YAML file that overlays them.
package config

import (
	"time"

	"git.home.luguber.info/inful/layoutsync/internal/classlist"
	"git.home.luguber.info/inful/layoutsync/internal/fragment"
)

// DefaultFileName is the configuration file picked up from the working directory.
const DefaultFileName = "layoutsync.yaml"

// Config represents the application configuration.
type Config struct {
	// SiteDir is the directory source and target paths are relative to.
	SiteDir   string           `yaml:"site_dir"`
	Source    string           `yaml:"source"`
	Targets   []string         `yaml:"targets"`
	Fragments []FragmentConfig `yaml:"fragments"`
	Body      BodyConfig       `yaml:"body"`
	Guard     GuardConfig      `yaml:"guard"`
	Metrics   MetricsConfig    `yaml:"metrics"`
	Watch     WatchConfig      `yaml:"watch"`
	Audit     AuditConfig      `yaml:"audit"`
	Logging   LoggingConfig    `yaml:"logging"`
}

// FragmentConfig names one shared element copied from the source into targets.
//
// With both ID and Class set the element is looked up by id first and by class
// token when no id match exists. With neither set the first element of Tag is used.
type FragmentConfig struct {
	Name  string `yaml:"name"`
	Tag   string `yaml:"tag"`
	ID    string `yaml:"id,omitempty"`
	Class string `yaml:"class,omitempty"`
}

// Selectors returns the lookup order for the fragment.
func (f FragmentConfig) Selectors() []fragment.Selector {
	var sels []fragment.Selector
	if f.ID != "" {
		sels = append(sels, fragment.ByID(f.Tag, f.ID))
	}
	if f.Class != "" {
		sels = append(sels, fragment.ByClass(f.Tag, f.Class))
	}
	if len(sels) == 0 {
		sels = append(sels, fragment.First(f.Tag))
	}
	return sels
}

// BodyConfig controls the class merge applied to each target's body tag.
type BodyConfig struct {
	Disabled bool           `yaml:"disabled,omitempty"`
	Tag      string         `yaml:"tag"`
	Classes  classlist.Rule `yaml:"classes"`
}

// GuardConfig controls the git worktree check performed before writing.
type GuardConfig struct {
	RequireClean bool `yaml:"require_clean"`
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	// TextfilePath, when set, receives the run's metrics in Prometheus text format.
	TextfilePath string `yaml:"textfile_path,omitempty"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// AuditConfig controls the placeholder and completeness audit.
type AuditConfig struct {
	ExcludeDirs     []string `yaml:"exclude_dirs"`
	MinPageBytes    int      `yaml:"min_page_bytes"`
	SmallPageAllow  []string `yaml:"small_page_allow"`
	MinMainText     int      `yaml:"min_main_text"`
	RequiredScripts []string `yaml:"required_scripts"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}
