package config

import (
	"time"

	"git.home.luguber.info/inful/layoutsync/internal/classlist"
)

// Default returns the built-in layout: index.html is canonical and the four
// policy/community pages receive its header, footer, mobile nav and overlays.
func Default() *Config {
	return &Config{
		SiteDir: ".",
		Source:  "index.html",
		Targets: []string{"cookies.html", "community.html", "privacy-policy.html", "press.html"},
		Fragments: []FragmentConfig{
			{Name: "header", Tag: "header"},
			{Name: "footer", Tag: "footer"},
			{Name: "nav", Tag: "nav", ID: "mobileMenu", Class: "mobile-menu"},
			{Name: "search-sheet", Tag: "div", ID: "searchSheet"},
			{Name: "menu-overlay", Tag: "div", ID: "menuOverlay"},
		},
		Body: BodyConfig{
			Tag:     "body",
			Classes: classlist.DefaultRule(),
		},
		Watch: WatchConfig{Debounce: 500 * time.Millisecond},
		Audit: AuditConfig{
			ExcludeDirs:     []string{"node_modules", ".git", "new-workspace", "plans"},
			MinPageBytes:    2000,
			SmallPageAllow:  []string{"403.html", "404.html", "500.html"},
			MinMainText:     100,
			RequiredScripts: []string{"js/config.js", "js/auth.js"},
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// applyDefaults fills fields an overlay left empty.
func applyDefaults(cfg *Config) {
	if cfg.SiteDir == "" {
		cfg.SiteDir = "."
	}
	if cfg.Body.Tag == "" {
		cfg.Body.Tag = "body"
	}
	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
}
