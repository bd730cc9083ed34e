package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/layoutsync/internal/fragment"
	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "index.html", cfg.Source)
	assert.Equal(t, []string{"cookies.html", "community.html", "privacy-policy.html", "press.html"}, cfg.Targets)
	require.Len(t, cfg.Fragments, 5)
	assert.Equal(t, []fragment.Selector{
		fragment.ByID("nav", "mobileMenu"),
		fragment.ByClass("nav", "mobile-menu"),
	}, cfg.Fragments[2].Selectors())
	assert.Equal(t, []fragment.Selector{fragment.First("header")}, cfg.Fragments[0].Selectors())
	assert.Equal(t, "body", cfg.Body.Tag)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
site_dir: site
targets: [about.html]
watch:
  debounce: 2s
logging:
  level: DEBUG
  format: json
`))
	require.NoError(t, err)

	assert.Equal(t, "site", cfg.SiteDir)
	assert.Equal(t, "index.html", cfg.Source)
	assert.Equal(t, []string{"about.html"}, cfg.Targets)
	assert.Len(t, cfg.Fragments, 5)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
}

func TestParse_EmptyDocumentGivesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	_, err := Parse([]byte("sourcee: index.html\n"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing source", func(c *Config) { c.Source = "" }},
		{"no targets", func(c *Config) { c.Targets = nil }},
		{"source is target", func(c *Config) { c.Targets = append(c.Targets, "./index.html") }},
		{"duplicate target", func(c *Config) { c.Targets = []string{"a.html", "a.html"} }},
		{"empty target", func(c *Config) { c.Targets = []string{" "} }},
		{"no fragments", func(c *Config) { c.Fragments = nil }},
		{"fragment without name", func(c *Config) { c.Fragments[0].Name = "" }},
		{"duplicate fragment", func(c *Config) { c.Fragments[1].Name = c.Fragments[0].Name }},
		{"fragment tag with bracket", func(c *Config) { c.Fragments[0].Tag = "<header" }},
		{"body tag empty", func(c *Config) { c.Body.Tag = "" }},
		{"class with space", func(c *Config) { c.Body.Classes.Required = []string{"a b"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
		})
	}
}

func TestValidate_DisabledBodySkipsBodyChecks(t *testing.T) {
	cfg := Default()
	cfg.Body.Disabled = true
	cfg.Body.Tag = ""
	assert.NoError(t, Validate(cfg))
}

func TestLoad_ExpandsEnvFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LAYOUTSYNC_TEST_SITE=public\n"), 0o600))
	path := filepath.Join(dir, "layoutsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site_dir: ${LAYOUTSYNC_TEST_SITE}\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LAYOUTSYNC_TEST_SITE") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.SiteDir)
}

func TestLoad_ProcessEnvWinsOverDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAYOUTSYNC_TEST_SOURCE", "home.html")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LAYOUTSYNC_TEST_SOURCE=other.html\n"), 0o600))
	path := filepath.Join(dir, "layoutsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: ${LAYOUTSYNC_TEST_SOURCE}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "home.html", cfg.Source)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoad_ValidationErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layoutsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets: [index.html]\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryValidation, ce.Category())
	got, _ := ce.Context().GetString("path")
	assert.Equal(t, path, got)
}

func TestInit_RoundTripsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layoutsync.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = Init(path, false)
	require.Error(t, err)
	assert.NoError(t, Init(path, true))
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, used, err := Resolve("")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(DefaultFileName, []byte("source: home.html\n"), 0o600))
	cfg, used, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, used)
	assert.Equal(t, "home.html", cfg.Source)
}

func TestNormalizeLogging(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel(" Warning "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("verbose"))
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat("JSON"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat(""))
}
