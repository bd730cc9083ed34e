package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
)

// envFiles are loaded from the config file's directory before expansion.
// Variables already present in the process environment win.
var envFiles = []string{".env", ".env.local"}

// Load reads the configuration file at path and overlays it on Default().
//
// ${VAR} references are expanded from the environment after any .env files
// next to the config have been loaded. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	// #nosec G304 - config path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("path", path).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", path).
			Build()
	}

	loadEnvFiles(filepath.Dir(path))

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		if ce, ok := ferrors.AsClassified(err); ok {
			return nil, ce.WithContext("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, then validates the result.
// Lists in the document replace the default lists rather than extending them.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config").
				Fatal().
				Build()
		}
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads explicit when given, otherwise DefaultFileName from the
// working directory when it exists, otherwise the built-in defaults.
// The returned path is empty when defaults were used.
func Resolve(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		cfg, err := Load(DefaultFileName)
		return cfg, DefaultFileName, err
	}
	cfg := Default()
	if err := Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, "", nil
}

func loadEnvFiles(dir string) {
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		// Load never overrides variables that are already set.
		_ = godotenv.Load(p)
	}
}

// Init writes the default configuration to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode config").Fatal().Build()
	}
	if err := enc.Close(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode config").Fatal().Build()
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}
