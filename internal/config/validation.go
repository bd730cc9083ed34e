package config

import (
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
)

// Validate checks the configuration for values the synchronizer cannot run with.
func Validate(cfg *Config) error {
	v := &validator{cfg: cfg}
	return v.validate()
}

type validator struct {
	cfg *Config
}

func (v *validator) validate() error {
	if err := v.validateDocuments(); err != nil {
		return err
	}
	if err := v.validateFragments(); err != nil {
		return err
	}
	return v.validateBody()
}

func (v *validator) validateDocuments() error {
	if strings.TrimSpace(v.cfg.Source) == "" {
		return ferrors.ValidationError("source document is required").Build()
	}
	if len(v.cfg.Targets) == 0 {
		return ferrors.ValidationError("at least one target document is required").Build()
	}
	source := filepath.Clean(v.cfg.Source)
	seen := make(map[string]bool, len(v.cfg.Targets))
	for _, target := range v.cfg.Targets {
		if strings.TrimSpace(target) == "" {
			return ferrors.ValidationError("target document path cannot be empty").Build()
		}
		clean := filepath.Clean(target)
		if clean == source {
			return ferrors.ValidationError("source document cannot also be a target").
				WithContext("target", target).
				Build()
		}
		if seen[clean] {
			return ferrors.ValidationError("duplicate target document").
				WithContext("target", target).
				Build()
		}
		seen[clean] = true
	}
	return nil
}

func (v *validator) validateFragments() error {
	if len(v.cfg.Fragments) == 0 {
		return ferrors.ValidationError("at least one fragment is required").Build()
	}
	names := make(map[string]bool, len(v.cfg.Fragments))
	for i, f := range v.cfg.Fragments {
		if strings.TrimSpace(f.Name) == "" {
			return ferrors.ValidationError("fragment name is required").
				WithContext("index", i).
				Build()
		}
		if names[f.Name] {
			return ferrors.ValidationError("duplicate fragment name").
				WithContext("fragment", f.Name).
				Build()
		}
		names[f.Name] = true
		if !validTagName(f.Tag) {
			return ferrors.ValidationError("fragment tag must be a plain element name").
				WithContext("fragment", f.Name).
				WithContext("tag", f.Tag).
				Build()
		}
	}
	return nil
}

func (v *validator) validateBody() error {
	if v.cfg.Body.Disabled {
		return nil
	}
	if !validTagName(v.cfg.Body.Tag) {
		return ferrors.ValidationError("body tag must be a plain element name").
			WithContext("tag", v.cfg.Body.Tag).
			Build()
	}
	rule := v.cfg.Body.Classes
	for _, token := range rule.Required {
		if token == "" || strings.ContainsAny(token, " \t\r\n\"'") {
			return ferrors.ValidationError("required class must be a single token").
				WithContext("class", token).
				Build()
		}
	}
	return nil
}

func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
