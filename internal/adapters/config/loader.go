// Package config provides the configuration loader for wcw.
package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	// LookupEnv resolves environment variables; os.LookupEnv when nil.
	LookupEnv func(string) (string, bool)
}

// NewLoader creates a new Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{LookupEnv: os.LookupEnv}
}

// Load resolves the settings for the workspace rooted at root.
// The file named by WCW_CONFIG wins over root/.wcw.yaml. A missing default
// file yields the defaults; a missing WCW_CONFIG file is an error.
func (l *Loader) Load(root string) (*domain.Settings, error) {
	settings := domain.DefaultSettings(root)

	path, explicit := l.configPath(root)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			settings.StorePath = filepath.Join(root, settings.StorePath)
			return settings, nil
		}
		return nil, zerr.With(domain.Categorize(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Wcwfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(domain.Categorize(domain.ErrConfigParseFailed, err), "path", path)
	}

	if err := apply(settings, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if !filepath.IsAbs(settings.StorePath) {
		settings.StorePath = filepath.Join(root, settings.StorePath)
	}

	return settings, nil
}

func (l *Loader) configPath(root string) (string, bool) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if p, ok := lookup(domain.ConfigEnvVar); ok && p != "" {
		return p, true
	}
	return filepath.Join(root, domain.ConfigFileName), false
}

//nolint:cyclop // flat list of overrides
func apply(s *domain.Settings, f *Wcwfile) error {
	if f.Store != "" {
		s.StorePath = f.Store
	}

	switch {
	case f.Concurrency < 0:
		return invalid("concurrency", f.Concurrency)
	case f.Concurrency > 0:
		s.Concurrency = f.Concurrency
	}

	if f.FailurePolicy != "" {
		policy := domain.FailurePolicy(f.FailurePolicy)
		if policy != domain.PolicyReport && policy != domain.PolicyStrict {
			return invalid("failure_policy", f.FailurePolicy)
		}
		s.FailurePolicy = policy
	}

	if f.Stager.Command != "" {
		s.StagerCommand = f.Stager.Command
	}
	if f.Stager.Args != nil {
		s.StagerArgs = f.Stager.Args
	}

	if f.VCS.Command != "" {
		s.VCSCommand = f.VCS.Command
	}
	if f.VCS.Remote != "" {
		s.Remote = f.VCS.Remote
	}
	if f.VCS.Branch != "" {
		s.Branch = f.VCS.Branch
	}
	if f.VCS.StashLabel != "" {
		s.StashLabel = f.VCS.StashLabel
	}

	if f.Log.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(f.Log.Level)); err != nil {
			return invalid("log.level", f.Log.Level)
		}
		s.LogLevel = f.Log.Level
	}
	if f.Log.Format != "" {
		if f.Log.Format != "pretty" && f.Log.Format != "json" {
			return invalid("log.format", f.Log.Format)
		}
		s.LogFormat = f.Log.Format
	}

	s.Telemetry = f.Telemetry.Enabled

	return nil
}

func invalid(key string, value any) error {
	return zerr.With(zerr.With(domain.Categorize(domain.ErrInvalidConfig, nil), "key", key), "value", value)
}
