// Package config provides the configuration loader for cram.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validOutputModes = []string{"auto", "tui", "linear"}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// WithFS replaces the filesystem the loader reads from.
func (l *Loader) WithFS(fsys FileSystem) *Loader {
	l.FS = fsys
	return l
}

// Load reads the configuration at path, or at the default location when path is empty.
// A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.DefaultConfigPath()
	}

	data, err := l.FS.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.Logger.Debug("no config at " + path + "; using defaults")
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}

	cfg, err := l.resolve(&file, filepath.Dir(path))
	if err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}
	return cfg, nil
}

// resolve applies defaults to the parsed file. Relative credential paths
// are resolved against the directory holding the config file.
func (l *Loader) resolve(file *Configfile, dir string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if v := strings.TrimSpace(file.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(file.Identity.CredentialsPath); v != "" {
		if !filepath.IsAbs(v) {
			v = filepath.Join(dir, v)
		}
		cfg.CredentialsPath = v
	}
	if v := strings.TrimSpace(file.Output.Mode); v != "" {
		if !isValidOutputMode(v) {
			return nil, zerr.With(zerr.New("unknown output mode"), "mode", v)
		}
		cfg.OutputMode = v
	}
	if v := strings.TrimSpace(file.Request.Timeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil || timeout <= 0 {
			return nil, zerr.With(zerr.New("request timeout must be a positive duration"), "timeout", v)
		}
		cfg.RequestTimeout = timeout
	}
	if v := strings.TrimSpace(file.Serve.Listen); v != "" {
		cfg.Listen = v
	}
	cfg.JSONLog = file.Log.JSON

	return cfg, nil
}

func isValidOutputMode(mode string) bool {
	for _, m := range validOutputModes {
		if m == mode {
			return true
		}
	}
	return false
}
