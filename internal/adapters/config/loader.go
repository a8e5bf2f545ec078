// Package config provides the configuration loader for toolpin.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/toolpin/internal/core/domain"
	"go.trai.ch/toolpin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads toolpin.yaml from root and overlays it on the defaults.
func (l *Loader) Load(root string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath := filepath.Join(root, domain.ConfigFileName)

	var file File
	found, err := readAndUnmarshalYAML(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if !found {
		return cfg, nil
	}

	if filepath.IsAbs(file.Manifest) {
		l.Logger.Warn("manifest in " + domain.ConfigFileName + " is absolute; it should be relative to the repository root")
	}

	overlay(&cfg.Manifest, file.Manifest)
	overlay(&cfg.Channel, file.Channel)
	overlay(&cfg.Env.File, file.Env.File)
	overlay(&cfg.Env.SolanaVersion, file.Env.SolanaVersion)
	overlay(&cfg.Env.Toolchain, file.Env.Toolchain)
	overlay(&cfg.Rust.Cargo, file.Rust.Cargo)
	overlay(&cfg.JS.PackageManager, file.JS.PackageManager)
	overlay(&cfg.JS.Dir, file.JS.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// readAndUnmarshalYAML decodes the file at configPath into target.
// It reports false without an error when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is joined from the repository root
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "cannot open config")
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return false, zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, parseErr), "cannot decode config")
	}

	return true, nil
}
