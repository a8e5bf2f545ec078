package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Config holds the tool settings read from toolpin.yaml.
type Config struct {
	Manifest string
	Channel  string
	Env      EnvConfig
	Rust     RustConfig
	JS       JSConfig
}

// EnvConfig names the CI environment file variable and the keys written to it.
type EnvConfig struct {
	File          string
	SolanaVersion string
	Toolchain     string
}

// RustConfig configures the cargo driver.
type RustConfig struct {
	Cargo string
}

// JSConfig configures the JS client wrappers.
type JSConfig struct {
	PackageManager string
	Dir            string
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Manifest: ManifestFileName,
		Channel:  DefaultChannel,
		Env: EnvConfig{
			File:          "GITHUB_ENV",
			SolanaVersion: "SOLANA_VERSION",
			Toolchain:     "TOOLCHAIN_NIGHTLY",
		},
		Rust: RustConfig{Cargo: "cargo"},
		JS: JSConfig{
			PackageManager: "pnpm",
			Dir:            "js",
		},
	}
}

// Validate rejects settings that would be interpolated into commands or
// resolved outside the repository root.
func (c *Config) Validate() error {
	if !validVersion.MatchString(c.Channel) {
		return invalidConfig("channel", c.Channel, "channel is not a toolchain name")
	}
	if !filepath.IsLocal(c.JS.Dir) {
		return invalidConfig("js.dir", c.JS.Dir, "client directory must stay inside the repository")
	}
	return nil
}

func invalidConfig(field, value, msg string) error {
	err := zerr.With(zerr.Wrap(ErrInvalidConfig, msg), "field", field)
	return zerr.With(err, "value", value)
}
