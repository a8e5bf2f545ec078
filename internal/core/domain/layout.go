package domain

const (
	// ManifestFileName is the default name of the version manifest.
	ManifestFileName = "Cargo.toml"

	// ConfigFileName is the name of the optional tool configuration file.
	ConfigFileName = "toolpin.yaml"

	// DefaultChannel is the toolchain channel used by CI and the powerset check.
	DefaultChannel = "nightly"

	// PrivateFilePerm is the permission used when creating the environment file (rw-------).
	PrivateFilePerm = 0o600
)
