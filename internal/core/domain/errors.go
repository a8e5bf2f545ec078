package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestRead is returned when the version manifest is missing, unreadable or malformed.
	ErrManifestRead = zerr.New("failed to read version manifest")

	// ErrMissingField is returned when the manifest lacks a required key.
	ErrMissingField = zerr.New("missing manifest field")

	// ErrUnknownChannel is returned when no toolchain is pinned for a requested channel.
	ErrUnknownChannel = zerr.New("unknown toolchain channel")

	// ErrInvalidVersion is returned when a pinned value is empty or unsafe to interpolate.
	ErrInvalidVersion = zerr.New("invalid pinned version")

	// ErrPathResolution is returned when the repository root or a sub-directory cannot be resolved.
	ErrPathResolution = zerr.New("failed to resolve path")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is unsafe to use.
	ErrInvalidConfig = zerr.New("invalid config value")

	// ErrEnvFileNotSet is returned when no CI environment file path was supplied.
	ErrEnvFileNotSet = zerr.New("environment file path is not set")

	// ErrEnvFileWriteFailed is returned when appending to the environment file fails.
	ErrEnvFileWriteFailed = zerr.New("failed to write environment file")

	// ErrInvalidEnvKey is returned when an environment key is not a valid variable name.
	ErrInvalidEnvKey = zerr.New("invalid environment variable name")

	// ErrMissingFolder is returned when a client command is invoked without a folder argument.
	ErrMissingFolder = zerr.New("missing folder argument")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")
)
