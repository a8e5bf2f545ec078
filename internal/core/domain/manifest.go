package domain

import (
	"regexp"
	"slices"

	"go.trai.ch/zerr"
)

// SolanaField is the dotted manifest key holding the primary dependency version.
const SolanaField = "workspace.metadata.cli.solana"

// ToolchainFieldPrefix prefixes the dotted manifest key of a channel.
const ToolchainFieldPrefix = "workspace.metadata.toolchains."

// ToolchainArgumentPrefix is prepended to a version to select a toolchain on the cargo command line.
const ToolchainArgumentPrefix = "+"

// validVersion accepts the characters found in semver strings and rustup toolchain names.
var validVersion = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-]*$`)

// Manifest holds the pinned versions read from the repository manifest.
type Manifest struct {
	Path       string
	Solana     string
	Toolchains map[string]string
}

// ToolchainSpec is a channel resolved to its pinned version.
type ToolchainSpec struct {
	Channel string
	Version string
}

// Argument formats the spec as a toolchain selection flag.
func (s ToolchainSpec) Argument() string {
	return ToolchainArgumentPrefix + s.Version
}

// Requirement lists the manifest entries a caller needs.
type Requirement struct {
	Solana   bool
	Channels []string
}

// ValidateVersion checks that a pinned value can be interpolated into a command line or env file.
func ValidateVersion(field, value string) error {
	if !validVersion.MatchString(value) {
		err := zerr.Wrap(ErrInvalidVersion, "rejected pinned value")
		return zerr.With(zerr.With(err, "field", field), "value", value)
	}
	return nil
}

// Validate checks every value present in the manifest.
func (m *Manifest) Validate() error {
	if m.Solana != "" {
		if err := ValidateVersion(SolanaField, m.Solana); err != nil {
			return err
		}
	}
	for _, channel := range m.Channels() {
		if err := ValidateVersion(ToolchainFieldPrefix+channel, m.Toolchains[channel]); err != nil {
			return err
		}
	}
	return nil
}

// Require checks that every entry named by req is present.
func (m *Manifest) Require(req Requirement) error {
	if req.Solana {
		if _, err := m.SolanaVersion(); err != nil {
			return err
		}
	}
	for _, channel := range req.Channels {
		if _, err := m.Toolchain(channel); err != nil {
			return err
		}
	}
	return nil
}

// SolanaVersion returns the pinned primary dependency version.
func (m *Manifest) SolanaVersion() (string, error) {
	if m.Solana == "" {
		return "", zerr.With(zerr.Wrap(ErrMissingField, "solana version is not pinned"), "field", SolanaField)
	}
	return m.Solana, nil
}

// Toolchain returns the spec pinned for channel.
func (m *Manifest) Toolchain(channel string) (ToolchainSpec, error) {
	version, ok := m.Toolchains[channel]
	if !ok || version == "" {
		return ToolchainSpec{}, zerr.With(zerr.Wrap(ErrUnknownChannel, "no toolchain pinned"), "channel", channel)
	}
	return ToolchainSpec{Channel: channel, Version: version}, nil
}

// Channels returns the pinned channel names in sorted order.
func (m *Manifest) Channels() []string {
	channels := make([]string, 0, len(m.Toolchains))
	for channel := range m.Toolchains {
		channels = append(channels, channel)
	}
	slices.Sort(channels)
	return channels
}

// ToolchainSpecs returns every pinned toolchain, sorted by channel.
func (m *Manifest) ToolchainSpecs() []ToolchainSpec {
	channels := m.Channels()
	specs := make([]ToolchainSpec, 0, len(channels))
	for _, channel := range channels {
		specs = append(specs, ToolchainSpec{Channel: channel, Version: m.Toolchains[channel]})
	}
	return specs
}
