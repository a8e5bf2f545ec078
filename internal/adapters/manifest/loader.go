// Package manifest reads pinned toolchain versions from a Cargo workspace manifest.
package manifest

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/toolpin/internal/core/domain"
	"go.trai.ch/zerr"
)

// workspaceKey is the top-level table that marks a workspace root manifest.
const workspaceKey = "workspace"

// Loader implements ports.ManifestLoader using TOML files.
type Loader struct {
	fileName string
}

// NewLoader creates a new Loader that discovers files named Cargo.toml.
func NewLoader() *Loader {
	return &Loader{fileName: domain.ManifestFileName}
}

// Load decodes the manifest at path and validates every pinned value.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	// #nosec G304 -- manifest path is resolved from the repository root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestRead, err), "cannot open manifest"), "path", path)
	}

	var doc cargoManifest
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestRead, err), "cannot decode manifest"), "path", path)
	}

	m := &domain.Manifest{
		Path:       path,
		Toolchains: map[string]string{},
	}
	if doc.Workspace != nil {
		m.Solana = doc.Workspace.Metadata.CLI.Solana
		for channel, version := range doc.Workspace.Metadata.Toolchains {
			m.Toolchains[channel] = version
		}
	}

	if err := m.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return m, nil
}

// DiscoverRoot walks up from start to the nearest directory whose manifest
// declares a [workspace] table. If no workspace manifest exists, the
// directory of the nearest manifest is returned instead.
func (l *Loader) DiscoverRoot(start string) (string, error) {
	currentDir, err := filepath.Abs(start)
	if err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrPathResolution, err), "invalid start directory"), "dir", start)
	}

	var crateCandidate string

	for {
		candidate := filepath.Join(currentDir, l.fileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			isWorkspace, wsErr := declaresWorkspace(candidate)
			if wsErr != nil {
				return "", wsErr
			}
			if isWorkspace {
				return currentDir, nil
			}
			if crateCandidate == "" {
				crateCandidate = currentDir
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	if crateCandidate != "" {
		return crateCandidate, nil
	}

	return "", zerr.With(zerr.Wrap(domain.ErrPathResolution, "no "+l.fileName+" found"), "dir", start)
}

func declaresWorkspace(path string) (bool, error) {
	var doc map[string]any
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return false, zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestRead, err), "cannot decode manifest"), "path", path)
	}
	return md.IsDefined(workspaceKey), nil
}
