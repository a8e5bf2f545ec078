package ports

import "go.trai.ch/toolpin/internal/core/domain"

// ManifestLoader defines the interface for reading the version manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load decodes and validates the manifest at path.
	Load(path string) (*domain.Manifest, error)

	// DiscoverRoot walks up from start to the directory holding the workspace manifest.
	DiscoverRoot(start string) (string, error)
}
