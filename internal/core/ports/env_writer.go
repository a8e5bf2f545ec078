package ports

import "go.trai.ch/toolpin/internal/core/domain"

// EnvWriter defines the interface for appending to a CI environment file.
//
//go:generate mockgen -source=env_writer.go -destination=mocks/mock_env_writer.go -package=mocks
type EnvWriter interface {
	// Append writes the entries as KEY=value lines to the end of the file at path.
	Append(path string, entries []domain.EnvEntry) error
}
