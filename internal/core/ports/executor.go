// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/toolpin/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation in its own directory and waits for it to finish.
	//
	// It returns an error if the command cannot be started or exits unsuccessfully.
	Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error
}
