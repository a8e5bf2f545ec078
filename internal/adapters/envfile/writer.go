// Package envfile appends KEY=value lines to a CI environment file.
package envfile

import (
	"errors"
	"os"
	"strings"

	"go.trai.ch/toolpin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.EnvWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Append validates every entry and then writes them in order with a single write.
func (w *Writer) Append(path string, entries []domain.EnvEntry) error {
	if path == "" {
		return domain.ErrEnvFileNotSet
	}

	var b strings.Builder
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		b.WriteString(entry.String())
		b.WriteByte('\n')
	}

	// #nosec G304 -- path is supplied by the CI runner
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.PrivateFilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrEnvFileWriteFailed, err), "cannot append to environment file"), "path", path)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrEnvFileWriteFailed, err), "cannot append to environment file"), "path", path)
	}

	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrEnvFileWriteFailed, err), "cannot append to environment file"), "path", path)
	}

	return nil
}
