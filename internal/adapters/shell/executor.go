// Package shell provides an executor that runs external commands one at a time.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/toolpin/internal/adapters/detector"
	"go.trai.ch/toolpin/internal/core/domain"
	"go.trai.ch/toolpin/internal/core/ports"
	"go.trai.ch/zerr"
)

// ptyDrainTimeout bounds how long output is drained after the child exits.
// A background grandchild can hold the terminal open indefinitely.
const ptyDrainTimeout = 2 * time.Second

// Executor implements ports.Executor using os/exec, optionally inside a PTY.
type Executor struct {
	logger ports.Logger
	mode   detector.Mode
}

// NewExecutor creates a new Executor in the given mode.
func NewExecutor(logger ports.Logger, mode detector.Mode) *Executor {
	return &Executor{
		logger: logger,
		mode:   mode,
	}
}

// Execute runs the invocation in inv.Dir and waits for it to finish.
// An invocation without a command name is a no-op.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error {
	argv := inv.Argv()
	if len(argv) == 0 {
		return nil
	}

	e.logger.Info(inv.String())

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command comes from the repository config
	cmd.Dir = inv.Dir

	var err error
	if e.mode == detector.ModePTY {
		err = runPTY(ctx, cmd, stdout)
	} else {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		err = cmd.Run()
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(errors.Join(domain.ErrCommandFailed, err), "external command failed")
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		wrapped = zerr.With(wrapped, "command", strings.Join(argv, " "))
		return zerr.With(wrapped, "dir", inv.Dir)
	}

	return nil
}

// runPTY starts cmd attached to a pseudo-terminal and copies its merged output to stdout.
func runPTY(ctx context.Context, cmd *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// The copy ends with EIO once every holder of the terminal has closed it.
		_, _ = io.Copy(stdout, ptmx)
	}()

	waitErr := cmd.Wait()

	drain := time.NewTimer(ptyDrainTimeout)
	defer drain.Stop()

	select {
	case <-ioDone:
	case <-ctx.Done():
	case <-drain.C:
	}
	_ = ptmx.Close()

	return waitErr
}
