// Package detector inspects the process environment to pick an execution mode.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Mode is how external commands are attached to the terminal.
type Mode int

const (
	// ModePipe streams command output through plain pipes.
	ModePipe Mode = iota
	// ModePTY runs commands in a pseudo-terminal so they keep colors and progress bars.
	ModePTY
)

// IsCI reports whether the CI environment variable is set to a truthy value.
func IsCI(getenv func(string) string) bool {
	ci := getenv("CI")
	return ci == "true" || ci == "1"
}

// DetectMode returns ModePTY when stdout is a terminal outside of CI.
func DetectMode() Mode {
	return ResolveMode(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

// ResolveMode decides the mode from a terminal check and the environment.
func ResolveMode(isTTY bool, getenv func(string) string) Mode {
	if !isTTY || IsCI(getenv) {
		return ModePipe
	}
	return ModePTY
}
