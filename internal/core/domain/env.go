package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

var validEnvKey = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

// EnvEntry is a single KEY=value line destined for the CI environment file.
type EnvEntry struct {
	Key   string
	Value string
}

// Validate checks the key is a valid variable name.
func (e EnvEntry) Validate() error {
	if !validEnvKey.MatchString(e.Key) {
		return zerr.With(zerr.Wrap(ErrInvalidEnvKey, "rejected environment entry"), "key", e.Key)
	}
	return nil
}

// String renders the entry as KEY=value.
func (e EnvEntry) String() string {
	return e.Key + "=" + e.Value
}
