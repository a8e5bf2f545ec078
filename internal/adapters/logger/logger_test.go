package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolpin/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Golden(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "empty info",
			log:        func(l *logger.Logger) { l.Info("") },
			goldenName: "info_empty",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("some warning") },
			goldenName: "warn_basic",
		},
		{
			name:       "stdlib error",
			log:        func(l *logger.Logger) { l.Error(os.ErrPermission) },
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			log:        func(l *logger.Logger) { l.Error(errors.New("line one\n  line two")) },
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			log: func(l *logger.Logger) {
				l.Error(zerr.Wrap(errors.New("underlying cause"), "wrapped message"))
			},
			goldenName: "error_chain_zerr_two",
		},
		{
			name: "zerr metadata",
			log: func(l *logger.Logger) {
				l.Error(zerr.With(zerr.New("unknown toolchain channel"), "channel", "beta"))
			},
			goldenName: "error_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.Wrap(errors.New("no such file"), "failed to read version manifest"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Contains(t, record["error"], "failed to read version manifest")
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "zerr with metadata stays one entry",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			messages := make([]string, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message())
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestFormatErrorEntries_MetadataSorted(t *testing.T) {
	err := zerr.With(zerr.With(zerr.New("command failed"), "exit_code", 2), "command", "cargo")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))
	assert.Equal(t, "Error: command failed (command=cargo, exit_code=2)", got)
}
