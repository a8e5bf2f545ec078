package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolpin/cmd/toolpin/commands"
	"go.trai.ch/toolpin/internal/app"
	"go.trai.ch/toolpin/internal/build"
	"go.trai.ch/toolpin/internal/core/domain"
)

type call struct {
	name    string
	opts    app.Options
	channel string
	args    domain.Arguments
	envOpts app.SetEnvOptions
}

type mockApp struct {
	calls []call
	err   error
}

func (m *mockApp) record(c call) error {
	m.calls = append(m.calls, c)
	return m.err
}

func (m *mockApp) SolanaVersion(_ context.Context, opts app.Options) (string, error) {
	return "1.18.3", m.record(call{name: "solana", opts: opts})
}

func (m *mockApp) Toolchain(_ context.Context, opts app.Options, channel string) (string, error) {
	return "2024-05-01", m.record(call{name: "toolchain", opts: opts, channel: channel})
}

func (m *mockApp) ToolchainArgument(_ context.Context, opts app.Options, channel string) (string, error) {
	return "+2024-05-01", m.record(call{name: "toolchain-arg", opts: opts, channel: channel})
}

func (m *mockApp) Toolchains(_ context.Context, opts app.Options) ([]domain.ToolchainSpec, error) {
	return []domain.ToolchainSpec{
		{Channel: "nightly", Version: "2024-05-01"},
		{Channel: "stable", Version: "1.78.0"},
	}, m.record(call{name: "toolchains", opts: opts})
}

func (m *mockApp) WorkingDirectory(_ context.Context, opts app.Options) (string, error) {
	return "/repo", m.record(call{name: "root", opts: opts})
}

func (m *mockApp) SetEnv(_ context.Context, opts app.Options, envOpts app.SetEnvOptions) error {
	return m.record(call{name: "set-env", opts: opts, envOpts: envOpts})
}

func (m *mockApp) Hack(_ context.Context, opts app.Options, args domain.Arguments) error {
	return m.record(call{name: "hack", opts: opts, args: args})
}

func (m *mockApp) JSTest(_ context.Context, opts app.Options, args domain.Arguments) error {
	return m.record(call{name: "js-test", opts: opts, args: args})
}

func (m *mockApp) JSFormat(_ context.Context, opts app.Options, args domain.Arguments) error {
	return m.record(call{name: "js-format", opts: opts, args: args})
}

type recordingFormatter struct {
	json bool
}

func (f *recordingFormatter) SetJSON(enable bool) {
	f.json = enable
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Queries(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		call    string
		channel string
	}{
		{name: "solana version", args: []string{"solana-version"}, want: "1.18.3\n", call: "solana"},
		{name: "toolchain", args: []string{"toolchain", "nightly"}, want: "2024-05-01\n", call: "toolchain", channel: "nightly"},
		{
			name: "toolchain argument", args: []string{"toolchain-arg", "nightly"},
			want: "+2024-05-01\n", call: "toolchain-arg", channel: "nightly",
		},
		{name: "toolchains", args: []string{"toolchains"}, want: "nightly=2024-05-01\nstable=1.78.0\n", call: "toolchains"},
		{name: "root", args: []string{"root"}, want: "/repo\n", call: "root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			out, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			require.Len(t, m.calls, 1)
			assert.Equal(t, tt.call, m.calls[0].name)
			assert.Equal(t, tt.channel, m.calls[0].channel)
		})
	}
}

func TestCommands_GlobalFlags(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "--root", "/repo", "--manifest", "pins.toml", "solana-version")
	require.NoError(t, err)

	require.Len(t, m.calls, 1)
	assert.Equal(t, app.Options{Root: "/repo", Manifest: "pins.toml"}, m.calls[0].opts)
}

func TestCommands_ToolchainRequiresChannel(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "toolchain")
	require.Error(t, err)
	assert.Empty(t, m.calls)
}

func TestCommands_Errors(t *testing.T) {
	m := &mockApp{err: errors.New("simulated error")}
	out, err := execute(t, m, "solana-version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
	assert.Empty(t, out)
}

func TestCommands_SetEnv(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "ci", "set-env", "--env-file", "/tmp/env")
	require.NoError(t, err)

	require.Len(t, m.calls, 1)
	assert.Equal(t, "set-env", m.calls[0].name)
	assert.Equal(t, app.SetEnvOptions{EnvFile: "/tmp/env"}, m.calls[0].envOpts)
}

func TestCommands_Passthrough(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		call   string
		want   domain.Arguments
		dryRun bool
	}{
		{
			name: "hack forwards after separator",
			args: []string{"rust", "hack", "--", "-p", "generic-token"},
			call: "hack",
			want: domain.Arguments{"-p", "generic-token"},
		},
		{
			name:   "hack dry run without arguments",
			args:   []string{"rust", "hack", "--dry-run"},
			call:   "hack",
			want:   domain.Arguments{},
			dryRun: true,
		},
		{
			name: "hack forwards cargo flags",
			args: []string{"rust", "hack", "--features", "x"},
			call: "hack",
			want: domain.Arguments{"--features", "x"},
		},
		{
			name:   "hack dry run before cargo flags",
			args:   []string{"rust", "hack", "--dry-run", "--features", "x", "--dry-run"},
			call:   "hack",
			want:   domain.Arguments{"--features", "x", "--dry-run"},
			dryRun: true,
		},
		{
			name: "hack keeps a later separator",
			args: []string{"rust", "hack", "-p", "generic-token", "--", "--nocapture"},
			call: "hack",
			want: domain.Arguments{"-p", "generic-token", "--", "--nocapture"},
		},
		{
			name: "js test keeps flags after folder",
			args: []string{"js", "test", "generic-token", "--watch=false", "--dry-run"},
			call: "js-test",
			want: domain.Arguments{"generic-token", "--watch=false", "--dry-run"},
		},
		{
			name:   "js format dry run",
			args:   []string{"js", "format", "--dry-run", "generic-token"},
			call:   "js-format",
			want:   domain.Arguments{"generic-token"},
			dryRun: true,
		},
		{
			name: "js test without folder reaches app",
			args: []string{"js", "test"},
			call: "js-test",
			want: domain.Arguments{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)

			require.Len(t, m.calls, 1)
			assert.Equal(t, tt.call, m.calls[0].name)
			assert.Equal(t, tt.want, m.calls[0].args)
			assert.Equal(t, tt.dryRun, m.calls[0].opts.DryRun)
		})
	}
}

func TestCommands_JSONLogs(t *testing.T) {
	m := &mockApp{}
	f := &recordingFormatter{}

	cli := commands.New(m).WithLogFormatter(f)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--json-logs", "root"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.True(t, f.json)
}

func TestCommands_HackGlobalFlags(t *testing.T) {
	t.Run("before and after the command", func(t *testing.T) {
		m := &mockApp{}
		f := &recordingFormatter{}

		cli := commands.New(m).WithLogFormatter(f)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"--root", "/repo", "rust", "hack", "--manifest=pins/Cargo.toml", "--json-logs", "--workspace"})
		require.NoError(t, cli.Execute(context.Background()))

		require.Len(t, m.calls, 1)
		assert.Equal(t, app.Options{Root: "/repo", Manifest: "pins/Cargo.toml"}, m.calls[0].opts)
		assert.Equal(t, domain.Arguments{"--workspace"}, m.calls[0].args)
		assert.True(t, f.json)
	})

	t.Run("missing flag value", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "rust", "hack", "--root")
		require.Error(t, err)
		assert.ErrorContains(t, err, "flag needs an argument")
		assert.Empty(t, m.calls)
	})

	t.Run("invalid dry run value", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "rust", "hack", "--dry-run=maybe")
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid boolean flag value")
		assert.Empty(t, m.calls)
	})

	t.Run("help", func(t *testing.T) {
		m := &mockApp{}
		out, err := execute(t, m, "rust", "hack", "--help")
		require.NoError(t, err)
		assert.Contains(t, out, "cargo hack")
		assert.Contains(t, out, "--dry-run")
		assert.Empty(t, m.calls)
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "toolpin version "+build.Version)
	assert.Contains(t, out, "commit: "+build.Commit)
}
