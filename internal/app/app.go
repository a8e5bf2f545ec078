// Package app implements the application layer for toolpin.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/toolpin/internal/core/domain"
	"go.trai.ch/toolpin/internal/core/ports"
	"go.trai.ch/toolpin/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests ports.ManifestLoader
	configs   ports.ConfigLoader
	executor  ports.Executor
	envWriter ports.EnvWriter
	logger    ports.Logger
	stdout    io.Writer
	stderr    io.Writer
	getenv    func(string) string
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	configs ports.ConfigLoader,
	executor ports.Executor,
	envWriter ports.EnvWriter,
	log ports.Logger,
) *App {
	return &App{
		manifests: manifests,
		configs:   configs,
		executor:  executor,
		envWriter: envWriter,
		logger:    log,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		getenv:    os.Getenv,
	}
}

// WithOutput sets the writers external commands and dry-run listings go to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithGetenv replaces the environment lookup. This is primarily used for testing.
func (a *App) WithGetenv(getenv func(string) string) *App {
	a.getenv = getenv
	return a
}

// Options holds the global flags shared by every command.
type Options struct {
	// Root pins the repository root. Empty means discover it from the working directory.
	Root string
	// Manifest overrides the manifest path from the config. An absolute path
	// with no Root anchors the root at its directory.
	Manifest string
	// DryRun prints invocations instead of running them.
	DryRun bool
}

// SetEnvOptions configures the SetEnv method.
type SetEnvOptions struct {
	// EnvFile is the file to append to. Empty means read it from the configured variable.
	EnvFile string
}

// session is the per-command view of the repository.
type session struct {
	root     string
	config   *domain.Config
	resolver *resolver.Resolver
}

// open resolves the repository root, reads the config and prepares a resolver.
func (a *App) open(opts Options) (*session, error) {
	root, err := resolver.New(a.manifests, resolver.Options{Root: opts.Root, Manifest: opts.Manifest}).WorkingDirectory()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve repository root")
	}

	cfg, err := a.configs.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	manifestName := cfg.Manifest
	if opts.Manifest != "" {
		manifestName = opts.Manifest
	}

	return &session{
		root:     root,
		config:   cfg,
		resolver: resolver.New(a.manifests, resolver.Options{Root: root, Manifest: manifestName}),
	}, nil
}

// WorkingDirectory returns the absolute repository root.
func (a *App) WorkingDirectory(_ context.Context, opts Options) (string, error) {
	s, err := a.open(opts)
	if err != nil {
		return "", err
	}
	return s.root, nil
}

// SolanaVersion returns the pinned Solana version.
func (a *App) SolanaVersion(_ context.Context, opts Options) (string, error) {
	s, err := a.open(opts)
	if err != nil {
		return "", err
	}
	return s.resolver.SolanaVersion()
}

// Toolchain returns the toolchain pinned for channel.
func (a *App) Toolchain(_ context.Context, opts Options, channel string) (string, error) {
	s, err := a.open(opts)
	if err != nil {
		return "", err
	}
	return s.resolver.Toolchain(channel)
}

// ToolchainArgument returns the cargo toolchain flag for channel.
func (a *App) ToolchainArgument(_ context.Context, opts Options, channel string) (string, error) {
	s, err := a.open(opts)
	if err != nil {
		return "", err
	}
	return s.resolver.ToolchainArgument(channel)
}

// Toolchains returns every pinned toolchain.
func (a *App) Toolchains(_ context.Context, opts Options) ([]domain.ToolchainSpec, error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}
	return s.resolver.Toolchains()
}

// SetEnv appends the Solana version and the CI toolchain to the CI environment file.
// Both values are resolved before anything is written.
func (a *App) SetEnv(_ context.Context, opts Options, envOpts SetEnvOptions) error {
	s, err := a.open(opts)
	if err != nil {
		return err
	}

	cfg := s.config
	m, err := s.resolver.Load(domain.Requirement{Solana: true, Channels: []string{cfg.Channel}})
	if err != nil {
		return err
	}

	solana, err := m.SolanaVersion()
	if err != nil {
		return err
	}
	toolchain, err := m.Toolchain(cfg.Channel)
	if err != nil {
		return err
	}

	path := envOpts.EnvFile
	if path == "" {
		path = a.getenv(cfg.Env.File)
	}
	if path == "" {
		return zerr.With(zerr.Wrap(domain.ErrEnvFileNotSet, "cannot export pinned versions"), "variable", cfg.Env.File)
	}

	entries := []domain.EnvEntry{
		{Key: cfg.Env.SolanaVersion, Value: solana},
		{Key: cfg.Env.Toolchain, Value: toolchain.Version},
	}
	if err := a.envWriter.Append(path, entries); err != nil {
		return err
	}

	for _, entry := range entries {
		a.logger.Info(entry.String())
	}
	return nil
}

// Hack runs the feature powerset check with the CI toolchain in the repository root.
func (a *App) Hack(ctx context.Context, opts Options, args domain.Arguments) error {
	s, err := a.open(opts)
	if err != nil {
		return err
	}

	toolchain, err := s.resolver.ToolchainArgument(s.config.Channel)
	if err != nil {
		return err
	}

	cmdArgs := append([]string{toolchain, "hack", "check", "--all-targets", "--feature-powerset"}, args...)
	return a.run(ctx, opts, domain.NewInvocation(s.root, s.config.Rust.Cargo, cmdArgs...))
}

// JSTest installs, builds and tests the JS client of the folder named by the first argument.
// The remaining arguments are passed to the test script.
func (a *App) JSTest(ctx context.Context, opts Options, args domain.Arguments) error {
	s, dir, rest, err := a.openClient(opts, args)
	if err != nil {
		return err
	}

	pm := s.config.JS.PackageManager
	return a.run(ctx, opts,
		domain.NewInvocation(dir, pm, "install"),
		domain.NewInvocation(dir, pm, "build"),
		domain.NewInvocation(dir, pm, append([]string{"test"}, rest...)...),
	)
}

// JSFormat installs dependencies and formats the JS client of the folder named by the first argument.
// The remaining arguments are passed to the format script.
func (a *App) JSFormat(ctx context.Context, opts Options, args domain.Arguments) error {
	s, dir, rest, err := a.openClient(opts, args)
	if err != nil {
		return err
	}

	pm := s.config.JS.PackageManager
	return a.run(ctx, opts,
		domain.NewInvocation(dir, pm, "install"),
		domain.NewInvocation(dir, pm, append([]string{"format"}, rest...)...),
	)
}

// openClient resolves <root>/<folder>/<js dir> from the leading folder argument.
func (a *App) openClient(opts Options, args domain.Arguments) (*session, string, domain.Arguments, error) {
	folder, rest, ok := args.Pop()
	if !ok || folder == "" {
		return nil, "", nil, domain.ErrMissingFolder
	}

	s, err := a.open(opts)
	if err != nil {
		return nil, "", nil, err
	}

	dir := filepath.Join(s.root, folder, s.config.JS.Dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, "", nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrPathResolution, err), "client directory not found"), "dir", dir)
	}
	if !info.IsDir() {
		return nil, "", nil, zerr.With(zerr.Wrap(domain.ErrPathResolution, "client path is not a directory"), "dir", dir)
	}

	return s, dir, rest, nil
}

// run executes the invocations in order and stops at the first failure.
func (a *App) run(ctx context.Context, opts Options, invocations ...domain.Invocation) error {
	for _, inv := range invocations {
		if opts.DryRun {
			_, _ = fmt.Fprintln(a.stdout, inv.String())
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.executor.Execute(ctx, inv, a.stdout, a.stderr); err != nil {
			return err
		}
	}
	return nil
}
