// Package resolver translates the version manifest into toolchain strings for shell invocations.
package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/toolpin/internal/core/domain"
	"go.trai.ch/toolpin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures where the resolver looks for the repository.
type Options struct {
	// Start is the directory discovery begins from. Empty means the process working directory.
	Start string
	// Root pins the repository root and skips discovery.
	Root string
	// Manifest is the manifest path relative to the root. Empty means Cargo.toml.
	// An absolute manifest with no Root makes its directory the root.
	Manifest string
}

// Resolver reads pinned versions. The manifest is loaded fresh on every call;
// only the repository root is computed once.
type Resolver struct {
	loader ports.ManifestLoader
	opts   Options

	rootOnce sync.Once
	root     string
	rootErr  error
}

// New creates a new Resolver.
func New(loader ports.ManifestLoader, opts Options) *Resolver {
	if opts.Manifest == "" {
		opts.Manifest = domain.ManifestFileName
	}
	return &Resolver{
		loader: loader,
		opts:   opts,
	}
}

// WorkingDirectory returns the absolute repository root.
func (r *Resolver) WorkingDirectory() (string, error) {
	r.rootOnce.Do(func() {
		r.root, r.rootErr = r.resolveRoot()
	})
	return r.root, r.rootErr
}

func (r *Resolver) resolveRoot() (string, error) {
	explicit := r.opts.Root
	if explicit == "" && filepath.IsAbs(r.opts.Manifest) {
		explicit = filepath.Dir(r.opts.Manifest)
	}

	if explicit != "" {
		root, err := filepath.Abs(explicit)
		if err != nil {
			return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrPathResolution, err), "invalid repository root"), "dir", explicit)
		}
		info, err := os.Stat(root)
		if err != nil {
			return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrPathResolution, err), "invalid repository root"), "dir", root)
		}
		if !info.IsDir() {
			return "", zerr.With(zerr.Wrap(domain.ErrPathResolution, "repository root is not a directory"), "dir", root)
		}
		return root, nil
	}

	start := r.opts.Start
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(errors.Join(domain.ErrPathResolution, err), "cannot determine working directory")
		}
		start = cwd
	}

	root, err := r.loader.DiscoverRoot(start)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(root) {
		return "", zerr.With(zerr.Wrap(domain.ErrPathResolution, "discovered root is not absolute"), "dir", root)
	}
	return root, nil
}

// ManifestPath returns the absolute path of the version manifest.
func (r *Resolver) ManifestPath() (string, error) {
	if filepath.IsAbs(r.opts.Manifest) {
		return r.opts.Manifest, nil
	}
	root, err := r.WorkingDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, r.opts.Manifest), nil
}

// Load reads the manifest and checks that every entry in req is present.
func (r *Resolver) Load(req domain.Requirement) (*domain.Manifest, error) {
	path, err := r.ManifestPath()
	if err != nil {
		return nil, err
	}

	m, err := r.loader.Load(path)
	if err != nil {
		return nil, err
	}

	if err := m.Require(req); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return m, nil
}

// SolanaVersion returns the pinned version of the primary dependency.
func (r *Resolver) SolanaVersion() (string, error) {
	m, err := r.Load(domain.Requirement{Solana: true})
	if err != nil {
		return "", err
	}
	return m.SolanaVersion()
}

// Toolchain returns the version pinned for channel, verbatim.
func (r *Resolver) Toolchain(channel string) (string, error) {
	spec, err := r.toolchainSpec(channel)
	if err != nil {
		return "", err
	}
	return spec.Version, nil
}

// ToolchainArgument returns the toolchain selection flag for channel, e.g. "+nightly-2024-05-01".
func (r *Resolver) ToolchainArgument(channel string) (string, error) {
	spec, err := r.toolchainSpec(channel)
	if err != nil {
		return "", err
	}
	return spec.Argument(), nil
}

// Toolchains returns every pinned toolchain sorted by channel.
func (r *Resolver) Toolchains() ([]domain.ToolchainSpec, error) {
	m, err := r.Load(domain.Requirement{})
	if err != nil {
		return nil, err
	}
	return m.ToolchainSpecs(), nil
}

func (r *Resolver) toolchainSpec(channel string) (domain.ToolchainSpec, error) {
	m, err := r.Load(domain.Requirement{Channels: []string{channel}})
	if err != nil {
		return domain.ToolchainSpec{}, err
	}
	return m.Toolchain(channel)
}
