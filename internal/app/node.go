package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolpin/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/toolpin/internal/adapters/envfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/toolpin/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/toolpin/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/toolpin/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/toolpin/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			config.NodeID,
			shell.NodeID,
			envfile.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	configs, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	envWriter, err := graft.Dep[ports.EnvWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, configs, executor, envWriter, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
