package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bim/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/bim/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/bim/internal/adapters/monitor" //nolint:depguard // Wired in app layer
	"go.trai.ch/bim/internal/adapters/project" //nolint:depguard // Wired in app layer
	"go.trai.ch/bim/internal/adapters/scanner" //nolint:depguard // Wired in app layer
	"go.trai.ch/bim/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/bim/internal/engine/aspect"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components. The
// struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App     *App
	Logger  ports.Logger
	Manager *aspect.Manager
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scanner.NodeID,
			aspect.NodeID,
			project.NodeID,
			watcher.NodeID,
			monitor.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			aspect.NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	scan, err := graft.Dep[ports.WorkspaceScanner](ctx)
	if err != nil {
		return nil, err
	}

	manager, err := graft.Dep[*aspect.Manager](ctx)
	if err != nil {
		return nil, err
	}

	creator, err := graft.Dep[ports.ProjectCreator](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.BuildWatcher](ctx)
	if err != nil {
		return nil, err
	}

	mon, err := graft.Dep[ports.Monitor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, scan, manager, creator, watch, mon, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	mainApp, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	manager, err := graft.Dep[*aspect.Manager](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:     mainApp,
		Logger:  log,
		Manager: manager,
	}, nil
}
