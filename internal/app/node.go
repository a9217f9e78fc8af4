package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cram/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/adapters/notify"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/adapters/remote"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the entry points the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			remote.NodeID,
			notify.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			watcher.WatcherNodeID,
			watcher.DigestsNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
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
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	connector, err := graft.Dep[ports.Connector](ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := graft.Dep[*notify.Notifier](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.DirWatcher](ctx)
	if err != nil {
		return nil, err
	}

	digests, err := graft.Dep[*watcher.Digests](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, connector, notifier, tracer, log, w, digests), nil
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

	return &Components{App: app, Logger: log}, nil
}
