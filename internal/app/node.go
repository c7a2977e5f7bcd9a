package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/addon/internal/adapters/archive"   //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/adapters/modules"   //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/adapters/resources" //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/addon/internal/engine/discovery"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
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
			fs.FileSystemNodeID,
			manifest.NodeID,
			discovery.NodeID,
			modules.NodeID,
			resources.NodeID,
			archive.NodeID,
			watcher.NodeID,
			metrics.NodeID,
			telemetry.BridgeNodeID,
			logger.NodeID,
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
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[*discovery.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	mods, err := graft.Dep[ports.ModuleLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[*resources.Store](ctx)
	if err != nil {
		return nil, err
	}

	archives, err := graft.Dep[ports.ArchiveLoader](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	prom, err := graft.Dep[*metrics.Prometheus](ctx)
	if err != nil {
		return nil, err
	}

	bridge, err := graft.Dep[*telemetry.LogBridge](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, fsys, reader, scanner, mods, store, archives, w, prom, bridge, log), nil
}
