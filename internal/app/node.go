package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wcw/internal/adapters/bower"     //nolint:depguard // Wired in app layer
	"go.trai.ch/wcw/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wcw/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wcw/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wcw/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/wcw/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/wcw/internal/engine/installer"
	"go.trai.ch/wcw/internal/engine/synchronizer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			installer.NodeID,
			synchronizer.NodeID,
			store.NodeID,
			linear.NodeID,
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
			telemetry.TracerNodeID,
			bower.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	inst, err := graft.Dep[*installer.Installer](ctx)
	if err != nil {
		return nil, err
	}

	updater, err := graft.Dep[*synchronizer.Synchronizer](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.WorkspaceStore](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(inst, updater, workspace, reporter, log).WithPolicy(settings.FailurePolicy), nil
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

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	stager, err := graft.Dep[*bower.Stager](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, tracer, stager.Close), nil
}
