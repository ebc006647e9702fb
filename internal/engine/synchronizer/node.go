package synchronizer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wcw/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/git"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/store"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/wcw/internal/engine/installer"
)

// NodeID is the unique identifier for the synchronizer Graft node.
const NodeID graft.ID = "engine.synchronizer"

func init() {
	graft.Register(graft.Node[*Synchronizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			store.NodeID,
			git.NodeID,
			installer.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Synchronizer, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			workspace, err := graft.Dep[ports.WorkspaceStore](ctx)
			if err != nil {
				return nil, err
			}

			vcs, err := graft.Dep[ports.VCSProvider](ctx)
			if err != nil {
				return nil, err
			}

			inst, err := graft.Dep[*installer.Installer](ctx)
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

			opts := Options{
				Branch:     settings.Branch,
				Upstream:   settings.Upstream(),
				StashLabel: settings.StashLabel,
			}
			return New(settings.Root, opts, workspace, vcs, inst, log, tracer), nil
		},
	})
}
