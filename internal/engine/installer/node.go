package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wcw/internal/adapters/bower"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/git"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/store"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			bower.NodeID,
			bower.ManifestNodeID,
			store.NodeID,
			git.NodeID,
			fs.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			stager, err := graft.Dep[*bower.Stager](ctx)
			if err != nil {
				return nil, err
			}

			manifests, err := graft.Dep[ports.ManifestReader](ctx)
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

			fileSystem, err := graft.Dep[ports.FileSystem](ctx)
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

			return New(settings.Root, stager, workspace, vcs, fileSystem, manifests, log, tracer), nil
		},
	})
}
