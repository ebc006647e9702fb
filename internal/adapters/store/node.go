package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wcw/internal/adapters/config"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
)

// NodeID is the unique identifier for the workspace store Graft node.
const NodeID graft.ID = "adapter.workspace_store"

func init() {
	graft.Register(graft.Node[ports.WorkspaceStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.WorkspaceStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.StorePath)
		},
	})
}
