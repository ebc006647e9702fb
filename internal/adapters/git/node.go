package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wcw/internal/adapters/config"
	"go.trai.ch/wcw/internal/adapters/shell"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
)

// NodeID is the unique identifier for the VCS provider Graft node.
const NodeID graft.ID = "adapter.vcs"

func init() {
	graft.Register(graft.Node[ports.VCSProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.VCSProvider, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(runner, settings.VCSCommand), nil
		},
	})
}
