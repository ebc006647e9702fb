package bower

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wcw/internal/adapters/config"
	"go.trai.ch/wcw/internal/adapters/shell"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the package stager Graft node.
	NodeID graft.ID = "adapter.stager"
	// ManifestNodeID is the unique identifier for the manifest reader Graft node.
	ManifestNodeID graft.ID = "adapter.manifest_reader"
)

func init() {
	graft.Register(graft.Node[*Stager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, shell.NodeID},
		Run: func(ctx context.Context) (*Stager, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewStager(runner, settings.StagerCommand, settings.StagerArgs), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        ManifestNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestReader, error) {
			return ManifestReader{}, nil
		},
	})
}
