package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wcw/internal/adapters/config"
	"go.trai.ch/wcw/internal/adapters/logger"
	"go.trai.ch/wcw/internal/adapters/telemetry"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
)

// NodeID is the unique identifier for the command runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
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
			return NewRunner(log, tracer, settings.Concurrency), nil
		},
	})
}
