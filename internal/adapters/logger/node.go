package logger

import (
	"context"
	"log/slog"

	"github.com/grindlemire/graft"
	"go.trai.ch/wcw/internal/adapters/config"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewFromSettings(settings)
		},
	})
}

// NewFromSettings creates a Logger configured by the log settings.
func NewFromSettings(settings *domain.Settings) (*Logger, error) {
	l := New()

	var level slog.Level
	if err := level.UnmarshalText([]byte(settings.LogLevel)); err != nil {
		return nil, zerr.With(domain.Categorize(domain.ErrInvalidConfig, err), "key", "log.level")
	}
	l.SetLevel(level)
	l.SetJSON(settings.LogFormat == "json")

	return l, nil
}
