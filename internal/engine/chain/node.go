package chain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/reso/internal/adapters/logger"    //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/adapters/telemetry" //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/core/ports"
)

// NodeID is the unique identifier for the strategy driver Graft node.
const NodeID graft.ID = "engine.chain"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Driver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[trace.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewDriver(log, tracer), nil
		},
	})
}
