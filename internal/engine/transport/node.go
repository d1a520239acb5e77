package transport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reso/internal/adapters/logger" //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/adapters/prompt" //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/adapters/unison" //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/core/ports"
)

// NodeID is the unique identifier for the file transport Graft node.
const NodeID graft.ID = "engine.transport"

func init() {
	graft.Register(graft.Node[*Handler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{unison.NodeID, prompt.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Handler, error) {
			tool, err := graft.Dep[*unison.Tool](ctx)
			if err != nil {
				return nil, err
			}
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHandler(tool, prompter, log), nil
		},
	})
}
