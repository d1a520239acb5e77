package restore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reso/internal/adapters/conda"  //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/adapters/logger" //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/engine/chain"
)

// NodeID is the unique identifier for the archive restore chain Graft node.
const NodeID graft.ID = "engine.restore"

func init() {
	graft.Register(graft.Node[*Chain]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{conda.ManagerNodeID, chain.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Chain, error) {
			pm, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}
			driver, err := graft.Dep[*chain.Driver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(pm, driver, log), nil
		},
	})
}
