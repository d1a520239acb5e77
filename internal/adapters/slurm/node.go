package slurm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/ports"
)

// NodeID is the unique identifier for the job scheduler Graft node.
const NodeID graft.ID = "adapter.slurm"

func init() {
	graft.Register(graft.Node[ports.JobScheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RemoteNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.JobScheduler, error) {
			remote, err := graft.Dep[ports.RemoteExecutor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScheduler(remote, log), nil
		},
	})
}
