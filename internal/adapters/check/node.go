package check

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/ports"
)

// NodeID is the unique identifier for the dependency checker Graft node.
const NodeID graft.ID = "adapter.check"

func init() {
	graft.Register(graft.Node[ports.DependencyChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.LocalNodeID, shell.RemoteNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyChecker, error) {
			local, err := graft.Dep[ports.LocalExecutor](ctx)
			if err != nil {
				return nil, err
			}
			remote, err := graft.Dep[ports.RemoteExecutor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(local, remote, log), nil
		},
	})
}
