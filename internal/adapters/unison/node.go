package unison

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reso/internal/adapters/config"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/ports"
)

// NodeID is the unique identifier for the unison Graft node.
const NodeID graft.ID = "adapter.unison"

func init() {
	graft.Register(graft.Node[*Tool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.LocalNodeID, shell.RemoteNodeID, config.GlobalNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Tool, error) {
			local, err := graft.Dep[ports.LocalExecutor](ctx)
			if err != nil {
				return nil, err
			}
			remote, err := graft.Dep[ports.RemoteExecutor](ctx)
			if err != nil {
				return nil, err
			}
			global, err := graft.Dep[ports.GlobalStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTool(local, remote, global, log), nil
		},
	})
}
