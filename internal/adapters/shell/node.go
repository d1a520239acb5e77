package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reso/internal/adapters/config"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/core/ports"
)

const (
	// LocalNodeID is the unique identifier for the local executor Graft node.
	LocalNodeID graft.ID = "adapter.shell.local"
	// RemoteNodeID is the unique identifier for the remote executor Graft node.
	RemoteNodeID graft.ID = "adapter.shell.remote"
)

func init() {
	graft.Register(graft.Node[ports.LocalExecutor]{
		ID:        LocalNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LocalExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocalExecutor(NewRunner(log)), nil
		},
	})

	graft.Register(graft.Node[ports.RemoteExecutor]{
		ID:        RemoteNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LocalNodeID, config.GlobalNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RemoteExecutor, error) {
			local, err := graft.Dep[ports.LocalExecutor](ctx)
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
			return NewRemoteExecutor(local, global, log), nil
		},
	})
}
