package conda

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/adapters/config"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/ports"
)

const (
	// ManagerNodeID is the unique identifier for the package manager Graft node.
	ManagerNodeID graft.ID = "adapter.conda.manager"
	// ExporterNodeID is the unique identifier for the exporter Graft node.
	ExporterNodeID graft.ID = "adapter.conda.exporter"
)

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.LocalNodeID, shell.RemoteNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
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
			return NewManager(local, remote, log), nil
		},
	})

	graft.Register(graft.Node[ports.Exporter]{
		ID:        ExporterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.LocalNodeID, config.FSNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Exporter, error) {
			local, err := graft.Dep[ports.LocalExecutor](ctx)
			if err != nil {
				return nil, err
			}
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExporter(local, fs, log), nil
		},
	})
}
