package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/adapters/config"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/core/ports"
)

// NodeID is the unique identifier for the archive container Graft node.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.ArchiveContainer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.FSNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ArchiveContainer, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewContainer(fs, log), nil
		},
	})
}
