package deposit

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/adapters/config"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/core/ports"
)

const (
	// YaretaNodeID is the unique identifier for the deposit client Graft node.
	YaretaNodeID graft.ID = "adapter.deposit.yareta"
	// S3NodeID is the unique identifier for the object store Graft node.
	S3NodeID graft.ID = "adapter.deposit.s3"
	// FetcherNodeID is the unique identifier for the http fetcher Graft node.
	FetcherNodeID graft.ID = "adapter.deposit.fetcher"
)

func init() {
	graft.Register(graft.Node[ports.Depositor]{
		ID:        YaretaNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.FSNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Depositor, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewYareta(os.Getenv(BaseURLEnv), nil, fs, log), nil
		},
	})

	graft.Register(graft.Node[ports.ObjectStore]{
		ID:        S3NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.FSNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ObjectStore, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewS3Store(fs, log), nil
		},
	})

	graft.Register(graft.Node[ports.Fetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.FSNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHTTPFetcher(nil, fs, log), nil
		},
	})
}
