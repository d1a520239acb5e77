package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/adapters/logger"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// FSNodeID is the unique identifier for the filesystem Graft node.
	FSNodeID graft.ID = "adapter.config.fs"
	// GlobalNodeID is the unique identifier for the global config Graft node.
	GlobalNodeID graft.ID = "adapter.config.global"
	// RegistryNodeID is the unique identifier for the remote registry Graft node.
	RegistryNodeID graft.ID = "adapter.config.registry"
	// ProjectsNodeID is the unique identifier for the project store Graft node.
	ProjectsNodeID graft.ID = "adapter.config.projects"
	// LedgersNodeID is the unique identifier for the ledger factory Graft node.
	LedgersNodeID graft.ID = "adapter.config.ledgers"
)

func init() {
	graft.Register(graft.Node[afero.Fs]{
		ID:        FSNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return afero.NewOsFs(), nil
		},
	})

	graft.Register(graft.Node[ports.GlobalStore]{
		ID:        GlobalNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FSNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.GlobalStore, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			home, err := homedir.Dir()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to resolve home directory")
			}
			return NewGlobalStore(fs, home, log), nil
		},
	})

	graft.Register(graft.Node[ports.RemoteRegistry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FSNodeID, GlobalNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RemoteRegistry, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			global, err := graft.Dep[ports.GlobalStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(fs, global.Home(), log), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectStore]{
		ID:        ProjectsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FSNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectStore, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProjects(fs, log), nil
		},
	})

	graft.Register(graft.Node[ports.LedgerFactory]{
		ID:        LedgersNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FSNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.LedgerFactory, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLedgers(fs, log, domain.RandomSuffix), nil
		},
	})
}
