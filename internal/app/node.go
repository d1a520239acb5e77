package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/adapters/check"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/conda"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/deposit" //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/keys"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/prompt"  //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/slurm"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/unison"  //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/engine/reconcile"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the objects main needs to run the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			reconcile.NodeID,
			config.FSNodeID,
			config.GlobalNodeID,
			config.RegistryNodeID,
			config.ProjectsNodeID,
			config.LedgersNodeID,
			conda.ManagerNodeID,
			shell.RemoteNodeID,
			check.NodeID,
			unison.NodeID,
			keys.NodeID,
			slurm.NodeID,
			watcher.NodeID,
			deposit.YaretaNodeID,
			deposit.S3NodeID,
			deposit.FetcherNodeID,
			prompt.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // One lookup per collaborator.
func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)
	if deps.Reconciler, err = graft.Dep[*reconcile.Orchestrator](ctx); err != nil {
		return nil, err
	}
	if deps.FS, err = graft.Dep[afero.Fs](ctx); err != nil {
		return nil, err
	}
	if deps.Global, err = graft.Dep[ports.GlobalStore](ctx); err != nil {
		return nil, err
	}
	if deps.Registry, err = graft.Dep[ports.RemoteRegistry](ctx); err != nil {
		return nil, err
	}
	if deps.Projects, err = graft.Dep[ports.ProjectStore](ctx); err != nil {
		return nil, err
	}
	if deps.Ledgers, err = graft.Dep[ports.LedgerFactory](ctx); err != nil {
		return nil, err
	}
	if deps.Packages, err = graft.Dep[ports.PackageManager](ctx); err != nil {
		return nil, err
	}
	if deps.Remote, err = graft.Dep[ports.RemoteExecutor](ctx); err != nil {
		return nil, err
	}
	if deps.Checker, err = graft.Dep[ports.DependencyChecker](ctx); err != nil {
		return nil, err
	}
	if deps.Server, err = graft.Dep[*unison.Tool](ctx); err != nil {
		return nil, err
	}
	if deps.Keys, err = graft.Dep[ports.KeyStore](ctx); err != nil {
		return nil, err
	}
	if deps.Scheduler, err = graft.Dep[ports.JobScheduler](ctx); err != nil {
		return nil, err
	}
	if deps.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}
	if deps.Depositor, err = graft.Dep[ports.Depositor](ctx); err != nil {
		return nil, err
	}
	if deps.Objects, err = graft.Dep[ports.ObjectStore](ctx); err != nil {
		return nil, err
	}
	if deps.Fetcher, err = graft.Dep[ports.Fetcher](ctx); err != nil {
		return nil, err
	}
	if deps.Prompter, err = graft.Dep[ports.Prompter](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	return New(deps), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
