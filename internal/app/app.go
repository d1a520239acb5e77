// Package app implements the application layer for reso.
package app

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/engine/reconcile"
)

// Reconciler brings remotes and restored projects in line with the local
// project.
type Reconciler interface {
	Sync(ctx context.Context, req reconcile.SyncRequest) (reconcile.SyncReport, error)
	Restore(ctx context.Context, req reconcile.RestoreRequest) (reconcile.RestoreReport, error)
	Archive(ctx context.Context, req reconcile.ArchiveRequest) (*domain.Descriptor, error)
}

// SyncServer checks and installs the file sync server on remotes.
type SyncServer interface {
	TestServer(ctx context.Context, remote domain.Remote, localPath string) error
	Install(ctx context.Context, remote domain.Remote) error
}

// Deps lists the collaborators of App.
type Deps struct {
	Reconciler Reconciler
	Projects   ports.ProjectStore
	Global     ports.GlobalStore
	Registry   ports.RemoteRegistry
	Ledgers    ports.LedgerFactory
	Packages   ports.PackageManager
	Remote     ports.RemoteExecutor
	Checker    ports.DependencyChecker
	Server     SyncServer
	Keys       ports.KeyStore
	Scheduler  ports.JobScheduler
	Watcher    ports.Watcher
	Depositor  ports.Depositor
	Objects    ports.ObjectStore
	Fetcher    ports.Fetcher
	Prompter   ports.Prompter
	FS         afero.Fs
	Logger     ports.Logger
}

// App represents the main application logic.
type App struct {
	Deps

	dir   string
	names domain.NameSource
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{Deps: deps, names: domain.RandomSuffix}
}

// WithDir sets the working directory used to find the project.
func (a *App) WithDir(dir string) *App {
	a.dir = dir
	return a
}

// WithNames overrides the source of generated name suffixes.
func (a *App) WithNames(names domain.NameSource) *App {
	a.names = names
	return a
}

// Setup creates the user configuration on first use.
func (a *App) Setup(_ context.Context) error {
	return a.Global.Init()
}

// ConfigureLogging switches the logger to debug level and/or JSON output.
func (a *App) ConfigureLogging(verbose, json bool) {
	if l, ok := a.Logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
	if l, ok := a.Logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(json)
	}
}

// assumeYes answers every later confirmation with yes.
func (a *App) assumeYes(yes bool) {
	if !yes {
		return
	}
	if p, ok := a.Prompter.(interface{ SetAssumeYes(bool) }); ok {
		p.SetAssumeYes(true)
	}
}

func (a *App) workDir() (string, error) {
	if a.dir != "" {
		return a.dir, nil
	}
	return os.Getwd()
}

func (a *App) project() (domain.Project, error) {
	dir, err := a.workDir()
	if err != nil {
		return domain.Project{}, err
	}
	return a.Projects.Find(dir)
}

// localEnv returns the environment recorded for project.
func (a *App) localEnv(project domain.Project) (domain.Activation, error) {
	cfg, err := a.Projects.Load(project)
	if err != nil {
		return domain.Activation{}, err
	}
	if cfg.EnvName == "" {
		return domain.Activation{}, domain.ErrNoLocalEnv
	}
	return domain.ParseActivation(cfg.EnvName)
}

// remoteState returns the ledger record of remote, creating it when missing.
func (a *App) remoteState(project domain.Project, remote domain.Remote) (ports.Ledger, *domain.RemoteState, error) {
	ledger := a.Ledgers.Open(project)
	state, err := ledger.Ensure(remote.Name)
	return ledger, state, err
}

// ensureRemoteEnv creates the named remote environment of state when it
// does not exist yet.
func (a *App) ensureRemoteEnv(ctx context.Context, remote domain.Remote, state *domain.RemoteState, ask bool) error {
	env, err := state.Activation()
	if err != nil {
		return err
	}
	target := domain.RemoteTarget(remote)
	exists, err := a.Packages.EnvExists(ctx, target, env)
	if err != nil {
		return err
	}
	if exists {
		a.Logger.Info("Remote conda environment '" + env.String() + "' already exists, continuing...")
		return nil
	}
	if env.IsPath() {
		return nil
	}
	if ask {
		ok, err := a.Prompter.Confirm("Remote conda environment '"+env.Name()+"' does not exist yet. "+
			"Do you want to create it now?", true)
		if err != nil || !ok {
			return err
		}
	}
	return a.Packages.CreateEnv(ctx, target, env.Name())
}

// isNotAProject reports a command run outside any project.
func isNotAProject(err error) bool {
	return errors.Is(err, domain.ErrNotAProject)
}
