package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/reso/internal/adapters/shell" //nolint:depguard // Quoting helper
	"go.trai.ch/reso/internal/build"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/engine/reconcile"
	"go.trai.ch/reso/internal/ui/output"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// InitOptions configuration for the Init method.
type InitOptions struct {
	EnvName       string
	RemoteEnvName string
	RemotePath    string
	Archive       ArchiveSource
	AssumeYes     bool
	NoRemoteSetup bool
}

// Init creates a project in the working directory, either with a new or
// existing local environment or from an archive, and prepares every
// configured remote. A failed init removes the local project again.
func (a *App) Init(ctx context.Context, opts InitOptions) error {
	dir, err := a.workDir()
	if err != nil {
		return err
	}
	if _, err := a.Projects.Find(dir); err == nil {
		a.Logger.Warn("You are already in a directory contained in a reso project. Nothing was changed.")
		return nil
	}
	if filepath.Clean(dir) == filepath.Clean(a.Global.Home()) {
		a.Logger.Warn("You cannot create a reso project from your home folder, as it contains global reso configs as well. " +
			"Please create a subfolder and init the project there.")
		return nil
	}
	if err := opts.Archive.validate(false); err != nil {
		return err
	}
	if err := a.Checker.CheckLocal(ctx); err != nil {
		return err
	}
	a.assumeYes(opts.AssumeYes)

	a.Logger.Info("Creating reso project at " + dir + "...")
	host := domain.HostPlatform()
	project, err := a.Projects.Init(dir, domain.ProjectConfig{OS: host.OS, Arch: host.Arch, Version: build.Version})
	if err != nil {
		return err
	}
	if err := a.initProject(ctx, project, opts); err != nil {
		a.Logger.Error(err)
		a.Logger.Info("Running teardown now")
		if terr := a.teardownLocal(ctx, project, true); terr != nil {
			a.Logger.Warn(fmt.Sprintf("Teardown failed: %v", terr))
		}
		return err
	}
	return nil
}

func (a *App) initProject(ctx context.Context, project domain.Project, opts InitOptions) error {
	var envName string
	if !opts.Archive.empty() {
		path, cleanup, err := a.fetchArchive(ctx, opts.Archive)
		if err != nil {
			return err
		}
		defer cleanup()
		report, err := a.Reconciler.Restore(ctx, reconcile.RestoreRequest{ArchivePath: path, Project: project})
		if err != nil {
			return err
		}
		envName = report.Env.String()
		cfg, err := a.Projects.Load(project)
		if err != nil {
			return err
		}
		cfg.EnvInitialized = true
		if err := a.Projects.Save(project, cfg); err != nil {
			return err
		}
	} else {
		name, err := a.initLocalEnv(ctx, project, opts.EnvName)
		if err != nil {
			return err
		}
		envName = name
	}

	remotes, err := a.Registry.List()
	if err != nil {
		return err
	}
	ledger := a.Ledgers.Open(project)
	for _, remote := range remotes {
		remoteEnv := opts.RemoteEnvName
		if remoteEnv == "" {
			a.Logger.Info(fmt.Sprintf("No remote conda env name was specified, "+
				"will use the local env's name '%s' on the remote '%s' as well", envName, remote.Name))
			remoteEnv = envName
		}
		filesPath := opts.RemotePath
		if filesPath == "" {
			filesPath = domain.NewFilesPath(project.Name, a.names)
		}
		state, err := domain.NewRemoteState(remoteEnv, filesPath)
		if err != nil {
			return err
		}
		if _, err := ledger.Upsert(remote.Name, domain.RemoteStatePatch{EnvName: &state.EnvName, FilesPath: &state.FilesPath}); err != nil {
			return err
		}
		if opts.NoRemoteSetup {
			a.Logger.Info("Skipped environment and project files configuration on remote '" + remote.Name + "'")
			continue
		}
		ok, err := a.Prompter.Confirm("Do you want to sync the project files and the conda environment to remote '"+
			remote.Name+"' now?", true)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if _, err := a.Reconciler.Sync(ctx, reconcile.SyncRequest{Project: project, Remote: remote}); err != nil {
			return err
		}
		a.Logger.Info("Project files and environment successfully synced to remote '" + remote.Name + "'")
	}
	return nil
}

// initLocalEnv records the local environment of a new project and creates
// it when missing.
func (a *App) initLocalEnv(ctx context.Context, project domain.Project, name string) (string, error) {
	if name == "" {
		name = domain.NewEnvName(a.names)
		a.Logger.Info("No conda env name was specified, will use generated name '" + name + "'...")
	}
	env, err := domain.ParseActivation(name)
	if err != nil {
		return "", err
	}
	cfg, err := a.Projects.Load(project)
	if err != nil {
		return "", err
	}
	cfg.EnvName = env.String()
	if err := a.Projects.Save(project, cfg); err != nil {
		return "", err
	}

	local := domain.LocalTarget()
	exists, err := a.Packages.EnvExists(ctx, local, env)
	if err != nil {
		return "", err
	}
	if exists {
		a.Logger.Info("Local conda environment '" + env.String() + "' already exists, continuing...")
		return env.String(), nil
	}
	if env.IsPath() {
		return "", zerr.Wrap(domain.ErrEnvNotUsable, "env '"+env.String()+"'")
	}
	ok, err := a.Prompter.Confirm("Local conda environment '"+env.Name()+"' does not exist yet. "+
		"Do you want to create it now?", true)
	if err != nil || !ok {
		return env.String(), err
	}
	if err := a.Packages.CreateEnv(ctx, local, env.Name()); err != nil {
		return "", err
	}
	cfg.EnvInitialized = true
	if err := a.Projects.Save(project, cfg); err != nil {
		return "", err
	}
	a.Logger.Info("Local conda env successfully created")
	return env.String(), nil
}

// TeardownOptions configuration for the Teardown method.
type TeardownOptions struct {
	SkipLocal   bool
	SkipRemotes bool
}

// Teardown reverses init: it removes the remote environments and project
// folders, then the local environment and the project metadata.
func (a *App) Teardown(ctx context.Context, opts TeardownOptions) error {
	project, err := a.project()
	if err != nil {
		return err
	}

	if opts.SkipRemotes {
		a.Logger.Info("Skipped teardown of remote environment(s)")
	} else if err := a.teardownRemotes(ctx, project); err != nil {
		return err
	}

	if opts.SkipLocal {
		a.Logger.Info("Skipped teardown of local environment")
		return nil
	}
	return a.teardownLocal(ctx, project, false)
}

func (a *App) teardownRemotes(ctx context.Context, project domain.Project) error {
	remotes, err := a.Registry.List()
	if err != nil {
		return err
	}
	ledger := a.Ledgers.Open(project)
	for _, remote := range remotes {
		state, err := ledger.Get(remote.Name)
		if err != nil {
			return err
		}
		if state == nil {
			continue
		}
		ok, err := a.Prompter.Confirm("Do you want to delete synced project files and environment on remote '"+
			remote.Name+"'?", true)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if env, err := state.Activation(); err == nil {
			if err := a.Packages.RemoveEnv(ctx, domain.RemoteTarget(remote), env); err != nil {
				return err
			}
			a.Logger.Info("Removed remote env '" + env.String() + "'")
		} else {
			a.Logger.Info("Found no configured remote env to remove")
		}
		if err := a.removeRemoteDir(ctx, remote, state.FilesPath); err != nil {
			return err
		}
		a.Logger.Info("Removed project files folder '" + state.FilesPath + "'")
		if err := ledger.Delete(remote.Name); err != nil {
			return err
		}
	}
	return nil
}

// teardownLocal removes the local environment and the project metadata.
// With ownedOnly set, an environment reso did not create is kept.
func (a *App) teardownLocal(ctx context.Context, project domain.Project, ownedOnly bool) error {
	cfg, err := a.Projects.Load(project)
	if err != nil {
		return err
	}
	switch {
	case cfg.EnvName != "" && ownedOnly && !cfg.EnvInitialized:
		a.Logger.Info("Keeping local environment " + cfg.EnvName)
	case cfg.EnvName != "":
		env, err := domain.ParseActivation(cfg.EnvName)
		if err != nil {
			return err
		}
		if err := a.Packages.RemoveEnv(ctx, domain.LocalTarget(), env); err != nil {
			return err
		}
		a.Logger.Info("Removed local environment " + env.String())
	default:
		a.Logger.Info("No linked local environment was found to be deleted")
	}
	if err := a.Projects.Teardown(project); err != nil {
		return err
	}
	a.Logger.Info("Removed folder " + filepath.Join(project.Root, domain.ResoDirName))
	return nil
}

// removeRemoteDir deletes dir on remote. A leading ~/ is left to the remote
// shell to expand.
func (a *App) removeRemoteDir(ctx context.Context, remote domain.Remote, dir string) error {
	cmd := "rm -rf " + remotePath(dir)
	res, err := a.Remote.Run(ctx, remote, cmd)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return domain.NewCommandError(domain.RemoteTarget(remote), cmd, res)
	}
	return nil
}

func remotePath(p string) string {
	if len(p) > 2 && p[:2] == "~/" {
		return "~/" + shell.Quote(p[2:])
	}
	return shell.Quote(p)
}

// Info writes the global configuration and, inside a project, the project
// configuration and its remote ledger.
func (a *App) Info(_ context.Context, w io.Writer) error {
	r := output.NewRenderer(w)
	label := r.NewStyle().Bold(true)

	section := func(title, path string, v any) error {
		data, err := yaml.Marshal(v)
		if err != nil {
			return zerr.Wrap(err, "failed to render config")
		}
		_, err = fmt.Fprintf(w, "%s (%s):\n%s\n", label.Render(title), path, data)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s %s\n\n", label.Render("Version:"), build.Version); err != nil {
		return err
	}
	home := a.Global.Home()
	global, err := a.Global.Load()
	if err != nil {
		return err
	}
	if err := section("The global config", domain.GlobalConfigPath(home), global); err != nil {
		return err
	}
	remotes, err := a.Registry.List()
	if err != nil {
		return err
	}
	db := make(map[string]domain.Remote, len(remotes))
	for _, rem := range remotes {
		db[rem.Name] = rem
	}
	if err := section("The global remotes config", domain.GlobalRemotesPath(home), db); err != nil {
		return err
	}

	project, err := a.project()
	if isNotAProject(err) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, err := a.Projects.Load(project)
	if err != nil {
		return err
	}
	if err := section("The project config", domain.ProjectConfigPath(project.Root), cfg); err != nil {
		return err
	}
	states, err := a.Ledgers.Open(project).All()
	if err != nil {
		return err
	}
	return section("The project remote config", domain.ProjectLedgerPath(project.Root), states)
}

// Status writes the sync state of the project with every configured remote.
func (a *App) Status(_ context.Context, w io.Writer) error {
	project, err := a.project()
	if err != nil {
		return err
	}
	cfg, err := a.Projects.Load(project)
	if err != nil {
		return err
	}
	remotes, err := a.Registry.List()
	if err != nil {
		return err
	}
	states, err := a.Ledgers.Open(project).All()
	if err != nil {
		return err
	}

	view := output.StatusView{Project: project.Name, LocalEnv: cfg.EnvName}
	for _, remote := range remotes {
		row := output.RemoteStatus{Remote: remote}
		if st, ok := states[remote.Name]; ok {
			row.State = &st
		}
		view.Remotes = append(view.Remotes, row)
	}
	return output.RenderStatus(w, view)
}
