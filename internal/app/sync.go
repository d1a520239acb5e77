package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/reso/internal/adapters/watcher" //nolint:depguard // Debouncer
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/engine/reconcile"
)

// SyncOptions configuration for the Sync method.
type SyncOptions struct {
	Remote string
	// Env also reconciles the remote environment.
	Env bool
	// EnvName replaces the recorded remote environment.
	EnvName string
	// Watch keeps syncing the project files whenever they change.
	Watch bool
	// Debounce is the quiet period of watch mode.
	Debounce time.Duration
}

// Sync runs a two-way sync of the project files with a remote and, with
// Env, brings the remote environment in line with the local one.
func (a *App) Sync(ctx context.Context, opts SyncOptions) error {
	project, err := a.project()
	if err != nil {
		return err
	}
	remote, err := a.Registry.Resolve(opts.Remote)
	if err != nil {
		return err
	}

	req := reconcile.SyncRequest{Project: project, Remote: remote, FilesOnly: !opts.Env, EnvName: opts.EnvName}
	report, err := a.Reconciler.Sync(ctx, req)
	if err != nil {
		return err
	}
	a.logReport(report)
	a.Logger.Info("Sync ran with " + remote.Name + "!")

	if !opts.Watch {
		return nil
	}
	return a.watch(ctx, project, remote, opts.Debounce)
}

func (a *App) logReport(report reconcile.SyncReport) {
	if report.FilesOnly {
		return
	}
	for _, at := range report.Report.Attempts {
		a.Logger.Debug(fmt.Sprintf("%s: %s", at.Strategy, at.Outcome))
	}
	if report.Compat != domain.Identical {
		a.Logger.Info("Remote platform differs from the local one, the environment was rebuilt from portable descriptors")
	}
}

// watch syncs the project files after every burst of changes until ctx is
// done. Only one sync runs at a time; changes made during a sync trigger
// the next one.
func (a *App) watch(ctx context.Context, project domain.Project, remote domain.Remote, window time.Duration) error {
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	if err := a.Watcher.Start(ctx, project.Root); err != nil {
		return err
	}
	defer func() { _ = a.Watcher.Stop() }()

	trigger := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		select {
		case trigger <- paths:
		default:
		}
	})
	go func() {
		for ev := range a.Watcher.Events() {
			debouncer.Add(ev.Path)
		}
	}()

	a.Logger.Info("Watching " + project.Root + " for changes, press Ctrl+C to stop")
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-trigger:
			a.Logger.Debug("Changed: " + strings.Join(paths, ", "))
			_, err := a.Reconciler.Sync(ctx, reconcile.SyncRequest{Project: project, Remote: remote, FilesOnly: true})
			switch {
			case errors.Is(err, context.Canceled):
				return nil
			case err != nil:
				a.Logger.Error(err)
			default:
				a.Logger.Info("Synced " + fmt.Sprint(len(paths)) + " change(s) with " + remote.Name)
			}
		}
	}
}

// Run runs command inside the local project environment.
func (a *App) Run(ctx context.Context, command string) error {
	project, err := a.project()
	if err != nil {
		return err
	}
	env, err := a.localEnv(project)
	if err != nil {
		return err
	}
	target := domain.LocalTarget()
	res, err := a.Packages.Exec(ctx, target, env, command)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return domain.NewCommandError(target, command, res)
	}
	return nil
}

// PackageOptions configuration for the Install and Uninstall methods.
type PackageOptions struct {
	Packages   []string
	Remote     string
	AllRemotes bool
}

// Install installs packages into the local environment and the environment
// of the selected remotes. Missing environments are created first.
func (a *App) Install(ctx context.Context, opts PackageOptions) error {
	err := a.eachEnv(ctx, opts, "Installing", func(ctx context.Context, target domain.Target, env domain.Activation) error {
		return a.Packages.Install(ctx, target, env, opts.Packages)
	})
	if err != nil {
		return err
	}
	a.Logger.Info("Successfully installed packages " + strings.Join(opts.Packages, " "))
	return nil
}

// Uninstall removes packages from the local environment and the environment
// of the selected remotes.
func (a *App) Uninstall(ctx context.Context, opts PackageOptions) error {
	err := a.eachEnv(ctx, opts, "Uninstalling", func(ctx context.Context, target domain.Target, env domain.Activation) error {
		return a.Packages.Uninstall(ctx, target, env, opts.Packages)
	})
	if err != nil {
		return err
	}
	a.Logger.Info("Successfully uninstalled packages " + strings.Join(opts.Packages, " "))
	return nil
}

type envAction func(ctx context.Context, target domain.Target, env domain.Activation) error

func (a *App) eachEnv(ctx context.Context, opts PackageOptions, verb string, action envAction) error {
	if len(opts.Packages) == 0 {
		return domain.ErrMissingOption
	}
	project, err := a.project()
	if err != nil {
		return err
	}

	var remotes []domain.Remote
	if opts.AllRemotes {
		if remotes, err = a.Registry.List(); err != nil {
			return err
		}
	} else {
		remote, err := a.Registry.Resolve(opts.Remote)
		switch {
		case errors.Is(err, domain.ErrNoRemotes):
			a.Logger.Info("No remotes were specified, will only change the local environment")
		case err != nil:
			return err
		default:
			remotes = []domain.Remote{remote}
		}
	}

	env, err := a.localEnv(project)
	if err != nil {
		return err
	}
	local := domain.LocalTarget()
	exists, err := a.Packages.EnvExists(ctx, local, env)
	if err != nil {
		return err
	}
	if !exists && !env.IsPath() {
		if err := a.Packages.CreateEnv(ctx, local, env.Name()); err != nil {
			return err
		}
	}
	a.Logger.Info(fmt.Sprintf("%s packages %s in local environment", verb, strings.Join(opts.Packages, " ")))
	if err := action(ctx, local, env); err != nil {
		return err
	}

	for _, remote := range remotes {
		_, state, err := a.remoteState(project, remote)
		if err != nil {
			return err
		}
		if err := a.ensureRemoteEnv(ctx, remote, state, false); err != nil {
			return err
		}
		renv, err := state.Activation()
		if err != nil {
			return err
		}
		a.Logger.Info(fmt.Sprintf("%s packages %s in environment %s on remote '%s'",
			verb, strings.Join(opts.Packages, " "), renv, remote.Name))
		if err := action(ctx, domain.RemoteTarget(remote), renv); err != nil {
			return err
		}
	}
	return nil
}
