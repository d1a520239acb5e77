package app

import (
	"context"
	"fmt"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	// RaiseOnError fails on missing remote tools instead of offering to
	// install them.
	RaiseOnError bool
}

// Check verifies the local tools, then the tools of every remote. The remote
// probes run concurrently; installs are offered one remote at a time. Inside
// a project, the sync server of each remote is tested last.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	if err := a.Checker.CheckLocal(ctx); err != nil {
		return err
	}
	remotes, err := a.Registry.List()
	if err != nil {
		return err
	}

	missing := make([][]domain.Tool, len(remotes))
	g, gctx := errgroup.WithContext(ctx)
	for i, remote := range remotes {
		g.Go(func() error {
			a.Logger.Info("Checking remote '" + remote.Name + "'")
			tools, err := a.Checker.CheckRemote(gctx, remote)
			missing[i] = tools
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, remote := range remotes {
		if err := a.install(ctx, remote, missing[i], opts.RaiseOnError); err != nil {
			return err
		}
	}

	project, err := a.project()
	if isNotAProject(err) {
		return nil
	}
	if err != nil {
		return err
	}
	g, gctx = errgroup.WithContext(ctx)
	for _, remote := range remotes {
		g.Go(func() error {
			if err := a.Server.TestServer(gctx, remote, project.Root); err != nil {
				return err
			}
			a.Logger.Info("PASS - Unison can reach remote '" + remote.Name + "'")
			return nil
		})
	}
	return g.Wait()
}

// checkRemote probes one remote and offers to install what is missing.
func (a *App) checkRemote(ctx context.Context, remote domain.Remote, raise bool) error {
	tools, err := a.Checker.CheckRemote(ctx, remote)
	if err != nil {
		return err
	}
	return a.install(ctx, remote, tools, raise)
}

func (a *App) install(ctx context.Context, remote domain.Remote, tools []domain.Tool, raise bool) error {
	present := map[domain.Tool]bool{domain.ToolConda: true, domain.ToolUnison: true}
	for _, tool := range tools {
		present[tool] = false
	}
	for _, tool := range []domain.Tool{domain.ToolConda, domain.ToolUnison} {
		if present[tool] {
			a.Logger.Info(fmt.Sprintf("PASS - %s is installed on remote '%s'", tool, remote.Name))
			continue
		}
		if raise {
			return zerr.With(zerr.Wrap(domain.ErrMissingDependency, string(tool)), "remote", remote.Name)
		}
		ok, err := a.Prompter.Confirm(fmt.Sprintf("It seems %s is not available on remote '%s'. "+
			"Do you want to install it now?", tool, remote.Name), true)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		switch tool {
		case domain.ToolConda:
			err = a.Checker.InstallConda(ctx, remote)
		case domain.ToolUnison:
			err = a.Server.Install(ctx, remote)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
