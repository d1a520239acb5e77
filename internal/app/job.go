package app

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// JobRunOptions configuration for the JobRun method.
type JobRunOptions struct {
	Remote  string
	Command string
	ports.JobOptions
}

// JobRun syncs the project with the remote, then submits command as a batch
// job in the remote environment. The environment is synced as well when it
// does not exist yet.
func (a *App) JobRun(ctx context.Context, opts JobRunOptions) error {
	project, remote, state, err := a.jobTarget(opts.Remote)
	if err != nil {
		return err
	}
	env, err := state.Activation()
	if err != nil {
		return err
	}
	exists, err := a.Packages.EnvExists(ctx, domain.RemoteTarget(remote), env)
	if err != nil {
		return err
	}
	if exists {
		a.Logger.Info("Syncing remote files...")
	} else {
		a.Logger.Info("Syncing remote files and conda environment...")
	}
	report, err := a.Reconciler.Sync(ctx, reconcile.SyncRequest{Project: project, Remote: remote, FilesOnly: exists})
	if err != nil {
		return err
	}
	_, err = a.Scheduler.Run(ctx, remote, report.State, opts.Command, opts.JobOptions)
	return err
}

// JobSubmit submits a batch script of the project. The script path is taken
// relative to the project root.
func (a *App) JobSubmit(ctx context.Context, remoteName, script string) error {
	project, remote, state, err := a.jobTarget(remoteName)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(script)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve script path")
	}
	rel, err := filepath.Rel(project.Root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return zerr.With(zerr.New("submission script must be inside the project"), "path", script)
	}
	_, err = a.Scheduler.Submit(ctx, remote, *state, filepath.ToSlash(rel))
	return err
}

// JobCancel cancels a job.
func (a *App) JobCancel(ctx context.Context, remoteName, jobID string) error {
	remote, err := a.Registry.Resolve(remoteName)
	if err != nil {
		return err
	}
	if _, err := a.Scheduler.Cancel(ctx, remote, jobID); err != nil {
		return err
	}
	a.Logger.Info("Cancelled job " + jobID)
	return nil
}

// JobStatus shows the details of a job.
func (a *App) JobStatus(ctx context.Context, remoteName, jobID string) error {
	remote, err := a.Registry.Resolve(remoteName)
	if err != nil {
		return err
	}
	_, err = a.Scheduler.Status(ctx, remote, jobID)
	return err
}

// JobList lists the jobs of the remote user, or of every user.
func (a *App) JobList(ctx context.Context, remoteName string, allUsers bool) error {
	remote, err := a.Registry.Resolve(remoteName)
	if err != nil {
		return err
	}
	_, err = a.Scheduler.List(ctx, remote, allUsers)
	return err
}

func (a *App) jobTarget(remoteName string) (domain.Project, domain.Remote, *domain.RemoteState, error) {
	project, err := a.project()
	if err != nil {
		return domain.Project{}, domain.Remote{}, nil, err
	}
	remote, err := a.Registry.Resolve(remoteName)
	if err != nil {
		return domain.Project{}, domain.Remote{}, nil, err
	}
	_, state, err := a.remoteState(project, remote)
	if err != nil {
		return domain.Project{}, domain.Remote{}, nil, err
	}
	return project, remote, state, nil
}
