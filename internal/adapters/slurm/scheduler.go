// Package slurm passes job commands through to a remote Slurm installation.
package slurm

import (
	"context"

	"go.trai.ch/reso/internal/adapters/conda"
	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler implements ports.JobScheduler with sbatch, scancel, scontrol and
// squeue run over SSH. Output is shown to the user as it arrives.
type Scheduler struct {
	remote ports.RemoteExecutor
	logger ports.Logger
}

// NewScheduler creates a Scheduler.
func NewScheduler(remote ports.RemoteExecutor, logger ports.Logger) *Scheduler {
	return &Scheduler{remote: remote, logger: logger}
}

func (s *Scheduler) run(ctx context.Context, remote domain.Remote, cmd string) (string, error) {
	target := domain.RemoteTarget(remote)
	res, err := s.remote.Run(domain.WithEcho(ctx), remote, cmd)
	if err != nil {
		return "", err
	}
	if !res.Succeeded() {
		return res.Output, domain.NewCommandError(target, cmd, res)
	}
	return res.Output, nil
}

// RunCommand returns the sbatch invocation that wraps cmd in the remote
// environment of state.
func RunCommand(remote domain.Remote, state domain.RemoteState, cmd string, opts ports.JobOptions) (string, error) {
	env, err := state.Activation()
	if err != nil {
		return "", zerr.Wrap(err, "remote state has no usable environment")
	}
	wrapped := conda.ActivateCommand(domain.RemoteTarget(remote), env) + " && " + cmd
	full := "cd " + shell.Quote(state.FilesPath) + " && sbatch --wrap " + shell.Quote(wrapped)
	for _, f := range []struct{ flag, value string }{
		{"-p", opts.Partition},
		{"-n", opts.NTasks},
		{"-c", opts.CPUsPerTask},
		{"-N", opts.Nodes},
	} {
		if f.value != "" {
			full += " " + f.flag + " " + shell.Quote(f.value)
		}
	}
	return full, nil
}

// Run submits cmd as a wrapped batch job.
func (s *Scheduler) Run(ctx context.Context, remote domain.Remote, state domain.RemoteState, cmd string, opts ports.JobOptions) (string, error) {
	full, err := RunCommand(remote, state, cmd, opts)
	if err != nil {
		return "", err
	}
	s.logger.Info("Submitting job")
	return s.run(ctx, remote, full)
}

// Submit submits a batch script given relative to the project root.
func (s *Scheduler) Submit(ctx context.Context, remote domain.Remote, state domain.RemoteState, script string) (string, error) {
	return s.run(ctx, remote, "cd "+shell.Quote(state.FilesPath)+" && sbatch "+shell.Quote(script))
}

// Cancel cancels a job.
func (s *Scheduler) Cancel(ctx context.Context, remote domain.Remote, jobID string) (string, error) {
	return s.run(ctx, remote, "scancel "+shell.Quote(jobID))
}

// Status shows the details of a job.
func (s *Scheduler) Status(ctx context.Context, remote domain.Remote, jobID string) (string, error) {
	return s.run(ctx, remote, "scontrol show jobid "+shell.Quote(jobID))
}

// List shows queued jobs of the remote user, or of every user.
func (s *Scheduler) List(ctx context.Context, remote domain.Remote, allUsers bool) (string, error) {
	if allUsers {
		return s.run(ctx, remote, "squeue")
	}
	return s.run(ctx, remote, "squeue -u "+shell.Quote(remote.Username))
}
