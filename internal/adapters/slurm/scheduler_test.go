package slurm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/slurm"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var (
	cluster = domain.Remote{Name: "cluster", Hostname: "hpc.example.org", Username: "alice"}.WithDefaults()
	state   = domain.RemoteState{EnvName: "reso_env_abcdefgh", FilesPath: "./reso_projects/proj_qwertyui"}
)

func newScheduler(t *testing.T) (*slurm.Scheduler, *mocks.MockRemoteExecutor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	remote := mocks.NewMockRemoteExecutor(ctrl)
	return slurm.NewScheduler(remote, log), remote
}

func echoed() gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		ctx, ok := x.(context.Context)
		return ok && domain.Echoed(ctx)
	})
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name  string
		state domain.RemoteState
		cmd   string
		opts  ports.JobOptions
		want  string
	}{
		{
			name:  "named env with defaults",
			state: state,
			cmd:   "python train.py",
			want: "cd ./reso_projects/proj_qwertyui && sbatch --wrap " +
				"'source ~/miniconda/bin/activate && conda activate reso_env_abcdefgh && python train.py'",
		},
		{
			name:  "resource flags",
			state: state,
			cmd:   "python train.py",
			opts:  ports.JobOptions{Partition: "debug-cpu", NTasks: "1", CPUsPerTask: "4", Nodes: "2"},
			want: "cd ./reso_projects/proj_qwertyui && sbatch --wrap " +
				"'source ~/miniconda/bin/activate && conda activate reso_env_abcdefgh && python train.py'" +
				" -p debug-cpu -n 1 -c 4 -N 2",
		},
		{
			name:  "relocated pack",
			state: domain.RemoteState{EnvName: "source ./.reso/envs/e/bin/activate", FilesPath: "./reso_projects/p"},
			cmd:   "echo $SLURM_JOB_ID",
			want: "cd ./reso_projects/p && sbatch --wrap " +
				`'source ./.reso/envs/e/bin/activate && echo $SLURM_JOB_ID'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slurm.RunCommand(cluster, tt.state, tt.cmd, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduler_PassThrough(t *testing.T) {
	tests := []struct {
		name string
		call func(s *slurm.Scheduler) (string, error)
		want string
	}{
		{
			name: "submit",
			call: func(s *slurm.Scheduler) (string, error) {
				return s.Submit(context.Background(), cluster, state, "jobs/train.sh")
			},
			want: "cd ./reso_projects/proj_qwertyui && sbatch jobs/train.sh",
		},
		{
			name: "cancel",
			call: func(s *slurm.Scheduler) (string, error) { return s.Cancel(context.Background(), cluster, "4242") },
			want: "scancel 4242",
		},
		{
			name: "status",
			call: func(s *slurm.Scheduler) (string, error) { return s.Status(context.Background(), cluster, "4242") },
			want: "scontrol show jobid 4242",
		},
		{
			name: "list own",
			call: func(s *slurm.Scheduler) (string, error) { return s.List(context.Background(), cluster, false) },
			want: "squeue -u alice",
		},
		{
			name: "list all",
			call: func(s *slurm.Scheduler) (string, error) { return s.List(context.Background(), cluster, true) },
			want: "squeue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, remote := newScheduler(t)
			remote.EXPECT().Run(echoed(), cluster, tt.want).Return(domain.CommandResult{Output: "ok\n"}, nil)

			out, err := tt.call(s)
			require.NoError(t, err)
			assert.Equal(t, "ok\n", out)
		})
	}
}

func TestScheduler_Run(t *testing.T) {
	s, remote := newScheduler(t)
	want, err := slurm.RunCommand(cluster, state, "make all", ports.JobOptions{Partition: "shared-cpu"})
	require.NoError(t, err)
	remote.EXPECT().Run(echoed(), cluster, want).Return(domain.CommandResult{Output: "Submitted batch job 4242\n"}, nil)

	out, err := s.Run(context.Background(), cluster, state, "make all", ports.JobOptions{Partition: "shared-cpu"})
	require.NoError(t, err)
	assert.Equal(t, "Submitted batch job 4242\n", out)
}

func TestScheduler_Failure(t *testing.T) {
	s, remote := newScheduler(t)
	remote.EXPECT().Run(gomock.Any(), cluster, "scancel 99").
		Return(domain.CommandResult{ExitCode: 1, Output: "scancel: error: Invalid job id specified\n"}, nil)

	_, err := s.Cancel(context.Background(), cluster, "99")
	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, domain.ScopeRemote, cmdErr.Scope)
	assert.Contains(t, err.Error(), "Invalid job id specified")
}
