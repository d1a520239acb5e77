package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/app"
	"go.trai.ch/reso/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_RemoteAdd_FailedChecksDropRemote(t *testing.T) {
	h := newHarness(t)
	remote := testRemote()

	h.registry.EXPECT().Add(remote.WithDefaults()).Return(nil)
	h.prompter.EXPECT().Confirm(gomock.Any(), true).Return(false, nil)
	h.checker.EXPECT().CheckRemote(gomock.Any(), gomock.Any()).Return(nil, domain.ErrSSH)
	h.registry.EXPECT().Delete("hpc").Return(nil)

	err := h.app.RemoteAdd(context.Background(), app.RemoteOptions{Remote: remote, AssumeYes: true})
	require.NoError(t, err)
}

func TestApp_RemoteAdd_InvalidRemote(t *testing.T) {
	h := newHarness(t)

	err := h.app.RemoteAdd(context.Background(), app.RemoteOptions{Remote: domain.Remote{Name: "hpc"}})
	require.ErrorIs(t, err, domain.ErrInvalidRemote)
}

func TestApp_RemoteAdd_RecordsProjectLedger(t *testing.T) {
	h := newHarness(t)
	h.inProject(domain.ProjectConfig{EnvName: "reso_env_local"})
	remote := testRemote()

	h.registry.EXPECT().Add(gomock.Any()).Return(nil)
	h.ledger.EXPECT().Ensure("hpc").Return(&domain.RemoteState{EnvName: "reso_env_gen", FilesPath: "./p"}, nil)
	h.ledger.EXPECT().Upsert("hpc", gomock.Any()).DoAndReturn(
		func(_ string, patch domain.RemoteStatePatch) (*domain.RemoteState, error) {
			assert.Equal(t, "custom", *patch.EnvName)
			assert.Nil(t, patch.FilesPath)
			state := patch.Apply(domain.RemoteState{EnvName: "reso_env_gen", FilesPath: "./p"})
			return &state, nil
		})

	err := h.app.RemoteAdd(context.Background(), app.RemoteOptions{
		Remote:        remote,
		RemoteEnvName: "custom",
		NoRemoteSetup: true,
	})
	require.NoError(t, err)
}

func TestApp_RemoteUpdate(t *testing.T) {
	h := newHarness(t)
	current := testRemote()

	h.registry.EXPECT().Resolve("hpc").Return(current, nil)
	h.checker.EXPECT().CheckRemote(gomock.Any(), gomock.Any()).Return(nil, nil)
	h.projects.EXPECT().Find(workDir).Return(domain.Project{}, domain.ErrNotAProject)
	h.registry.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.Remote) error {
		assert.Equal(t, 2222, r.Port)
		assert.Equal(t, "login.example.org", r.Hostname)
		assert.Equal(t, "module load conda", r.CondaLoadCommand)
		return nil
	})

	err := h.app.RemoteUpdate(context.Background(), app.RemoteOptions{
		Remote: domain.Remote{Name: "hpc", Port: 2222, CondaLoadCommand: "module load conda"},
	})
	require.NoError(t, err)
}

func TestApp_RemoteRemove(t *testing.T) {
	t.Run("purge", func(t *testing.T) {
		h := newHarness(t)
		remote := testRemote()
		h.registry.EXPECT().Resolve("hpc").Return(remote, nil)
		gomock.InOrder(
			h.remote.EXPECT().Run(gomock.Any(), remote, "rm -rf ~/reso_projects").Return(domain.CommandResult{}, nil),
			h.remote.EXPECT().Run(gomock.Any(), remote, "rm -rf ~/miniconda").Return(domain.CommandResult{}, nil),
			h.remote.EXPECT().Run(gomock.Any(), remote, "rm -rf ~/.unison").Return(domain.CommandResult{ExitCode: 1}, nil),
		)
		h.registry.EXPECT().Delete("hpc").Return(nil)
		h.inProject(domain.ProjectConfig{})
		h.ledger.EXPECT().Delete("hpc").Return(nil)

		require.NoError(t, h.app.RemoteRemove(context.Background(), "hpc", true))
	})

	t.Run("unknown remote", func(t *testing.T) {
		h := newHarness(t)
		h.registry.EXPECT().Resolve("nope").Return(domain.Remote{}, domain.ErrRemoteNotFound)

		err := h.app.RemoteRemove(context.Background(), "nope", false)
		require.ErrorIs(t, err, domain.ErrRemoteNotFound)
	})
}

func TestApp_RemoteList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := newHarness(t)
		h.registry.EXPECT().List().Return(nil, nil)

		var buf bytes.Buffer
		require.NoError(t, h.app.RemoteList(context.Background(), &buf))
		assert.Equal(t, "No remotes configured.\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		h := newHarness(t)
		h.registry.EXPECT().List().Return([]domain.Remote{testRemote()}, nil)

		var buf bytes.Buffer
		require.NoError(t, h.app.RemoteList(context.Background(), &buf))
		assert.Contains(t, buf.String(), "hpc:\n")
		assert.Contains(t, buf.String(), "username: alice")
	})
}

func TestApp_SetupSSH(t *testing.T) {
	h := newHarness(t)
	remote := testRemote()

	h.registry.EXPECT().Resolve("").Return(remote, nil)
	h.global.EXPECT().Home().Return("/home/alice")
	h.keys.EXPECT().Ensure("/home/alice/.ssh/id_ed25519_reso", gomock.Any()).Return("ssh-ed25519 AAAA reso@laptop", nil)
	h.remote.EXPECT().Run(gomock.Any(), remote,
		"mkdir -p .ssh && echo 'ssh-ed25519 AAAA reso@laptop' >> .ssh/authorized_keys").
		Return(domain.CommandResult{}, nil)
	h.global.EXPECT().Load().Return(domain.GlobalConfig{AppName: domain.AppName}, nil)
	h.global.EXPECT().Save(domain.GlobalConfig{AppName: domain.AppName, SSHKey: "/home/alice/.ssh/id_ed25519_reso"}).Return(nil)

	require.NoError(t, h.app.SetupSSH(context.Background(), ""))
}

func TestApp_SetupSSH_KeyFailure(t *testing.T) {
	h := newHarness(t)
	h.registry.EXPECT().Resolve("").Return(testRemote(), nil)
	h.global.EXPECT().Home().Return("/home/alice")
	h.keys.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return("", errors.New("ssh-keygen failed"))

	err := h.app.SetupSSH(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ssh-keygen failed")
}
