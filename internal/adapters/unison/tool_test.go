package unison_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/unison"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var cluster = domain.Remote{Name: "cluster", Hostname: "hpc.example.org", Username: "alice"}.WithDefaults()

type fixture struct {
	local  *mocks.MockLocalExecutor
	remote *mocks.MockRemoteExecutor
	tool   *unison.Tool
}

func newFixture(t *testing.T, key string) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	global := mocks.NewMockGlobalStore(ctrl)
	global.EXPECT().Load().Return(domain.GlobalConfig{SSHKey: key}, nil).AnyTimes()
	global.EXPECT().Home().Return("/home/alice").AnyTimes()
	f := fixture{local: mocks.NewMockLocalExecutor(ctrl), remote: mocks.NewMockRemoteExecutor(ctrl)}
	f.tool = unison.NewTool(f.local, f.remote, global, log)
	return f
}

const prefix = "export PATH=~/bin:$PATH && export UNISON=/home/alice/.reso/unison && unison default /work/proj "

func TestTool_Command(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		flags []string
		want  string
	}{
		{
			name: "password auth",
			want: prefix + "ssh://alice@hpc.example.org/./reso_projects/proj_abcdefgh" +
				" -sshargs '-p 22 -o ServerAliveInterval=30' -servercmd ./bin/unison",
		},
		{
			name:  "key auth with retry flag",
			key:   "/home/alice/.ssh/id_ed25519_reso",
			flags: []string{"-fastcheck", "false"},
			want: prefix + "ssh://alice@hpc.example.org/./reso_projects/proj_abcdefgh" +
				" -sshargs '-p 22 -i /home/alice/.ssh/id_ed25519_reso' -servercmd ./bin/unison -fastcheck false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.key)

			got, err := f.tool.Command(cluster, "/work/proj", "./reso_projects/proj_abcdefgh", tt.flags)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTool_Prepare(t *testing.T) {
	f := newFixture(t, "")
	f.remote.EXPECT().Run(gomock.Any(), cluster, "mkdir -p ./reso_projects/proj_abcdefgh").Return(domain.CommandResult{}, nil)

	require.NoError(t, f.tool.Prepare(context.Background(), cluster, "./reso_projects/proj_abcdefgh"))
}

func TestTool_PrepareFailure(t *testing.T) {
	f := newFixture(t, "")
	f.remote.EXPECT().Run(gomock.Any(), cluster, gomock.Any()).
		Return(domain.CommandResult{ExitCode: 1, Output: "mkdir: cannot create directory: Permission denied"}, nil)

	err := f.tool.Prepare(context.Background(), cluster, "/root/x")

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, err.Error(), "Permission denied")
}

func TestTool_SyncReportsResult(t *testing.T) {
	f := newFixture(t, "")
	output := "Fatal error: Warning: inconsistent state.\nThe archive file is missing on some hosts.\nArchive ar1 on host x is MISSING"
	f.local.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{ExitCode: 3, Output: output}, nil)

	res, err := f.tool.Sync(context.Background(), cluster, "/work/proj", "./reso_projects/proj_abcdefgh", nil)

	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, output, res.Output)
}

func TestTool_TestServer(t *testing.T) {
	f := newFixture(t, "")
	f.local.EXPECT().Run(gomock.Any(), prefix+"ssh://alice@hpc.example.org/./proj"+
		" -sshargs '-p 22 -o ServerAliveInterval=30' -servercmd ./bin/unison -testserver").
		Return(domain.CommandResult{ExitCode: 1, Output: "Connection lost"}, nil)

	err := f.tool.TestServer(context.Background(), cluster, "/work/proj")

	var trErr *domain.TransportError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, "cluster", trErr.Remote)
}
