package config_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/config"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestGlobalStore_LoadMissingIsZero(t *testing.T) {
	store := config.NewGlobalStore(afero.NewMemMapFs(), "/home/alice", quietLogger(t))

	cfg, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.GlobalConfig{}, cfg)
	assert.Equal(t, "/home/alice", store.Home())
}

func TestGlobalStore_SaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := config.NewGlobalStore(fs, "/home/alice", quietLogger(t))

	require.NoError(t, store.Save(domain.GlobalConfig{SSHKey: "/home/alice/.ssh/id_ed25519_reso"}))

	data, err := afero.ReadFile(fs, "/home/alice/.reso/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "ssh_key: /home/alice/.ssh/id_ed25519_reso\n", string(data))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "/home/alice/.ssh/id_ed25519_reso", cfg.SSHKey)
}

func TestGlobalStore_Init(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := config.NewGlobalStore(fs, "/home/alice", quietLogger(t))

	require.NoError(t, store.Init())

	exists, err := afero.Exists(fs, "/home/alice/.reso/config.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
	prf, err := afero.ReadFile(fs, "/home/alice/.reso/unison/default.prf")
	require.NoError(t, err)
	assert.Contains(t, string(prf), "batch = true")
	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.AppName, cfg.AppName)
}

func TestGlobalStore_InitKeepsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/alice/.reso/unison/default.prf", []byte("# mine\n"), 0o644))
	store := config.NewGlobalStore(fs, "/home/alice", quietLogger(t))
	require.NoError(t, store.Save(domain.GlobalConfig{SSHKey: "/k"}))

	require.NoError(t, store.Init())

	prf, err := afero.ReadFile(fs, "/home/alice/.reso/unison/default.prf")
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(prf))
	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "/k", cfg.SSHKey)
}

func TestGlobalStore_LoadInvalidYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/alice/.reso/config.yaml", []byte("ssh_key: [unterminated"), 0o644))
	store := config.NewGlobalStore(fs, "/home/alice", quietLogger(t))

	_, err := store.Load()

	require.ErrorContains(t, err, "failed to parse config file")
}

func TestDocument_TracesAccess(t *testing.T) {
	t.Setenv(config.DebugAccessEnv, "1")
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Cond(func(x any) bool {
		return strings.HasPrefix(x.(string), "Writing new config to /home/alice/.reso/config.yaml")
	})).Times(1)
	log.EXPECT().Debug(gomock.Cond(func(x any) bool {
		return strings.HasPrefix(x.(string), "Read config /home/alice/.reso/config.yaml")
	})).Times(1)
	store := config.NewGlobalStore(afero.NewMemMapFs(), "/home/alice", log)

	require.NoError(t, store.Save(domain.GlobalConfig{SSHKey: "/k"}))
	_, err := store.Load()
	require.NoError(t, err)
}
