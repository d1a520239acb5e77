package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/config"
	"go.trai.ch/reso/internal/core/domain"
)

func newRegistry(t *testing.T) (*config.Registry, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return config.NewRegistry(fs, "/home/alice", quietLogger(t)), fs
}

func TestRegistry_AddAppliesDefaults(t *testing.T) {
	reg, fs := newRegistry(t)

	require.NoError(t, reg.Add(domain.Remote{Name: "cluster", Hostname: "hpc.example.org", Username: "alice"}))

	got, err := reg.Resolve("cluster")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPort, got.Port)
	assert.Equal(t, domain.DefaultScheduler, got.Scheduler)
	assert.Equal(t, domain.DefaultUnisonPath, got.UnisonPath)

	exists, err := afero.Exists(fs, "/home/alice/.reso/remotes/remotes.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRegistry_AddRejectsDuplicate(t *testing.T) {
	reg, _ := newRegistry(t)
	remote := domain.Remote{Name: "cluster", Hostname: "h", Username: "u"}
	require.NoError(t, reg.Add(remote))

	require.ErrorIs(t, reg.Add(remote), domain.ErrRemoteExists)
}

func TestRegistry_AddValidates(t *testing.T) {
	reg, _ := newRegistry(t)

	err := reg.Add(domain.Remote{Name: "cluster"})

	require.ErrorContains(t, err, "invalid remote settings")
}

func TestRegistry_Resolve(t *testing.T) {
	reg, _ := newRegistry(t)

	_, err := reg.Resolve("")
	require.ErrorIs(t, err, domain.ErrNoRemotes)

	require.NoError(t, reg.Add(domain.Remote{Name: "lab", Hostname: "lab.local", Username: "bob"}))
	only, err := reg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "lab", only.Name)

	require.NoError(t, reg.Add(domain.Remote{Name: "cluster", Hostname: "hpc", Username: "alice"}))
	_, err = reg.Resolve("")
	require.ErrorIs(t, err, domain.ErrRemoteUnspecified)

	_, err = reg.Resolve("nope")
	require.ErrorIs(t, err, domain.ErrRemoteNotFound)
}

func TestRegistry_ListSorted(t *testing.T) {
	reg, _ := newRegistry(t)
	require.NoError(t, reg.Add(domain.Remote{Name: "lab", Hostname: "lab.local", Username: "bob"}))
	require.NoError(t, reg.Add(domain.Remote{Name: "cluster", Hostname: "hpc", Username: "alice"}))

	remotes, err := reg.List()

	require.NoError(t, err)
	require.Len(t, remotes, 2)
	assert.Equal(t, "cluster", remotes[0].Name)
	assert.Equal(t, "lab", remotes[1].Name)
}

func TestRegistry_PutAndDelete(t *testing.T) {
	reg, _ := newRegistry(t)
	require.NoError(t, reg.Add(domain.Remote{Name: "lab", Hostname: "lab.local", Username: "bob"}))

	require.NoError(t, reg.Put(domain.Remote{Name: "lab", Hostname: "lab2.local", Username: "bob", Port: 2200}))
	got, err := reg.Resolve("lab")
	require.NoError(t, err)
	assert.Equal(t, "lab2.local", got.Hostname)
	assert.Equal(t, 2200, got.Port)

	require.ErrorIs(t, reg.Put(domain.Remote{Name: "ghost", Hostname: "h", Username: "u"}), domain.ErrRemoteNotFound)

	require.NoError(t, reg.Delete("lab"))
	require.ErrorIs(t, reg.Delete("lab"), domain.ErrRemoteNotFound)
}
