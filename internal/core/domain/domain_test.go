package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/core/domain"
)

func TestParseActivation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath bool
		want     string
		wantErr  bool
	}{
		{name: "named", input: "reso_env_abcdefgh", want: "reso_env_abcdefgh"},
		{name: "path", input: "source ./.reso/envs/reso_env_x/bin/activate", wantPath: true, want: "source ./.reso/envs/reso_env_x/bin/activate"},
		{name: "trims spaces", input: "  env1 \n", want: "env1"},
		{name: "empty", input: "", wantErr: true},
		{name: "source without activate", input: "source ./foo", wantErr: true},
		{name: "source of bare activate", input: "source /bin/activate", wantErr: true},
		{name: "name with space", input: "my env", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseActivation(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid activation directive")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, got.IsPath())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestActivation_TargetFlag(t *testing.T) {
	assert.Equal(t, "--name env1", domain.ByName("env1").TargetFlag())
	assert.Equal(t, "--prefix /x/envs/e", domain.ByPath("/x/envs/e/").TargetFlag())
	assert.True(t, domain.Activation{}.IsZero())
}

func TestLeaves(t *testing.T) {
	t.Run("dependency is not a leaf", func(t *testing.T) {
		pkgs := []domain.Package{
			{Name: "numpy", Version: "1.21.0"},
			{Name: "pandas", Version: "1.3.0"},
		}
		depends := map[string][]string{"pandas": {"numpy"}}

		leaves := domain.Leaves(pkgs, depends)

		assert.Equal(t, []string{"pandas==1.3.0"}, domain.PackageSet(leaves))
	})

	t.Run("denylisted tooling is dropped", func(t *testing.T) {
		pkgs := []domain.Package{
			{Name: "conda-tree", Version: "1.0"},
			{Name: "pip", Version: "21.0"},
			{Name: "requests", Version: "2.0"},
		}

		leaves := domain.Leaves(pkgs, nil)

		assert.Equal(t, []domain.Package{{Name: "requests", Version: "2.0"}}, leaves)
	})

	t.Run("self dependency does not hide a package", func(t *testing.T) {
		pkgs := []domain.Package{{Name: "a", Version: "1"}}
		leaves := domain.Leaves(pkgs, map[string][]string{"a": {"a"}})
		assert.Len(t, leaves, 1)
	})
}

func TestPinLeaves(t *testing.T) {
	installed := []domain.Package{{Name: "pandas", Version: "1.3.0"}}
	got := domain.PinLeaves([]string{"pandas", "conda", "mystery"}, installed)
	assert.Equal(t, []string{"mystery", "pandas==1.3.0"}, domain.PackageSet(got))
}

func TestParseExplicitLock(t *testing.T) {
	text := `# This file may be used to create an environment using:
# $ conda create --name <env> --file <this file>
@EXPLICIT
https://conda.anaconda.org/conda-forge/linux-64/numpy-1.21.0-py39hdbf815f_0.tar.bz2
https://conda.anaconda.org/conda-forge/noarch/python-dateutil-2.8.2-pyhd8ed1ab_0.conda

https://conda.anaconda.org/conda-forge/linux-64/broken.tar.bz2
`
	got := domain.ParseExplicitLock(text)
	assert.Equal(t, []domain.Package{
		{Name: "numpy", Version: "1.21.0"},
		{Name: "python-dateutil", Version: "2.8.2"},
	}, got)
}

func TestClassify(t *testing.T) {
	linux := domain.Platform{OS: domain.OSLinux, Arch: domain.ArchX8664}
	mac := domain.Platform{OS: domain.OSMacOS, Arch: domain.ArchArm64}

	assert.Equal(t, domain.Identical, domain.Classify(linux, linux))
	assert.Equal(t, domain.Foreign, domain.Classify(linux, mac))
	assert.Equal(t, domain.Foreign, domain.Classify(linux, domain.Platform{OS: domain.OSLinux, Arch: domain.ArchAarch64}))
}

func TestPlatformFor(t *testing.T) {
	assert.Equal(t, domain.Platform{OS: "linux", Arch: "x86_64"}, domain.PlatformFor("linux", "amd64"))
	assert.Equal(t, domain.Platform{OS: "macos", Arch: "arm64"}, domain.PlatformFor("darwin", "arm64"))
	assert.Equal(t, domain.Platform{OS: "linux", Arch: "aarch64"}, domain.PlatformFor("linux", "arm64"))
	assert.Equal(t, domain.Platform{OS: "win", Arch: "x86_64"}, domain.PlatformFor("windows", "amd64"))
}

func TestRemote_Defaults(t *testing.T) {
	r := domain.Remote{Name: "hpc", Hostname: "h", Username: "u"}.WithDefaults()
	require.NoError(t, r.Validate())
	assert.Equal(t, 22, r.Port)
	assert.Equal(t, "source ~/miniconda/bin/activate", r.CondaLoadCommand)
	assert.Equal(t, domain.Platform{OS: "linux", Arch: "x86_64"}, r.Platform())

	err := domain.Remote{Name: "hpc"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid remote settings")
}

func TestNewRemoteState(t *testing.T) {
	s, err := domain.NewRemoteState("env", "./p")
	require.NoError(t, err)
	assert.Nil(t, s.LastEnvSync)

	_, err = domain.NewRemoteState("", "./p")
	require.Error(t, err)
	_, err = domain.NewRemoteState("env", "")
	require.Error(t, err)
	_, err = domain.NewRemoteState("source nowhere", "./p")
	require.Error(t, err)
}

func TestRemoteStatePatch_Apply(t *testing.T) {
	synced := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	base := domain.RemoteState{EnvName: "env", FilesPath: "./p", LastFilesSync: &synced}

	now := synced.Add(time.Hour)
	got := domain.RemoteStatePatch{LastEnvSync: &now}.Apply(base)

	assert.Equal(t, "env", got.EnvName)
	assert.Equal(t, "./p", got.FilesPath)
	assert.Equal(t, synced, *got.LastFilesSync)
	assert.Equal(t, now, *got.LastEnvSync)
	assert.Nil(t, base.LastEnvSync)
}

func TestNames(t *testing.T) {
	fixed := func(n int) string { return "abcdefghijklmnop"[:n] }
	assert.Equal(t, "reso_env_abcdefgh", domain.NewEnvName(fixed))
	assert.Equal(t, "./reso_projects/demo_abcdefgh", domain.NewFilesPath("demo", fixed))

	suffix := domain.RandomSuffix(domain.SuffixLength)
	assert.Len(t, suffix, 8)
	assert.Regexp(t, "^[a-z]{8}$", suffix)
}

func TestCommandError(t *testing.T) {
	remote := domain.Remote{Name: "hpc"}
	err := domain.NewCommandError(domain.RemoteTarget(remote), "conda install", domain.CommandResult{
		ExitCode: 1,
		Output:   "PackagesNotFoundError: foo\n",
	})

	assert.Equal(t, domain.ScopeRemote, err.Scope)
	assert.Contains(t, err.Error(), "remote 'hpc'")
	assert.Contains(t, err.Error(), "PackagesNotFoundError: foo")
	assert.False(t, errors.Is(err, domain.ErrCommandTimeout))

	timeout := &domain.CommandError{Command: "sleep", TimedOut: true}
	assert.True(t, errors.Is(timeout, domain.ErrCommandTimeout))
}

func TestChainError(t *testing.T) {
	last := &domain.StrategyError{Strategy: domain.StrategyLeafPackages, Err: errors.New("last diagnostic")}
	err := &domain.ChainError{
		Chain: "sync",
		Attempts: []domain.Attempt{
			{Strategy: domain.StrategyFullManifest, Outcome: domain.OutcomeFailed, Diagnostic: "first diagnostic"},
			{Strategy: domain.StrategyLeafPackages, Outcome: domain.OutcomeFailed, Diagnostic: "last diagnostic"},
		},
		Err: last,
	}

	assert.Contains(t, err.Error(), "last diagnostic")
	assert.NotContains(t, err.Error(), "first diagnostic")

	var se *domain.StrategyError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.StrategyLeafPackages, se.Strategy)
}

func TestChainReport(t *testing.T) {
	r := domain.ChainReport{Attempts: []domain.Attempt{
		{Strategy: domain.StrategyExplicitLock, Outcome: domain.OutcomeFailed},
		{Strategy: domain.StrategyPortablePack, Outcome: domain.OutcomeSucceeded},
	}}

	assert.True(t, r.Tried(domain.StrategyPortablePack))
	assert.False(t, r.Tried(domain.StrategyFullManifest))
	w, ok := r.Winner()
	require.True(t, ok)
	assert.Equal(t, domain.StrategyPortablePack, w.Strategy)
}

func TestDescriptor_Layers(t *testing.T) {
	d := domain.NewDescriptor(domain.ByName("env"))
	d.Set(domain.LayerPortablePack, "/tmp/pack")
	d.Set(domain.LayerExplicitLock, "/tmp/spec")

	assert.Equal(t, []domain.Layer{domain.LayerExplicitLock, domain.LayerPortablePack}, d.Layers())
	assert.Equal(t, "spec-file.txt", domain.LayerExplicitLock.FileName())
	assert.Equal(t, "history-manifest", domain.LayerHistoryManifest.String())
}
