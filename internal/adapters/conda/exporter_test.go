package conda_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/conda"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const listJSON = `[
  {"name": "numpy", "version": "1.21.0", "channel": "pkgs/main"},
  {"name": "pandas", "version": "1.3.0", "channel": "pkgs/main"},
  {"name": "conda-tree", "version": "1.1.0", "channel": "conda-forge"},
  {"name": "pip", "version": "21.2.4", "channel": "pkgs/main"}
]`

const manifestYAML = `name: reso_env_abcdefgh
channels:
  - defaults
dependencies:
  - numpy=1.21.0=py39h
  - pip=21.2.4=py39
  - pip:
    - requests==2.26.0
    - tqdm==4.62.3
prefix: /home/alice/miniconda/envs/reso_env_abcdefgh
`

type exporterFixture struct {
	local *mocks.MockLocalExecutor
	fs    afero.Fs
	exp   *conda.Exporter
}

func newExporter(t *testing.T) exporterFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	f := exporterFixture{local: mocks.NewMockLocalExecutor(ctrl), fs: afero.NewMemMapFs()}
	f.exp = conda.NewExporter(f.local, f.fs, log)
	return f
}

func (f exporterFixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(f.fs, path)
	require.NoError(t, err)
	return string(data)
}

var env = domain.ByName("reso_env_abcdefgh")

func TestExporter_ExplicitLock(t *testing.T) {
	f := newExporter(t)
	lock := "@EXPLICIT\nhttps://repo.anaconda.com/pkgs/main/linux-64/numpy-1.21.0-py39h.conda\n"
	f.local.EXPECT().Run(gomock.Any(), "conda list --name reso_env_abcdefgh --explicit").
		Return(domain.CommandResult{Output: lock}, nil)

	require.NoError(t, f.exp.Export(context.Background(), env, domain.LayerExplicitLock, "/work/proj/.env/spec-file.txt"))

	assert.Equal(t, lock, f.read(t, "/work/proj/.env/spec-file.txt"))
}

func TestExporter_Manifests(t *testing.T) {
	f := newExporter(t)
	f.local.EXPECT().Run(gomock.Any(), "conda env export --name reso_env_abcdefgh").
		Return(domain.CommandResult{Output: manifestYAML}, nil)
	f.local.EXPECT().Run(gomock.Any(), "conda env export --name reso_env_abcdefgh --from-history").
		Return(domain.CommandResult{Output: "dependencies:\n  - numpy\n"}, nil)

	require.NoError(t, f.exp.Export(context.Background(), env, domain.LayerFullManifest, "/e/env.yaml"))
	require.NoError(t, f.exp.Export(context.Background(), env, domain.LayerHistoryManifest, "/e/env_from_history.yaml"))

	assert.Equal(t, manifestYAML, f.read(t, "/e/env.yaml"))
	assert.Equal(t, "dependencies:\n  - numpy\n", f.read(t, "/e/env_from_history.yaml"))
}

func TestExporter_Requirements(t *testing.T) {
	f := newExporter(t)
	f.local.EXPECT().Run(gomock.Any(), "conda list --name reso_env_abcdefgh --json").
		Return(domain.CommandResult{Output: listJSON}, nil)

	require.NoError(t, f.exp.Export(context.Background(), env, domain.LayerRequirements, "/e/requirements.txt"))

	assert.Equal(t, "numpy==1.21.0\npandas==1.3.0\nconda-tree==1.1.0\npip==21.2.4", f.read(t, "/e/requirements.txt"))
}

func TestExporter_LeafPackages(t *testing.T) {
	f := newExporter(t)
	gomock.InOrder(
		f.local.EXPECT().Run(gomock.Any(), "conda install -y --name reso_env_abcdefgh -c conda-forge conda-tree").
			Return(domain.CommandResult{}, nil),
		f.local.EXPECT().Run(gomock.Any(), "conda list --name reso_env_abcdefgh --json").
			Return(domain.CommandResult{Output: listJSON}, nil),
		f.local.EXPECT().Run(gomock.Any(), "conda deactivate && conda activate reso_env_abcdefgh && conda-tree leaves").
			Return(domain.CommandResult{Output: "['conda-tree', 'pandas', 'pip']\n"}, nil),
	)

	require.NoError(t, f.exp.Export(context.Background(), env, domain.LayerLeafPackages, "/e/nondep_packages.txt"))

	assert.Equal(t, "pandas==1.3.0", f.read(t, "/e/nondep_packages.txt"))
}

const metaRecords = `{"name": "numpy", "version": "1.21.0", "depends": ["libblas >=3.8.0,<4.0a0", "python >=3.9,<3.10.0a0"]}
{"name": "pandas", "version": "1.3.0", "depends": ["numpy >=1.21.0", "python-dateutil >=2.7.3"]}
{"name": "pip", "version": "21.2.4", "depends": ["python >=3.9"]}
`

func TestExporter_LeafPackagesFromMetadata(t *testing.T) {
	f := newExporter(t)
	gomock.InOrder(
		f.local.EXPECT().Run(gomock.Any(), "conda install -y --name reso_env_abcdefgh -c conda-forge conda-tree").
			Return(domain.CommandResult{ExitCode: 1, Output: "CondaHTTPError: HTTP 000 CONNECTION FAILED"}, nil),
		f.local.EXPECT().Run(gomock.Any(), "conda list --name reso_env_abcdefgh --json").
			Return(domain.CommandResult{Output: listJSON}, nil),
		f.local.EXPECT().Run(gomock.Any(), `conda deactivate && conda activate reso_env_abcdefgh && cat "$CONDA_PREFIX"/conda-meta/*.json`).
			Return(domain.CommandResult{Output: metaRecords}, nil),
	)

	require.NoError(t, f.exp.Export(context.Background(), env, domain.LayerLeafPackages, "/e/nondep_packages.txt"))

	assert.Equal(t, "pandas==1.3.0", f.read(t, "/e/nondep_packages.txt"))
}

func TestParseDepends(t *testing.T) {
	depends, err := conda.ParseDepends(metaRecords)
	require.NoError(t, err)
	assert.Equal(t, []string{"numpy", "python-dateutil"}, depends["pandas"])
	assert.Equal(t, []string{"libblas", "python"}, depends["numpy"])

	_, err = conda.ParseDepends(`{"name": `)
	require.Error(t, err)
}

func TestExporter_LeafToolMissing(t *testing.T) {
	f := newExporter(t)
	f.local.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(domain.CommandResult{ExitCode: 1, Output: "CondaHTTPError: HTTP 000 CONNECTION FAILED"}, nil)

	err := f.exp.Export(context.Background(), env, domain.LayerLeafPackages, "/e/nondep_packages.txt")

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, err.Error(), "CONNECTION FAILED")
	exists, statErr := afero.Exists(f.fs, "/e/nondep_packages.txt")
	require.NoError(t, statErr)
	assert.False(t, exists)
}

func TestExporter_PipPackages(t *testing.T) {
	f := newExporter(t)
	f.local.EXPECT().Run(gomock.Any(), "conda env export --name reso_env_abcdefgh").
		Return(domain.CommandResult{Output: manifestYAML}, nil)

	require.NoError(t, f.exp.Export(context.Background(), env, domain.LayerPipPackages, "/e/pip_requirements.txt"))

	assert.Equal(t, "requests==2.26.0\ntqdm==4.62.3", f.read(t, "/e/pip_requirements.txt"))
}

func TestExporter_PortablePack(t *testing.T) {
	f := newExporter(t)
	gomock.InOrder(
		f.local.EXPECT().Run(gomock.Any(), "conda install -y -c conda-forge conda-pack").Return(domain.CommandResult{}, nil),
		f.local.EXPECT().Run(echoed(), "conda pack --name reso_env_abcdefgh --force -o /e/conda_pack.tar.gz").
			Return(domain.CommandResult{}, nil),
	)

	require.NoError(t, f.exp.Export(context.Background(), env, domain.LayerPortablePack, "/e/conda_pack.tar.gz"))
}

func TestParseLeaves(t *testing.T) {
	assert.Equal(t, []string{"pandas", "requests"}, conda.ParseLeaves("['pandas', 'requests']\n"))
	assert.Nil(t, conda.ParseLeaves("[]"))
}

func TestPipPins(t *testing.T) {
	pins, err := conda.PipPins("dependencies:\n  - numpy\n")
	require.NoError(t, err)
	assert.Empty(t, pins)

	_, err = conda.PipPins("dependencies: [")
	require.Error(t, err)
}
