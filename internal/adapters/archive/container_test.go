package archive_test

import (
	"archive/tar"
	"context"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/archive"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newContainer(t *testing.T) (*archive.Container, afero.Fs) {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	fs := afero.NewMemMapFs()
	return archive.NewContainer(fs, log), fs
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for p, content := range files {
		require.NoError(t, afero.WriteFile(fs, p, []byte(content), 0o644))
	}
}

func writeArchive(t *testing.T, c *archive.Container, fs afero.Fs, dest string, spec ports.ArchiveSpec) {
	t.Helper()
	f, err := fs.Create(dest)
	require.NoError(t, err)
	require.NoError(t, c.Write(context.Background(), f, spec))
	require.NoError(t, f.Close())
}

func read(t *testing.T, fs afero.Fs, p string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, p)
	require.NoError(t, err)
	return string(data)
}

func TestContainer_RoundTrip(t *testing.T) {
	c, fs := newContainer(t)
	writeFiles(t, fs, map[string]string{
		"/work/proj/train.py":               "print('train')\n",
		"/work/proj/data/raw.csv":           "a,b\n1,2\n",
		"/work/proj/.reso/config.yaml":      "env_name: reso_env_abcdefgh\n",
		"/work/proj/.env/spec-file.txt":     "@EXPLICIT\n",
		"/tmp/layers/spec-file.txt":         "@EXPLICIT\nhttps://repo/numpy-1.21.0-py39h.conda\n",
		"/tmp/layers/nondep_packages.txt":   "pandas==1.3.0",
		"/tmp/layers/env_from_history.yaml": "dependencies:\n  - pandas\n",
	})
	desc := domain.NewDescriptor(domain.ByName("reso_env_abcdefgh"))
	desc.Set(domain.LayerExplicitLock, "/tmp/layers/spec-file.txt")
	desc.Set(domain.LayerHistoryManifest, "/tmp/layers/env_from_history.yaml")
	desc.Set(domain.LayerLeafPackages, "/tmp/layers/nondep_packages.txt")
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	writeArchive(t, c, fs, "/out/reso_archive.tar.gz", ports.ArchiveSpec{
		Header:      ports.ArchiveHeader{Version: "1.2.0", CreatedOn: created, Platform: domain.Platform{OS: "linux", Arch: "x86_64"}},
		ProjectRoot: "/work/proj",
		Descriptor:  desc,
	})

	r, err := c.Open(context.Background(), "/out/reso_archive.tar.gz")
	require.NoError(t, err)
	defer r.Close() //nolint:errcheck // test cleanup

	hdr := r.Header()
	assert.Equal(t, "1.2.0", hdr.Version)
	assert.True(t, created.Equal(hdr.CreatedOn))
	assert.Equal(t, domain.Platform{OS: "linux", Arch: "x86_64"}, hdr.Platform)

	require.NoError(t, r.ExtractFiles(context.Background(), "/restored"))
	assert.Equal(t, "print('train')\n", read(t, fs, "/restored/train.py"))
	assert.Equal(t, "a,b\n1,2\n", read(t, fs, "/restored/data/raw.csv"))
	for _, skipped := range []string{"/restored/.reso/config.yaml", "/restored/.env/spec-file.txt"} {
		exists, err := afero.Exists(fs, skipped)
		require.NoError(t, err)
		assert.False(t, exists, skipped)
	}

	lock, err := r.LayerPath(context.Background(), domain.LayerExplicitLock)
	require.NoError(t, err)
	assert.Equal(t, "@EXPLICIT\nhttps://repo/numpy-1.21.0-py39h.conda\n", read(t, fs, lock))

	leaves, err := r.LayerPath(context.Background(), domain.LayerLeafPackages)
	require.NoError(t, err)
	assert.Equal(t, "pandas==1.3.0", read(t, fs, leaves))

	_, err = r.LayerPath(context.Background(), domain.LayerPortablePack)
	require.ErrorIs(t, err, domain.ErrArchiveMemberMissing)

	require.NoError(t, r.Close())
	exists, err := afero.Exists(fs, lock)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestContainer_OpenRejectsForeignFiles(t *testing.T) {
	c, fs := newContainer(t)
	writeFiles(t, fs, map[string]string{"/in/notes.txt": "just text"})

	// A valid tar.gz that reso did not create.
	f, err := fs.Create("/in/other.tar.gz")
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "readme", Mode: 0o644, Size: 2, Typeflag: tar.TypeReg}))
	_, err = tw.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	for _, p := range []string{"/in/notes.txt", "/in/other.tar.gz"} {
		t.Run(p, func(t *testing.T) {
			_, err := c.Open(context.Background(), p)
			require.ErrorIs(t, err, domain.ErrNotAnArchive)
		})
	}
}

func TestContainer_OpenMissingFile(t *testing.T) {
	c, _ := newContainer(t)

	_, err := c.Open(context.Background(), "/nope.tar.gz")

	require.ErrorContains(t, err, "failed to open archive")
}

func TestContainer_WriteHonorsCancellation(t *testing.T) {
	c, fs := newContainer(t)
	writeFiles(t, fs, map[string]string{"/work/proj/train.py": "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f, err := fs.Create("/out.tar.gz")
	require.NoError(t, err)
	err = c.Write(ctx, f, ports.ArchiveSpec{ProjectRoot: "/work/proj"})

	require.ErrorIs(t, err, context.Canceled)
}
