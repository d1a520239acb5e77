package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/app"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.uber.org/mock/gomock"
)

func TestApp_ArchiveCreate_File(t *testing.T) {
	h := newHarness(t)
	h.inProject(domain.ProjectConfig{EnvName: "reso_env_local"})
	h.rec.archive = "tarball"
	require.NoError(t, h.fs.MkdirAll("/out", 0o755))

	require.NoError(t, h.app.ArchiveCreate(context.Background(), app.ArchiveCreateOptions{Filename: "/out/a.tar.gz"}))

	data, err := afero.ReadFile(h.fs, "/out/a.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "tarball", string(data))
}

func TestApp_ArchiveCreate_S3(t *testing.T) {
	h := newHarness(t)
	h.inProject(domain.ProjectConfig{EnvName: "reso_env_local"})
	h.rec.archive = "tarball"

	h.objects.EXPECT().Upload(gomock.Any(), "s3://bucket/key.tar.gz", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, file string) error {
			data, err := afero.ReadFile(h.fs, file)
			require.NoError(t, err)
			assert.Equal(t, "tarball", string(data))
			assert.Equal(t, domain.ArchiveFileName, filepath.Base(file))
			return nil
		})

	require.NoError(t, h.app.ArchiveCreate(context.Background(), app.ArchiveCreateOptions{S3URL: "s3://bucket/key.tar.gz"}))
}

func TestApp_ArchiveCreate_Deposit(t *testing.T) {
	h := newHarness(t)
	h.inProject(domain.ProjectConfig{EnvName: "reso_env_local"})

	h.depositor.EXPECT().Deposit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.DepositRequest) (string, error) {
			assert.Equal(t, "unit-1", req.OrgUnitID)
			assert.Equal(t, "Results", req.Title)
			assert.Equal(t, domain.ArchiveFileName, filepath.Base(req.ArchivePath))
			return "dep-1", nil
		})

	err := h.app.ArchiveCreate(context.Background(), app.ArchiveCreateOptions{
		Deposit: ports.DepositRequest{OrgUnitID: "unit-1", Title: "Results"},
	})
	require.NoError(t, err)
}

func TestApp_ArchiveCreate_Destination(t *testing.T) {
	h := newHarness(t)

	err := h.app.ArchiveCreate(context.Background(), app.ArchiveCreateOptions{})
	require.ErrorIs(t, err, domain.ErrMissingOption)

	err = h.app.ArchiveCreate(context.Background(), app.ArchiveCreateOptions{Filename: "a", S3URL: "s3://b/k"})
	require.ErrorIs(t, err, domain.ErrConflictingOptions)
}

func TestApp_ArchiveLoad(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		h := newHarness(t)
		h.inProject(domain.ProjectConfig{})
		h.prompter.EXPECT().Confirm(gomock.Any(), false).Return(false, nil)

		err := h.app.ArchiveLoad(context.Background(), app.ArchiveLoadOptions{Source: app.ArchiveSource{Filename: "/a.tar.gz"}})
		require.NoError(t, err)
		assert.Empty(t, h.rec.restores)
	})

	t.Run("from url", func(t *testing.T) {
		h := newHarness(t)
		project, _ := h.inProject(domain.ProjectConfig{})
		h.prompter.EXPECT().Confirm(gomock.Any(), false).Return(true, nil)
		var fetched string
		h.fetcher.EXPECT().Fetch(gomock.Any(), "https://example.org/a.tar.gz", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, dest string) error {
				fetched = dest
				return afero.WriteFile(h.fs, dest, []byte("tarball"), 0o644)
			})

		err := h.app.ArchiveLoad(context.Background(), app.ArchiveLoadOptions{
			Source: app.ArchiveSource{URL: "https://example.org/a.tar.gz"},
		})
		require.NoError(t, err)
		require.Len(t, h.rec.restores, 1)
		assert.Equal(t, fetched, h.rec.restores[0].ArchivePath)
		assert.Equal(t, project, h.rec.restores[0].Project)

		_, err = h.fs.Stat(fetched)
		assert.Error(t, err, "downloaded archive is removed")
	})

	t.Run("requires a source", func(t *testing.T) {
		h := newHarness(t)
		err := h.app.ArchiveLoad(context.Background(), app.ArchiveLoadOptions{})
		require.ErrorIs(t, err, domain.ErrMissingOption)
	})
}
