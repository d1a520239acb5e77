package deposit_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/deposit"
	"go.trai.ch/reso/internal/core/domain"
)

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.objects[key] = data
	f.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := deposit.ParseS3URL("s3://lab-archives/projects/proj/reso_archive.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "lab-archives", bucket)
	assert.Equal(t, "projects/proj/reso_archive.tar.gz", key)

	for _, raw := range []string{"https://lab/x", "s3://lab-archives", "s3:///key"} {
		_, _, err := deposit.ParseS3URL(raw)
		require.ErrorIs(t, err, domain.ErrUnsupportedURL, raw)
	}
}

func TestS3Store_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	gz := []byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00}
	require.NoError(t, afero.WriteFile(fs, "/work/reso_archive.tar.gz", gz, 0o644))
	api := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	store := deposit.NewS3StoreWithClient(api, fs, quietLogger(t))

	const url = "s3://lab-archives/proj/reso_archive.tar.gz"
	require.NoError(t, store.Upload(context.Background(), url, "/work/reso_archive.tar.gz"))
	assert.Equal(t, gz, api.objects["lab-archives/proj/reso_archive.tar.gz"])
	assert.Equal(t, "application/gzip", api.types["lab-archives/proj/reso_archive.tar.gz"])

	require.NoError(t, store.Download(context.Background(), url, "/restore/in/archive.tar.gz"))
	got, err := afero.ReadFile(fs, "/restore/in/archive.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, gz, got)
}

func TestS3Store_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	api := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	store := deposit.NewS3StoreWithClient(api, fs, quietLogger(t))

	err := store.Upload(context.Background(), "s3://b/k", "/missing.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open archive")

	err = store.Download(context.Background(), "s3://b/missing", "/out.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to download archive")

	err = store.Download(context.Background(), "gs://b/k", "/out.tar.gz")
	require.ErrorIs(t, err, domain.ErrUnsupportedURL)
}
