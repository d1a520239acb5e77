package deposit

import (
	"context"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

// S3API is the subset of the S3 client used by S3Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store keeps archives in S3 buckets.
type S3Store struct {
	client func(ctx context.Context) (S3API, error)
	fs     afero.Fs
	logger ports.Logger
}

// NewS3Store creates a store that loads AWS credentials from the default
// chain on first use.
func NewS3Store(fs afero.Fs, logger ports.Logger) *S3Store {
	return &S3Store{client: defaultClient, fs: fs, logger: logger}
}

// NewS3StoreWithClient creates a store backed by api.
func NewS3StoreWithClient(api S3API, fs afero.Fs, logger ports.Logger) *S3Store {
	return &S3Store{
		client: func(context.Context) (S3API, error) { return api, nil },
		fs:     fs,
		logger: logger,
	}
}

func defaultClient(ctx context.Context) (S3API, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load AWS configuration")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	return s3.NewFromConfig(cfg), nil
}

// ParseS3URL splits s3://bucket/key.
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "s3" {
		return "", "", zerr.Wrap(domain.ErrUnsupportedURL, "'"+raw+"'")
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", zerr.With(zerr.Wrap(domain.ErrUnsupportedURL, "expected s3://bucket/key"), "url", raw)
	}
	return u.Host, key, nil
}

// Upload puts file at url.
func (s *S3Store) Upload(ctx context.Context, rawURL, file string) error {
	bucket, key, err := ParseS3URL(rawURL)
	if err != nil {
		return err
	}
	api, err := s.client(ctx)
	if err != nil {
		return err
	}

	f, err := s.fs.Open(file)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive"), "path", file)
	}
	defer func() { _ = f.Close() }()
	info, err := f.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat archive"), "path", file)
	}
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return zerr.Wrap(err, "failed to detect archive type")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return zerr.Wrap(err, "failed to rewind archive")
	}

	s.logger.Info("Uploading " + filepath.Base(file) + " to " + rawURL)
	_, err = api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(mt.String()),
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to upload archive"), "url", rawURL)
	}
	return nil
}

// Download writes the object at url to dest.
func (s *S3Store) Download(ctx context.Context, rawURL, dest string) error {
	bucket, key, err := ParseS3URL(rawURL)
	if err != nil {
		return err
	}
	api, err := s.client(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("Downloading " + rawURL)
	out, err := api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to download archive"), "url", rawURL)
	}
	defer func() { _ = out.Body.Close() }()
	return save(s.fs, out.Body, dest)
}

func save(fs afero.Fs, r io.Reader, dest string) error {
	if err := fs.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dest))
	}
	f, err := fs.Create(dest)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dest)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", dest)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dest)
	}
	return nil
}
