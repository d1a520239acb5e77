package deposit

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

// HTTPFetcher downloads archives over http and https.
type HTTPFetcher struct {
	client *http.Client
	fs     afero.Fs
	logger ports.Logger
}

// NewHTTPFetcher creates a fetcher. A nil client uses http.DefaultClient.
func NewHTTPFetcher(client *http.Client, fs afero.Fs, logger ports.Logger) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client, fs: fs, logger: logger}
}

// Fetch writes the body of a GET on rawURL to dest.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL, dest string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return zerr.Wrap(domain.ErrUnsupportedURL, "'"+rawURL+"'")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to build request"), "url", rawURL)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	f.logger.Info("Downloading " + rawURL)
	resp, err := f.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to download archive"), "url", rawURL)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return zerr.With(zerr.With(zerr.New("failed to download archive"), "url", rawURL), "status", resp.StatusCode)
	}
	return save(f.fs, resp.Body, dest)
}
