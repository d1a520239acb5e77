// Package deposit publishes and retrieves project archives: research data
// deposits on a Yareta instance, objects on S3 and plain http(s) downloads.
package deposit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL is the public Yareta instance.
	DefaultBaseURL = "https://access.yareta.unige.ch"
	// DefaultAccess is the access level of new deposits.
	DefaultAccess = "PUBLIC"
	// DefaultLicense is the license of new deposits.
	DefaultLicense = "CC-BY-4-0"

	// BaseURLEnv overrides DefaultBaseURL.
	BaseURLEnv = "YARETA_BASE_URL"
	// AccessTokenEnv supplies the bearer token.
	AccessTokenEnv = "YARETA_ACCESS_TOKEN"
	// OrgUnitEnv supplies the organizational unit id.
	OrgUnitEnv = "YARETA_ORG_UNIT_ID"

	// usernameClaim holds the external uid in Yareta access tokens.
	usernameClaim = "user_name"

	// DefaultSettle is the pause between upload and approval. The service
	// processes uploads asynchronously and rejects early approvals.
	DefaultSettle = 10 * time.Second
)

// Yareta is a client of the Yareta deposit API.
type Yareta struct {
	baseURL string
	client  *http.Client
	fs      afero.Fs
	logger  ports.Logger
	settle  time.Duration
}

// NewYareta creates a client for the instance at baseURL.
func NewYareta(baseURL string, client *http.Client, fs afero.Fs, logger ports.Logger) *Yareta {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Yareta{baseURL: baseURL, client: client, fs: fs, logger: logger, settle: DefaultSettle}
}

// UsernameFromToken returns the user_name claim of an access token. The
// signature is not verified: the token is only forwarded to the service.
func UsernameFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidToken, "malformed token"), "reason", err.Error())
	}
	name, _ := claims[usernameClaim].(string)
	if name == "" {
		return "", zerr.Wrap(domain.ErrInvalidToken, "claim is empty")
	}
	return name, nil
}

type users struct {
	Data []struct {
		ExternalUID string `json:"externalUid"`
		Person      struct {
			ResID string `json:"resId"`
		} `json:"person"`
	} `json:"_data"`
}

type newDeposit struct {
	OrgUnitID   string   `json:"organizationalUnitId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Year        string   `json:"year"`
	Access      string   `json:"access"`
	LicenseID   string   `json:"licenseId"`
	Keywords    []string `json:"keywords"`
}

type resource struct {
	ResID string `json:"resId"`
}

// Deposit resolves the depositing person from the token, creates the deposit,
// uploads the archive and submits the deposit for approval.
func (y *Yareta) Deposit(ctx context.Context, req ports.DepositRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}
	if req.BaseURL != "" && req.BaseURL != y.baseURL {
		c := *y
		c.baseURL = req.BaseURL
		return c.deposit(ctx, req)
	}
	return y.deposit(ctx, req)
}

func (y *Yareta) deposit(ctx context.Context, req ports.DepositRequest) (string, error) {
	username, err := UsernameFromToken(req.AccessToken)
	if err != nil {
		return "", err
	}
	person, err := y.person(ctx, req.AccessToken, username)
	if err != nil {
		return "", err
	}
	y.logger.Debug(fmt.Sprintf("Found Yareta username %s from access token, person resId is %s", username, person))

	body := newDeposit{
		OrgUnitID:   req.OrgUnitID,
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Access:      withDefault(req.Access, DefaultAccess),
		LicenseID:   withDefault(req.LicenseID, DefaultLicense),
		Keywords:    req.Keywords,
	}
	if body.Keywords == nil {
		body.Keywords = []string{}
	}
	var created resource
	if err := y.postJSON(ctx, req.AccessToken, "/ingestion/preingest/deposits", body, http.StatusCreated, &created); err != nil {
		return "", err
	}
	id := created.ResID
	if err := y.postJSON(ctx, req.AccessToken, "/ingestion/preingest/deposits/"+id+"/contributors",
		[]string{person}, http.StatusCreated, nil); err != nil {
		return "", err
	}
	y.logger.Info(fmt.Sprintf("Successfully created deposit '%s' with title '%s'", id, req.Title))

	if err := y.upload(ctx, req.AccessToken, id, req.ArchivePath); err != nil {
		return "", err
	}
	y.logger.Info(fmt.Sprintf("Successfully uploaded file '%s' to deposit '%s'", req.ArchivePath, id))

	if y.settle > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(y.settle):
		}
	}
	if err := y.do(ctx, req.AccessToken, http.MethodPost, "/ingestion/preingest/deposits/"+id+"/approve",
		nil, "", http.StatusOK, nil); err != nil {
		return "", err
	}
	y.logger.Info(fmt.Sprintf("Successfully submitted deposit '%s'", id))
	return id, nil
}

func validate(req ports.DepositRequest) error {
	required := []struct{ name, value string }{
		{"access token", req.AccessToken},
		{"organizational unit id", req.OrgUnitID},
		{"title", req.Title},
		{"year", req.Year},
		{"description", req.Description},
	}
	for _, r := range required {
		if r.value == "" {
			return zerr.Wrap(domain.ErrMissingOption, "no Yareta deposit "+r.name+" was specified")
		}
	}
	return nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (y *Yareta) person(ctx context.Context, token, username string) (string, error) {
	var found users
	path := "/administration/admin/users?externalUid=" + url.QueryEscape(username)
	if err := y.do(ctx, token, http.MethodGet, path, nil, "", http.StatusOK, &found); err != nil {
		return "", err
	}
	if len(found.Data) == 0 || found.Data[0].ExternalUID != username {
		return "", zerr.With(zerr.Wrap(domain.ErrDepositFailed, "could not find user by externalUid"), "username", username)
	}
	return found.Data[0].Person.ResID, nil
}

func (y *Yareta) postJSON(ctx context.Context, token, path string, body any, want int, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return zerr.Wrap(err, "failed to encode request")
	}
	return y.do(ctx, token, http.MethodPost, path, bytes.NewReader(data), "application/json", want, out)
}

// upload streams the archive as the multipart field "file".
func (y *Yareta) upload(ctx context.Context, token, id, archive string) error {
	f, err := y.fs.Open(archive)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive"), "path", archive)
	}
	defer func() { _ = f.Close() }()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return zerr.Wrap(err, "failed to detect archive type")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return zerr.Wrap(err, "failed to rewind archive")
	}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(archive)))
		h.Set("Content-Type", mt.String())
		part, err := form.CreatePart(h)
		if err == nil {
			_, err = io.Copy(part, f)
		}
		if err == nil {
			err = form.Close()
		}
		_ = pw.CloseWithError(err)
		return err
	})
	g.Go(func() error {
		err := y.do(gctx, token, http.MethodPost, "/ingestion/preingest/deposits/"+id+"/upload",
			pr, form.FormDataContentType(), http.StatusOK, nil)
		_ = pr.CloseWithError(err)
		return err
	})
	return g.Wait()
}

func (y *Yareta) do(ctx context.Context, token, method, path string, body io.Reader, contentType string, want int, out any) error {
	target := y.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to build request"), "url", target)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := y.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "deposit request failed"), "url", target)
	}
	defer func() { _ = resp.Body.Close() }()

	where := fmt.Sprintf("[%s] %s", method, target)
	if resp.StatusCode == http.StatusUnauthorized {
		return zerr.Wrap(domain.ErrDepositUnauthorized, where)
	}
	if resp.StatusCode != want {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := zerr.With(zerr.Wrap(domain.ErrDepositFailed, where), "status", resp.StatusCode)
		return zerr.With(zerr.With(err, "expected", want), "body", string(msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to decode response"), "url", target)
	}
	return nil
}
