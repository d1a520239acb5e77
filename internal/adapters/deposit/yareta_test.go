package deposit_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/deposit"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func TestUsernameFromToken(t *testing.T) {
	name, err := deposit.UsernameFromToken(token(t, jwt.MapClaims{"user_name": "123456@unige.ch"}))
	require.NoError(t, err)
	assert.Equal(t, "123456@unige.ch", name)

	_, err = deposit.UsernameFromToken(token(t, jwt.MapClaims{"sub": "x"}))
	require.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = deposit.UsernameFromToken("not-a-token")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

// fakeYareta records the calls made against it.
type fakeYareta struct {
	mu       sync.Mutex
	calls    []string
	created  map[string]any
	authors  []string
	uploaded []byte
	filename string
	status   map[string]int
}

func (f *fakeYareta) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	record := func(r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.calls = append(f.calls, r.Method+" "+r.URL.Path)
		assert.Equal(t, "Bearer "+r.Header.Get("X-Test-Token"), r.Header.Get("Authorization"), "token forwarded")
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
	}
	reply := func(w http.ResponseWriter, r *http.Request, def int, body any) {
		code := def
		if c, ok := f.status[r.URL.Path]; ok {
			code = c
		}
		w.WriteHeader(code)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}
	mux.HandleFunc("GET /administration/admin/users", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		uid := r.URL.Query().Get("externalUid")
		reply(w, r, http.StatusOK, map[string]any{
			"_data": []any{map[string]any{"externalUid": uid, "person": map[string]any{"resId": "person-1"}}},
		})
	})
	mux.HandleFunc("POST /ingestion/preingest/deposits", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.created))
		reply(w, r, http.StatusCreated, map[string]any{"resId": "dep-42"})
	})
	mux.HandleFunc("POST /ingestion/preingest/deposits/dep-42/contributors", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.authors))
		reply(w, r, http.StatusCreated, []any{})
	})
	mux.HandleFunc("POST /ingestion/preingest/deposits/dep-42/upload", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		f.filename = header.Filename
		f.uploaded, err = io.ReadAll(file)
		assert.NoError(t, err)
		reply(w, r, http.StatusOK, map[string]any{})
	})
	mux.HandleFunc("POST /ingestion/preingest/deposits/dep-42/approve", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		reply(w, r, http.StatusOK, map[string]any{})
	})
	return mux
}

// tokenClient copies the bearer token into a header the fake can compare with.
type tokenClient struct {
	token string
	next  http.RoundTripper
}

func (c tokenClient) RoundTrip(r *http.Request) (*http.Response, error) {
	r.Header.Set("X-Test-Token", c.token)
	return c.next.RoundTrip(r)
}

func newYareta(t *testing.T, fake *fakeYareta, tok string) (*deposit.Yareta, afero.Fs) {
	t.Helper()
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/reso_archive.tar.gz", []byte{0x1f, 0x8b, 0x08, 0x00, 0x01, 0x02}, 0o644))
	client := &http.Client{Transport: tokenClient{token: tok, next: http.DefaultTransport}}
	y := deposit.NewYareta(srv.URL, client, fs, quietLogger(t))
	y.SetSettle(0)
	return y, fs
}

func request(tok string) ports.DepositRequest {
	return ports.DepositRequest{
		AccessToken: tok,
		OrgUnitID:   "unit-7",
		Title:       "Simulation inputs",
		Year:        "2026",
		Description: "Inputs of the 2026 runs",
		Keywords:    []string{"climate", "hpc"},
		ArchivePath: "/tmp/reso_archive.tar.gz",
	}
}

func TestYareta_Deposit(t *testing.T) {
	tok := token(t, jwt.MapClaims{"user_name": "123456@unige.ch"})
	fake := &fakeYareta{}
	y, _ := newYareta(t, fake, tok)

	id, err := y.Deposit(context.Background(), request(tok))
	require.NoError(t, err)
	assert.Equal(t, "dep-42", id)

	assert.Equal(t, []string{
		"GET /administration/admin/users",
		"POST /ingestion/preingest/deposits",
		"POST /ingestion/preingest/deposits/dep-42/contributors",
		"POST /ingestion/preingest/deposits/dep-42/upload",
		"POST /ingestion/preingest/deposits/dep-42/approve",
	}, fake.calls)
	assert.Equal(t, "unit-7", fake.created["organizationalUnitId"])
	assert.Equal(t, deposit.DefaultAccess, fake.created["access"])
	assert.Equal(t, deposit.DefaultLicense, fake.created["licenseId"])
	assert.Equal(t, []any{"climate", "hpc"}, fake.created["keywords"])
	assert.Equal(t, []string{"person-1"}, fake.authors)
	assert.Equal(t, "reso_archive.tar.gz", fake.filename)
	assert.Equal(t, []byte{0x1f, 0x8b, 0x08, 0x00, 0x01, 0x02}, fake.uploaded)
}

func TestYareta_Deposit_Unauthorized(t *testing.T) {
	tok := token(t, jwt.MapClaims{"user_name": "123456@unige.ch"})
	fake := &fakeYareta{status: map[string]int{"/administration/admin/users": http.StatusUnauthorized}}
	y, _ := newYareta(t, fake, tok)

	_, err := y.Deposit(context.Background(), request(tok))
	require.ErrorIs(t, err, domain.ErrDepositUnauthorized)
	assert.Len(t, fake.calls, 1)
}

func TestYareta_Deposit_UnexpectedStatus(t *testing.T) {
	tok := token(t, jwt.MapClaims{"user_name": "123456@unige.ch"})
	fake := &fakeYareta{status: map[string]int{"/ingestion/preingest/deposits/dep-42/approve": http.StatusBadRequest}}
	y, _ := newYareta(t, fake, tok)

	_, err := y.Deposit(context.Background(), request(tok))
	require.ErrorIs(t, err, domain.ErrDepositFailed)
	assert.Contains(t, err.Error(), "/approve")
}

func TestYareta_Deposit_MissingOption(t *testing.T) {
	tok := token(t, jwt.MapClaims{"user_name": "123456@unige.ch"})
	fake := &fakeYareta{}
	y, _ := newYareta(t, fake, tok)

	req := request(tok)
	req.Title = ""
	_, err := y.Deposit(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrMissingOption)
	assert.Contains(t, err.Error(), "title")
	assert.Empty(t, fake.calls)
}

func TestYareta_Deposit_BaseURLOverride(t *testing.T) {
	tok := token(t, jwt.MapClaims{"user_name": "123456@unige.ch"})
	fake := &fakeYareta{}
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/reso_archive.tar.gz", []byte("archive"), 0o644))
	client := &http.Client{Transport: tokenClient{token: tok, next: http.DefaultTransport}}
	y := deposit.NewYareta("http://127.0.0.1:1", client, fs, quietLogger(t))
	y.SetSettle(0)

	req := request(tok)
	req.BaseURL = srv.URL
	id, err := y.Deposit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "dep-42", id)
	assert.Len(t, fake.calls, 5)
}
