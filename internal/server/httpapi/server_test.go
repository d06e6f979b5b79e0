package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/lockbox/internal/cryptox"
	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/server/auth"
	"github.com/dmitrijs2005/lockbox/internal/server/encryption"
	"github.com/dmitrijs2005/lockbox/internal/server/names"
	"github.com/dmitrijs2005/lockbox/internal/server/secrets"
	"github.com/dmitrijs2005/lockbox/internal/server/userstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "test-secret-key"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	kc, err := cryptox.NewKeychain(cryptox.DeriveMasterKey([]byte("test-key"), []byte("test-salt")))
	require.NoError(t, err)
	protector, err := kc.Protector("secrets.v1")
	require.NoError(t, err)

	ns := names.NewService(userstore.New[string](), logger)
	ss := secrets.NewService(userstore.New[string](), encryption.NewService(protector, logger), logger)

	srv := NewHTTPServer(":0", logger, ns, ss, testSecretKey)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func bearerFor(t *testing.T, subject string, permissions ...string) string {
	t.Helper()
	tok, err := auth.GenerateToken(subject, permissions, []byte(testSecretKey), time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, ts *httptest.Server, method, path, bearer, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeStrings(t *testing.T, resp *http.Response) []string {
	t.Helper()
	var items []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	return items
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := doRequest(t, ts, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNames_PostThenGet(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	userA := bearerFor(t, "auth0|user-a")

	resp := doRequest(t, ts, http.MethodPost, "/api/names", userA, `{"name":"Jane Smith"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/names", resp.Header.Get("Location"))

	resp = doRequest(t, ts, http.MethodGet, "/api/names", userA, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Jane Smith"}, decodeStrings(t, resp))
}

func TestNames_GetForOtherUserIsEmpty(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp := doRequest(t, ts, http.MethodPost, "/api/names", bearerFor(t, "user-a"), `{"name":"Jane Smith"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, ts, http.MethodGet, "/api/names", bearerFor(t, "user-b"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeStrings(t, resp))
}

func TestNames_MissingTokenIs401(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := doRequest(t, ts, http.MethodGet, "/api/names", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNames_InvalidTokenIs401(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := doRequest(t, ts, http.MethodGet, "/api/names", "Bearer not.a.jwt", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNames_InvalidBodyIs400(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	bearer := bearerFor(t, "user-a")

	resp := doRequest(t, ts, http.MethodPost, "/api/names", bearer, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, ts, http.MethodPost, "/api/names", bearer, `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, ts, http.MethodPost, "/api/names", bearer, `{"name":"`+strings.Repeat("a", 101)+`"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSecrets_PostThenGetReturnsPlaintext(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	userA := bearerFor(t, "auth0|user-a", "read:secrets", "write:secrets")

	resp := doRequest(t, ts, http.MethodPost, "/api/secrets", userA, `{"secret":"confidential-data"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/secrets", resp.Header.Get("Location"))

	resp = doRequest(t, ts, http.MethodGet, "/api/secrets", userA, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"confidential-data"}, decodeStrings(t, resp), "the response must carry the decrypted value, not the ciphertext")
}

func TestSecrets_MissingPermissionIs403(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	// token lacking write:secrets
	userC := bearerFor(t, "auth0|user-c", "read:names")
	resp := doRequest(t, ts, http.MethodPost, "/api/secrets", userC, `{"secret":"x"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// token with no permission claims at all
	resp = doRequest(t, ts, http.MethodGet, "/api/secrets", bearerFor(t, "auth0|user-d"), "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSecrets_UserIsolation(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	userA := bearerFor(t, "user-a", "read:secrets", "write:secrets")
	userB := bearerFor(t, "user-b", "read:secrets", "write:secrets")

	resp := doRequest(t, ts, http.MethodPost, "/api/secrets", userA, `{"secret":"alpha"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, ts, http.MethodGet, "/api/secrets", userB, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeStrings(t, resp))
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := doRequest(t, ts, http.MethodGet, "/health", "", "")
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
