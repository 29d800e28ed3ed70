package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rajnish018/portfolio-admin-backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-test-secret")

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(principal))
	})
}

func doAuthRequest(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	middleware := newAuthMiddleware(testSecret)
	handler := middleware.authenticate(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/projects", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	t.Parallel()

	tok, err := auth.IssueToken("admin@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doAuthRequest(t, "Bearer "+tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com", rec.Body.String())
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	t.Parallel()

	rec := doAuthRequest(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	t.Parallel()

	rec := doAuthRequest(t, "Basic YWRtaW46aHVudGVyMg==")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	t.Parallel()

	tok, err := auth.IssueToken("admin@example.com", testSecret, -time.Minute)
	require.NoError(t, err)

	rec := doAuthRequest(t, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestAuthenticate_TamperedToken(t *testing.T) {
	t.Parallel()

	tok, err := auth.IssueToken("admin@example.com", []byte("some-other-secret"), time.Hour)
	require.NoError(t, err)

	rec := doAuthRequest(t, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NonAdminRole(t *testing.T) {
	t.Parallel()

	// sign a structurally valid token carrying the wrong role claim
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: "viewer@example.com",
		Role:  "viewer",
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)

	rec := doAuthRequest(t, "Bearer "+signed)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticate_ToleratesExtraWhitespace(t *testing.T) {
	t.Parallel()

	tok, err := auth.IssueToken("admin@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doAuthRequest(t, "Bearer   "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
}
