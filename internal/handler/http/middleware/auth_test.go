package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glowlabs/salon-backend-go/internal/domain/user"
	"github.com/glowlabs/salon-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(jwtService jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func doAuthedRequest(router *chi.Mux, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequiredAcceptsAccessToken(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret", "1h")
	tenantID := "tenant-1"
	token, _, err := svc.GenerateAccessToken("user-1", &tenantID, nil, nil, user.RoleManager)
	require.NoError(t, err)

	rec := doAuthedRequest(newProtectedRouter(svc), token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequiredRejectsRevokedToken(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret", "1h")
	tenantID := "tenant-1"
	token, _, err := svc.GenerateAccessToken("user-1", &tenantID, nil, nil, user.RoleManager)
	require.NoError(t, err)

	router := newProtectedRouter(svc)
	rec := doAuthedRequest(router, token)
	require.Equal(t, http.StatusOK, rec.Code)

	svc.RevokeToken(token)

	rec = doAuthedRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsNonAccessToken(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret", "1h")
	token, _, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)

	rec := doAuthedRequest(newProtectedRouter(svc), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
