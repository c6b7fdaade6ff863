package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/log"
)

type stubValidator struct {
	claims *domain.Claims
	err    error
}

func (s stubValidator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 7, UserRoleID: domain.RoleFreelancer}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  stubValidator
		wantStatus int
	}{
		{name: "Healthcheck é público", path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "Rotas de auth são públicas", path: "/v1/auth/login", wantStatus: http.StatusOK},
		{name: "Sem header", path: "/v1/clients", wantStatus: http.StatusUnauthorized},
		{name: "Sem Bearer", path: "/v1/clients", header: "abc", wantStatus: http.StatusUnauthorized},
		{name: "Token inválido", path: "/v1/clients", header: "Bearer x", validator: stubValidator{err: errors.New("inválido")}, wantStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/v1/clients", header: "Bearer x", validator: stubValidator{claims: claims}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validator.claims != nil {
				assert.Equal(t, claims, got)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	withClaims := func(c *domain.Claims) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		var captured *http.Request
		AuthMiddleware(stubValidator{claims: c})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			captured = r
		})).ServeHTTP(httptest.NewRecorder(), withBearer(req))
		return captured
	}

	rec := httptest.NewRecorder()
	AdminOnly()(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	AdminOnly()(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserID: 2, UserRoleID: domain.RoleFreelancer}))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	AdminOnly()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func withBearer(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer token")
	return r
}

func TestCors(t *testing.T) {
	h := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/clients", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(time.Minute, 2)
	rl.now = func() time.Time { return now }
	h := rl.Middleware(true)(okHandler())

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, do())
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)
	h := rl.Middleware(false)(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestLoggingMiddlewareReusesRequestID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	h := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	h := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/clients", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
