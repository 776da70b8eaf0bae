package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
)

type fakeAuth struct {
	enabled bool
	users   map[string]*models.AuthUser
}

func (f fakeAuth) Enabled() bool { return f.enabled }

func (f fakeAuth) Validate(_ context.Context, token string) (*models.AuthUser, error) {
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, types.ErrInvalidToken
}

func newTestMiddleware(enabled bool) *Middleware {
	auth := fakeAuth{enabled: enabled, users: map[string]*models.AuthUser{
		"admin":  {ID: "1", Role: "ADMIN"},
		"driver": {ID: "2", Role: "DRIVER"},
	}}
	return NewMiddleware(auth, logger.Discard(), "/administration/login/")
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestAuthGate(t *testing.T) {
	m := newTestMiddleware(true)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := m.Auth(m.RequireRoles(ok, types.AdminRole))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"bearer admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer admin") }, http.StatusTeapot},
		{"cookie admin", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: models.Access, Value: "admin"}) }, http.StatusTeapot},
		{"wrong role", func(r *http.Request) { r.Header.Set("Authorization", "Bearer driver") }, http.StatusForbidden},
		{"bad token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"bad header", func(r *http.Request) { r.Header.Set("Authorization", "Basic x") }, http.StatusUnauthorized},
		{"anonymous api", func(r *http.Request) {}, http.StatusUnauthorized},
		{"anonymous browser", func(r *http.Request) { r.Header.Set("Accept", "text/html,application/xhtml+xml") }, http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/administration/users/", nil)
			tt.setup(r)
			rec := serve(h, r)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusFound {
				assert.Equal(t, "/administration/login/?next=%2Fadministration%2Fusers%2F", rec.Header().Get("Location"))
			}
		})
	}
}

func TestAuthDisabled(t *testing.T) {
	m := newTestMiddleware(false)
	h := m.Auth(m.RequireRoles(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), types.AdminRole))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer nope")
	assert.Equal(t, http.StatusNoContent, serve(h, r).Code)
}

func TestRequestID(t *testing.T) {
	m := newTestMiddleware(false)
	h := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	require.NoError(t, err)

	given := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, given)
	assert.Equal(t, given, serve(h, r).Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	m := newTestMiddleware(false)
	h := m.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("boom"))
	}))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestMetricsAndLoggingPassThrough(t *testing.T) {
	m := newTestMiddleware(false)
	h := m.Logging(m.Metrics("admin-console")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})))

	assert.Equal(t, http.StatusAccepted, serve(h, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
}

func TestErrorResponseCarriesRequestID(t *testing.T) {
	m := newTestMiddleware(true)
	h := m.RequestID(m.Auth(m.RequireRoles(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), types.AdminRole)))

	given := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/administration/api/kpis/", nil)
	r.Header.Set(RequestIDHeader, given)
	rec := serve(h, r)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, given, body.RequestID)
	assert.NotEmpty(t, body.Error)
}
