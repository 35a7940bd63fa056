package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"weddingapi/internal/http/handlers"
)

func newTestRouter() http.Handler {
	app := &handlers.App{Logger: zerolog.Nop(), JWTSecret: "test-secret"}
	return NewRouter(app, Options{Logger: zerolog.Nop()})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestMetricsExposed(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter()
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/gifts"},
		{http.MethodGet, "/api/rsvps"},
		{http.MethodGet, "/api/sales"},
		{http.MethodPut, "/api/config"},
		{http.MethodDelete, "/api/album/1"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}
