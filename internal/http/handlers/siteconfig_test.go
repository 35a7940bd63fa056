package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"weddingapi/internal/domain"
	"weddingapi/internal/middleware"
)

func newConfigTestApp() (*App, *fakeConfig) {
	config := &fakeConfig{cfg: domain.SiteConfig{
		ID:              1,
		SiteTitle:       "Marília & Iago",
		MPPublicKey:     "APP_USR-public",
		MPAccessToken:   "APP_USR-secret-token",
		MPWebhookSecret: "whsec",
	}}
	return &App{Config: config, Logger: zerolog.Nop(), JWTSecret: "test-secret"}, config
}

func TestConfigGetRedactsSecretsForGuests(t *testing.T) {
	app, _ := newConfigTestApp()
	handler := middleware.OptionalAuthJWT(app.JWTSecret)(http.HandlerFunc(app.ConfigGet))

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var dto siteConfigDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatal(err)
	}
	if dto.MPAccessToken != "" || dto.MPWebhookSecret != "" {
		t.Fatalf("secrets leaked: %+v", dto)
	}
	if dto.MPPublicKey != "APP_USR-public" {
		t.Fatalf("public key %q", dto.MPPublicKey)
	}
}

func TestConfigGetIncludesSecretsForAdmin(t *testing.T) {
	app, _ := newConfigTestApp()
	handler := middleware.OptionalAuthJWT(app.JWTSecret)(http.HandlerFunc(app.ConfigGet))

	token, err := middleware.SignJWT(app.JWTSecret, middleware.TokenClaims{
		UserID: 1,
		Email:  "admin@casamento.local",
		Exp:    time.Now().Add(time.Hour).Unix(),
		Issuer: "weddingapi",
	})
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var dto siteConfigDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatal(err)
	}
	if dto.MPAccessToken != "APP_USR-secret-token" {
		t.Fatalf("admin should see the token, got %+v", dto)
	}
}

func TestConfigUpdate(t *testing.T) {
	app, config := newConfigTestApp()

	body := `{"siteTitle":"Novo Título","mpAccessToken":"APP_USR-rotated"}`
	req := httptest.NewRequest(http.MethodPut, "/api/config", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.ConfigUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if config.cfg.SiteTitle != "Novo Título" {
		t.Fatalf("title %q", config.cfg.SiteTitle)
	}
	if config.cfg.MPAccessToken != "APP_USR-rotated" {
		t.Fatalf("token %q", config.cfg.MPAccessToken)
	}
	// untouched fields keep their values
	if config.cfg.MPPublicKey != "APP_USR-public" {
		t.Fatalf("public key %q", config.cfg.MPPublicKey)
	}
}

func TestConfigPublicKey(t *testing.T) {
	app, _ := newConfigTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/config/public-key", nil)
	rec := httptest.NewRecorder()
	app.ConfigPublicKey(rec, req)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["publicKey"] != "APP_USR-public" {
		t.Fatalf("response %+v", resp)
	}
}
