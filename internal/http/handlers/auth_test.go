package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"weddingapi/internal/domain"
	"weddingapi/internal/middleware"
)

func newAuthTestApp(t *testing.T, password string) *App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &App{
		Users: &fakeUsers{users: map[string]*domain.User{
			"admin@casamento.local": {
				ID:           1,
				Name:         "Administrador",
				Email:        "admin@casamento.local",
				PasswordHash: string(hash),
			},
		}},
		Logger:    zerolog.Nop(),
		JWTSecret: "test-secret",
	}
}

func TestAuthLogin(t *testing.T) {
	app := newAuthTestApp(t, "s3nh4-forte")

	body := `{"email":"Admin@Casamento.Local","password":"s3nh4-forte"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.AuthLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" || resp.User.Email != "admin@casamento.local" {
		t.Fatalf("unexpected response %+v", resp)
	}
	claims, err := middleware.VerifyJWT(app.JWTSecret, resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != 1 {
		t.Fatalf("claims %+v", claims)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	app := newAuthTestApp(t, "s3nh4-forte")

	body := `{"email":"admin@casamento.local","password":"errada"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.AuthLogin(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestAuthLoginUnknownUser(t *testing.T) {
	app := newAuthTestApp(t, "s3nh4-forte")

	body := `{"email":"alguem@example.com","password":"s3nh4-forte"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.AuthLogin(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestAuthLoginMissingFields(t *testing.T) {
	app := newAuthTestApp(t, "s3nh4-forte")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	app.AuthLogin(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}
