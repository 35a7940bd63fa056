package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"weddingapi/internal/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type userDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "email e senha são obrigatórios", "email and password are required"))
		return
	}
	user, err := a.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", a.msg(r, "credenciais inválidas", "invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", a.msg(r, "credenciais inválidas", "invalid credentials"))
		return
	}
	token, err := middleware.SignJWT(a.JWTSecret, middleware.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Exp:    time.Now().Add(24 * time.Hour).Unix(),
		Issuer: "weddingapi",
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign jwt failed")
		a.error(w, http.StatusInternalServerError, "internal", a.msg(r, "falha ao gerar token", "failed to sign token"))
		return
	}
	a.json(w, http.StatusOK, loginResponse{
		Token: token,
		User:  userDTO{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (a *App) AuthMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.PrincipalFromContext(r.Context())
	if claims == nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", a.msg(r, "sessão inválida", "invalid session"))
		return
	}
	a.json(w, http.StatusOK, userDTO{ID: claims.UserID, Name: claims.Name, Email: claims.Email})
}
