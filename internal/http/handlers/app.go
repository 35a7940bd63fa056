package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra/geoip"
	"weddingapi/internal/middleware"
	"weddingapi/internal/orders"
	"weddingapi/internal/storage"
)

// App bundles the dependencies every handler needs.
type App struct {
	Gifts       domain.GiftRepository
	Sales       domain.SaleRepository
	RSVPs       domain.RSVPRepository
	Photos      domain.PhotoRepository
	Stories     domain.StoryRepository
	Contents    domain.ContentRepository
	Backgrounds domain.BackgroundRepository
	Config      domain.SiteConfigRepository
	Users       domain.UserRepository

	Orders *orders.Service
	Files  *storage.FileStore
	GeoIP  geoip.CountryResolver

	Logger    zerolog.Logger
	JWTSecret string
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}

// domainError maps sentinel domain errors onto HTTP responses. Anything
// unrecognized is logged and reported as an internal failure.
func (a *App) domainError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", a.msg(r, "registro não encontrado", "record not found"))
	case errors.Is(err, domain.ErrUnavailable):
		a.error(w, http.StatusBadRequest, "unavailable", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", a.msg(r, "credencial inválida", "invalid credential"))
	case errors.Is(err, domain.ErrGatewayFailure):
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("gateway failure")
		a.error(w, http.StatusInternalServerError, "upstream", a.msg(r, "falha ao comunicar com o gateway de pagamento", "payment gateway request failed"))
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
		a.error(w, http.StatusInternalServerError, "internal", a.msg(r, "erro interno", "internal error"))
	}
}

// msg picks the Portuguese or English variant based on the request locale.
func (a *App) msg(r *http.Request, pt, en string) string {
	if middleware.LocaleFromContext(r.Context()) == "en" {
		return en
	}
	return pt
}

func (a *App) idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
