package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"weddingapi/internal/domain"
	"weddingapi/internal/middleware"
)

type rsvpRequest struct {
	Name       string `json:"name"`
	Companions int    `json:"companions"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	Confirmed  *bool  `json:"confirmed"`
}

type rsvpDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Companions int       `json:"companions"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	Confirmed  bool      `json:"confirmed"`
	Country    string    `json:"country"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toRSVPDTO(r domain.RSVP) rsvpDTO {
	return rsvpDTO{
		ID:         r.ID,
		Name:       r.Name,
		Companions: r.Companions,
		Email:      r.Email,
		Phone:      r.Phone,
		Message:    r.Message,
		Confirmed:  r.Confirmed,
		Country:    r.Country,
		CreatedAt:  r.CreatedAt,
	}
}

func (a *App) RSVPCreate(w http.ResponseWriter, r *http.Request) {
	var req rsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "nome é obrigatório", "name is required"))
		return
	}
	if req.Companions < 0 {
		req.Companions = 0
	}
	confirmed := true
	if req.Confirmed != nil {
		confirmed = *req.Confirmed
	}
	rsvp := &domain.RSVP{
		Name:       req.Name,
		Companions: req.Companions,
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    req.Message,
		Confirmed:  confirmed,
		Country:    a.resolveCountry(r),
	}
	if err := a.RSVPs.Create(r.Context(), rsvp); err != nil {
		a.domainError(w, r, err, "create rsvp failed")
		return
	}
	a.json(w, http.StatusCreated, toRSVPDTO(*rsvp))
}

// resolveCountry is best-effort: no resolver or a failed lookup yields "".
func (a *App) resolveCountry(r *http.Request) string {
	if a.GeoIP == nil {
		return ""
	}
	ip := middleware.ClientIP(r)
	if ip == "" {
		return ""
	}
	country, err := a.GeoIP.CountryCode(ip)
	if err != nil {
		a.Logger.Debug().Err(err).Str("ip", ip).Msg("geoip lookup failed")
		return ""
	}
	return country
}

func (a *App) RSVPList(w http.ResponseWriter, r *http.Request) {
	rsvps, err := a.RSVPs.List(r.Context())
	if err != nil {
		a.domainError(w, r, err, "list rsvps failed")
		return
	}
	items := make([]rsvpDTO, 0, len(rsvps))
	for _, entry := range rsvps {
		items = append(items, toRSVPDTO(entry))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) RSVPDelete(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	if err := a.RSVPs.Delete(r.Context(), id); err != nil {
		a.domainError(w, r, err, "delete rsvp failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) RSVPExportCSV(w http.ResponseWriter, r *http.Request) {
	rsvps, err := a.RSVPs.List(r.Context())
	if err != nil {
		a.domainError(w, r, err, "export rsvps failed")
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="confirmacoes.csv"`)
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"nome", "acompanhantes", "email", "telefone", "mensagem", "confirmado", "pais", "data"})
	for _, entry := range rsvps {
		confirmed := "nao"
		if entry.Confirmed {
			confirmed = "sim"
		}
		_ = cw.Write([]string{
			entry.Name,
			strconv.Itoa(entry.Companions),
			entry.Email,
			entry.Phone,
			entry.Message,
			confirmed,
			entry.Country,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	cw.Flush()
}
