package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"weddingapi/internal/domain"
)

type contentDTO struct {
	Section   string    `json:"section"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var knownSections = map[string]bool{
	domain.SectionHome:    true,
	domain.SectionHistory: true,
	domain.SectionInfo:    true,
}

// ContentGet returns a section body, seeding the default when the row is
// absent and upgrading legacy "informacoes" bodies in place.
func (a *App) ContentGet(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if !knownSections[section] {
		a.error(w, http.StatusNotFound, "not_found", a.msg(r, "seção desconhecida", "unknown section"))
		return
	}
	content, err := a.Contents.GetBySection(r.Context(), section)
	if errors.Is(err, domain.ErrNotFound) {
		content, err = a.Contents.Upsert(r.Context(), section, domain.DefaultContent(section))
	}
	if err != nil {
		a.domainError(w, r, err, "get content failed")
		return
	}
	if section == domain.SectionInfo {
		if migrated, changed := domain.MigrateInfoBody(content.Body); changed {
			a.Logger.Info().Str("section", section).Msg("migrated legacy content body")
			content, err = a.Contents.Upsert(r.Context(), section, migrated)
			if err != nil {
				a.domainError(w, r, err, "persist migrated content failed")
				return
			}
		}
	}
	a.json(w, http.StatusOK, contentDTO{Section: content.Section, Body: content.Body, UpdatedAt: content.UpdatedAt})
}

func (a *App) ContentUpdate(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if !knownSections[section] {
		a.error(w, http.StatusNotFound, "not_found", a.msg(r, "seção desconhecida", "unknown section"))
		return
	}
	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	content, err := a.Contents.Upsert(r.Context(), section, req.Body)
	if err != nil {
		a.domainError(w, r, err, "update content failed")
		return
	}
	a.json(w, http.StatusOK, contentDTO{Section: content.Section, Body: content.Body, UpdatedAt: content.UpdatedAt})
}
