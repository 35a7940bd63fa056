package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"weddingapi/internal/domain"
	"weddingapi/internal/middleware"
)

type backgroundDTO struct {
	ID        int64     `json:"id"`
	Image     string    `json:"image"`
	Title     string    `json:"title"`
	SortOrder int       `json:"sortOrder"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type backgroundRequest struct {
	Image     string `json:"image"`
	Title     string `json:"title"`
	SortOrder *int   `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

func toBackgroundDTO(b domain.BackgroundImage) backgroundDTO {
	return backgroundDTO{
		ID:        b.ID,
		Image:     b.Image,
		Title:     b.Title,
		SortOrder: b.SortOrder,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
	}
}

func (a *App) BackgroundsList(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if r.URL.Query().Get("all") == "1" && middleware.PrincipalFromContext(r.Context()) != nil {
		activeOnly = false
	}
	images, err := a.Backgrounds.List(r.Context(), activeOnly)
	if err != nil {
		a.domainError(w, r, err, "list backgrounds failed")
		return
	}
	items := make([]backgroundDTO, 0, len(images))
	for _, img := range images {
		items = append(items, toBackgroundDTO(img))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) BackgroundsGet(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	image, err := a.Backgrounds.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get background failed")
		return
	}
	a.json(w, http.StatusOK, toBackgroundDTO(*image))
}

func (a *App) BackgroundsCreate(w http.ResponseWriter, r *http.Request) {
	var req backgroundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "imagem é obrigatória", "image is required"))
		return
	}
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	image := &domain.BackgroundImage{
		Image:     req.Image,
		Title:     req.Title,
		SortOrder: sortOrder,
		Active:    active,
	}
	if err := a.Backgrounds.Create(r.Context(), image); err != nil {
		a.domainError(w, r, err, "create background failed")
		return
	}
	a.json(w, http.StatusCreated, toBackgroundDTO(*image))
}

func (a *App) BackgroundsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	image, err := a.Backgrounds.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get background failed")
		return
	}
	var req backgroundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	if req.Image != "" {
		image.Image = req.Image
	}
	image.Title = req.Title
	if req.SortOrder != nil {
		image.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		image.Active = *req.Active
	}
	if err := a.Backgrounds.Update(r.Context(), image); err != nil {
		a.domainError(w, r, err, "update background failed")
		return
	}
	a.json(w, http.StatusOK, toBackgroundDTO(*image))
}

func (a *App) BackgroundsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	image, err := a.Backgrounds.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get background failed")
		return
	}
	if err := a.Backgrounds.Delete(r.Context(), id); err != nil {
		a.domainError(w, r, err, "delete background failed")
		return
	}
	a.removeUploadRef(r.Context(), image.Image)
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) BackgroundsUpload(w http.ResponseWriter, r *http.Request) {
	ref, err := a.saveUpload(r, "file", "backgrounds")
	if err != nil {
		a.uploadError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"image": ref})
}
