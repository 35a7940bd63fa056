package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"weddingapi/internal/domain"
)

type storyDTO struct {
	ID        int64     `json:"id"`
	EventDate string    `json:"eventDate"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Image     string    `json:"image"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

type storyRequest struct {
	EventDate string `json:"eventDate"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Image     string `json:"image"`
	SortOrder *int   `json:"sortOrder"`
}

func toStoryDTO(e domain.StoryEvent) storyDTO {
	return storyDTO{
		ID:        e.ID,
		EventDate: e.EventDate,
		Title:     e.Title,
		Body:      e.Body,
		Image:     e.Image,
		SortOrder: e.SortOrder,
		CreatedAt: e.CreatedAt,
	}
}

func (a *App) StoryList(w http.ResponseWriter, r *http.Request) {
	events, err := a.Stories.List(r.Context())
	if err != nil {
		a.domainError(w, r, err, "list story failed")
		return
	}
	items := make([]storyDTO, 0, len(events))
	for _, e := range events {
		items = append(items, toStoryDTO(e))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) StoryGet(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	event, err := a.Stories.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get story event failed")
		return
	}
	a.json(w, http.StatusOK, toStoryDTO(*event))
}

func (a *App) StoryCreate(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "título é obrigatório", "title is required"))
		return
	}
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}
	event := &domain.StoryEvent{
		EventDate: req.EventDate,
		Title:     req.Title,
		Body:      req.Body,
		Image:     req.Image,
		SortOrder: sortOrder,
	}
	if err := a.Stories.Create(r.Context(), event); err != nil {
		a.domainError(w, r, err, "create story event failed")
		return
	}
	a.json(w, http.StatusCreated, toStoryDTO(*event))
}

func (a *App) StoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	event, err := a.Stories.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get story event failed")
		return
	}
	var req storyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		event.Title = title
	}
	if req.EventDate != "" {
		event.EventDate = req.EventDate
	}
	if req.Body != "" {
		event.Body = req.Body
	}
	if req.Image != "" {
		event.Image = req.Image
	}
	if req.SortOrder != nil {
		event.SortOrder = *req.SortOrder
	}
	if err := a.Stories.Update(r.Context(), event); err != nil {
		a.domainError(w, r, err, "update story event failed")
		return
	}
	a.json(w, http.StatusOK, toStoryDTO(*event))
}

func (a *App) StoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	event, err := a.Stories.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get story event failed")
		return
	}
	if err := a.Stories.Delete(r.Context(), id); err != nil {
		a.domainError(w, r, err, "delete story event failed")
		return
	}
	a.removeUploadRef(r.Context(), event.Image)
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) StoryUpload(w http.ResponseWriter, r *http.Request) {
	ref, err := a.saveUpload(r, "file", "story")
	if err != nil {
		a.uploadError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"image": ref})
}
