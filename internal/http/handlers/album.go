package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"weddingapi/internal/domain"
	"weddingapi/internal/middleware"
	"weddingapi/pkg/zip"
)

type photoDTO struct {
	ID        int64     `json:"id"`
	Gallery   string    `json:"gallery"`
	Image     string    `json:"image"`
	Title     string    `json:"title"`
	SortOrder int       `json:"sortOrder"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type photoRequest struct {
	Gallery   string `json:"gallery"`
	Image     string `json:"image"`
	Title     string `json:"title"`
	SortOrder *int   `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

func toPhotoDTO(p domain.Photo) photoDTO {
	return photoDTO{
		ID:        p.ID,
		Gallery:   p.Gallery,
		Image:     p.Image,
		Title:     p.Title,
		SortOrder: p.SortOrder,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

// AlbumList returns active photos grouped by gallery. Authenticated requests
// may pass ?all=1 to include inactive entries.
func (a *App) AlbumList(w http.ResponseWriter, r *http.Request) {
	photos, err := a.Photos.List(r.Context(), a.albumActiveFilter(r))
	if err != nil {
		a.domainError(w, r, err, "list album failed")
		return
	}
	grouped := map[string][]photoDTO{}
	for _, p := range photos {
		grouped[p.Gallery] = append(grouped[p.Gallery], toPhotoDTO(p))
	}
	a.json(w, http.StatusOK, grouped)
}

func (a *App) AlbumListGallery(w http.ResponseWriter, r *http.Request) {
	gallery := chi.URLParam(r, "gallery")
	photos, err := a.Photos.ListByGallery(r.Context(), gallery, a.albumActiveFilter(r))
	if err != nil {
		a.domainError(w, r, err, "list gallery failed")
		return
	}
	items := make([]photoDTO, 0, len(photos))
	for _, p := range photos {
		items = append(items, toPhotoDTO(p))
	}
	a.json(w, http.StatusOK, items)
}

// albumActiveFilter restricts listings to active photos unless an admin
// explicitly asks for everything.
func (a *App) albumActiveFilter(r *http.Request) *bool {
	if r.URL.Query().Get("all") == "1" && middleware.PrincipalFromContext(r.Context()) != nil {
		return nil
	}
	active := true
	return &active
}

func (a *App) AlbumGet(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	photo, err := a.Photos.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get photo failed")
		return
	}
	a.json(w, http.StatusOK, toPhotoDTO(*photo))
}

// newPhotoFromRequest validates a create payload. A missing sort order
// continues after the gallery's current maximum.
func (a *App) newPhotoFromRequest(r *http.Request, req photoRequest) (*domain.Photo, error) {
	gallery := strings.TrimSpace(req.Gallery)
	if gallery == "" || strings.TrimSpace(req.Image) == "" {
		return nil, fmt.Errorf("%s", a.msg(r, "galeria e imagem são obrigatórias", "gallery and image are required"))
	}
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		max, err := a.Photos.MaxSortOrder(r.Context(), gallery)
		if err != nil {
			return nil, err
		}
		sortOrder = max + 1
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &domain.Photo{
		Gallery:   gallery,
		Image:     req.Image,
		Title:     req.Title,
		SortOrder: sortOrder,
		Active:    active,
	}, nil
}

func (a *App) AlbumCreate(w http.ResponseWriter, r *http.Request) {
	var req photoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	photo, err := a.newPhotoFromRequest(r, req)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if err := a.Photos.Create(r.Context(), photo); err != nil {
		a.domainError(w, r, err, "create photo failed")
		return
	}
	a.json(w, http.StatusCreated, toPhotoDTO(*photo))
}

// AlbumCreateBatch inserts several photos into one gallery, continuing the
// gallery's sort order after its current maximum.
func (a *App) AlbumCreateBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Gallery string `json:"gallery"`
		Photos  []struct {
			Image string `json:"image"`
			Title string `json:"title"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	req.Gallery = strings.TrimSpace(req.Gallery)
	if req.Gallery == "" || len(req.Photos) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "galeria e fotos são obrigatórias", "gallery and photos are required"))
		return
	}
	next, err := a.Photos.MaxSortOrder(r.Context(), req.Gallery)
	if err != nil {
		a.domainError(w, r, err, "max sort order failed")
		return
	}
	created := make([]photoDTO, 0, len(req.Photos))
	for _, item := range req.Photos {
		if strings.TrimSpace(item.Image) == "" {
			continue
		}
		next++
		photo := &domain.Photo{
			Gallery:   req.Gallery,
			Image:     item.Image,
			Title:     item.Title,
			SortOrder: next,
			Active:    true,
		}
		if err := a.Photos.Create(r.Context(), photo); err != nil {
			a.domainError(w, r, err, "create photo failed")
			return
		}
		created = append(created, toPhotoDTO(*photo))
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) AlbumReorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order []struct {
			ID        int64 `json:"id"`
			SortOrder int   `json:"sortOrder"`
		} `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	if len(req.Order) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "ordem vazia", "empty order"))
		return
	}
	orders := make([]domain.PhotoOrder, 0, len(req.Order))
	for _, item := range req.Order {
		orders = append(orders, domain.PhotoOrder{ID: item.ID, SortOrder: item.SortOrder})
	}
	if err := a.Photos.Reorder(r.Context(), orders); err != nil {
		a.domainError(w, r, err, "reorder photos failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) AlbumToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	photo, err := a.Photos.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get photo failed")
		return
	}
	if err := a.Photos.SetActive(r.Context(), id, !photo.Active); err != nil {
		a.domainError(w, r, err, "toggle photo failed")
		return
	}
	photo.Active = !photo.Active
	a.json(w, http.StatusOK, toPhotoDTO(*photo))
}

func (a *App) AlbumUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	photo, err := a.Photos.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get photo failed")
		return
	}
	var req photoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	if g := strings.TrimSpace(req.Gallery); g != "" {
		photo.Gallery = g
	}
	if req.Image != "" {
		photo.Image = req.Image
	}
	photo.Title = req.Title
	if req.SortOrder != nil {
		photo.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		photo.Active = *req.Active
	}
	if err := a.Photos.Update(r.Context(), photo); err != nil {
		a.domainError(w, r, err, "update photo failed")
		return
	}
	a.json(w, http.StatusOK, toPhotoDTO(*photo))
}

func (a *App) AlbumDelete(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	photo, err := a.Photos.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get photo failed")
		return
	}
	if err := a.Photos.Delete(r.Context(), id); err != nil {
		a.domainError(w, r, err, "delete photo failed")
		return
	}
	a.removeUploadRef(r.Context(), photo.Image)
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) AlbumUpload(w http.ResponseWriter, r *http.Request) {
	refs, err := a.saveUploads(r, "files", "album")
	if err != nil {
		a.uploadError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string][]string{"images": refs})
}

// AlbumArchive streams every stored photo of a gallery as a zip download.
func (a *App) AlbumArchive(w http.ResponseWriter, r *http.Request) {
	gallery := chi.URLParam(r, "gallery")
	photos, err := a.Photos.ListByGallery(r.Context(), gallery, nil)
	if err != nil {
		a.domainError(w, r, err, "archive gallery failed")
		return
	}
	entries := make([]zip.Entry, 0, len(photos))
	for i, p := range photos {
		if !strings.HasPrefix(p.Image, uploadURLPrefix) {
			continue
		}
		data, err := a.Files.Read(r.Context(), strings.TrimPrefix(p.Image, uploadURLPrefix))
		if err != nil {
			a.Logger.Warn().Err(err).Str("image", p.Image).Msg("skip missing archive file")
			continue
		}
		entries = append(entries, zip.Entry{
			Name: fmt.Sprintf("%03d%s", i+1, path.Ext(p.Image)),
			Data: data,
		})
	}
	if len(entries) == 0 {
		a.error(w, http.StatusNotFound, "not_found", a.msg(r, "galeria vazia", "gallery is empty"))
		return
	}
	archive, err := zip.Archive(entries)
	if err != nil {
		a.Logger.Error().Err(err).Str("gallery", gallery).Msg("build archive failed")
		a.error(w, http.StatusInternalServerError, "internal", a.msg(r, "falha ao gerar arquivo", "failed to build archive"))
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.zip"`, gallery))
	_, _ = w.Write(archive)
}
