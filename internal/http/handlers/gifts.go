package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"time"

	"weddingapi/internal/domain"
)

type giftDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

type giftRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

type giftUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
}

func toGiftDTO(g domain.Gift) giftDTO {
	return giftDTO{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Price:       g.PriceUnits(),
		Image:       g.Image,
		Stock:       g.Stock,
		CreatedAt:   g.CreatedAt,
	}
}

// priceToCents converts a decimal price to minor units.
func priceToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (a *App) GiftsList(w http.ResponseWriter, r *http.Request) {
	gifts, err := a.Gifts.List(r.Context())
	if err != nil {
		a.domainError(w, r, err, "list gifts failed")
		return
	}
	items := make([]giftDTO, 0, len(gifts))
	for _, g := range gifts {
		items = append(items, toGiftDTO(g))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) GiftsGet(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	gift, err := a.Gifts.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get gift failed")
		return
	}
	a.json(w, http.StatusOK, toGiftDTO(*gift))
}

func (a *App) GiftsCreate(w http.ResponseWriter, r *http.Request) {
	var req giftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Price <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "nome e preço são obrigatórios", "name and a positive price are required"))
		return
	}
	if req.Stock < 0 {
		req.Stock = 0
	}
	gift := &domain.Gift{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  priceToCents(req.Price),
		Image:       req.Image,
		Stock:       req.Stock,
	}
	if err := a.Gifts.Create(r.Context(), gift); err != nil {
		a.domainError(w, r, err, "create gift failed")
		return
	}
	a.json(w, http.StatusCreated, toGiftDTO(*gift))
}

func (a *App) GiftsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	gift, err := a.Gifts.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get gift failed")
		return
	}
	var req giftUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			gift.Name = name
		}
	}
	if req.Description != nil {
		gift.Description = *req.Description
	}
	if req.Price != nil && *req.Price > 0 {
		gift.PriceCents = priceToCents(*req.Price)
	}
	if req.Image != nil && *req.Image != "" {
		gift.Image = *req.Image
	}
	if req.Stock != nil && *req.Stock >= 0 {
		gift.Stock = *req.Stock
	}
	if err := a.Gifts.Update(r.Context(), gift); err != nil {
		a.domainError(w, r, err, "update gift failed")
		return
	}
	a.json(w, http.StatusOK, toGiftDTO(*gift))
}

func (a *App) GiftsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	gift, err := a.Gifts.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get gift failed")
		return
	}
	if err := a.Gifts.Delete(r.Context(), id); err != nil {
		a.domainError(w, r, err, "delete gift failed")
		return
	}
	a.removeUploadRef(r.Context(), gift.Image)
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) GiftsUpload(w http.ResponseWriter, r *http.Request) {
	ref, err := a.saveUpload(r, "file", "gifts")
	if err != nil {
		a.uploadError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"image": ref})
}
