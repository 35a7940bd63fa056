package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"weddingapi/internal/domain"
)

type saleDTO struct {
	ID            int64     `json:"id"`
	GiftID        int64     `json:"giftId"`
	GiftName      string    `json:"giftName"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentRef    string    `json:"paymentRef"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toSaleDTO(s domain.SaleWithGift) saleDTO {
	return saleDTO{
		ID:            s.ID,
		GiftID:        s.GiftID,
		GiftName:      s.Gift.Name,
		CustomerName:  s.CustomerName,
		CustomerEmail: s.CustomerEmail,
		Amount:        float64(s.AmountCents) / 100,
		PaymentMethod: s.PaymentMethod,
		PaymentRef:    s.PaymentRef,
		Status:        s.Status,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}

func (a *App) SalesList(w http.ResponseWriter, r *http.Request) {
	sales, err := a.Sales.List(r.Context())
	if err != nil {
		a.domainError(w, r, err, "list sales failed")
		return
	}
	items := make([]saleDTO, 0, len(sales))
	for _, s := range sales {
		items = append(items, toSaleDTO(s))
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) SalesGet(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	sale, err := a.Sales.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get sale failed")
		return
	}
	a.json(w, http.StatusOK, toSaleDTO(*sale))
}

func (a *App) SalesUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	req.Status = strings.TrimSpace(req.Status)
	if req.Status == "" {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "status é obrigatório", "status is required"))
		return
	}
	if err := a.Sales.UpdateStatus(r.Context(), id, req.Status, req.Notes); err != nil {
		a.domainError(w, r, err, "update sale status failed")
		return
	}
	sale, err := a.Sales.GetByID(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get sale failed")
		return
	}
	a.json(w, http.StatusOK, toSaleDTO(*sale))
}

func (a *App) SalesStats(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Sales.Summary(r.Context())
	if err != nil {
		a.domainError(w, r, err, "sales summary failed")
		return
	}
	byMethod := make([]map[string]any, 0, len(summary.ByMethod))
	for _, m := range summary.ByMethod {
		byMethod = append(byMethod, map[string]any{
			"paymentMethod": m.PaymentMethod,
			"count":         m.Count,
			"amount":        float64(m.AmountCents) / 100,
		})
	}
	topGifts := make([]map[string]any, 0, len(summary.TopGifts))
	for _, g := range summary.TopGifts {
		topGifts = append(topGifts, map[string]any{
			"giftId": g.GiftID,
			"name":   g.Name,
			"count":  g.Count,
			"amount": float64(g.AmountCents) / 100,
		})
	}
	a.json(w, http.StatusOK, map[string]any{
		"totalSales":  summary.TotalSales,
		"totalAmount": float64(summary.TotalCents) / 100,
		"byMethod":    byMethod,
		"topGifts":    topGifts,
	})
}
