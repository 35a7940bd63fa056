package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"weddingapi/internal/domain"
)

// webhookBodyLimit bounds raw notification bodies read for signature checks.
const webhookBodyLimit = 1 << 20

type purchaseIntentRequest struct {
	GiftID        int64  `json:"giftId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

type purchaseIntentResponse struct {
	PreferenceID       string `json:"preferenceId"`
	CheckoutURL        string `json:"checkoutUrl"`
	SandboxCheckoutURL string `json:"sandboxCheckoutUrl"`
	OrderID            int64  `json:"orderId"`
}

type orderDTO struct {
	ID            int64     `json:"id"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	PaymentRef    *string   `json:"paymentRef"`
	CreatedAt     time.Time `json:"createdAt"`
	Gift          giftDTO   `json:"gift"`
}

func toOrderDTO(o domain.OrderWithGift) orderDTO {
	return orderDTO{
		ID:            o.ID,
		Status:        o.Status,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		PaymentRef:    o.PaymentRef,
		CreatedAt:     o.CreatedAt,
		Gift:          toGiftDTO(o.Gift),
	}
}

func (a *App) PurchaseIntentCreate(w http.ResponseWriter, r *http.Request) {
	var req purchaseIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "payload inválido", "invalid payload"))
		return
	}
	intent, err := a.Orders.CreatePurchaseIntent(r.Context(), req.GiftID, req.CustomerName, req.CustomerEmail)
	if err != nil {
		a.domainError(w, r, err, "create purchase intent failed")
		return
	}
	a.json(w, http.StatusCreated, purchaseIntentResponse{
		PreferenceID:       intent.PreferenceID,
		CheckoutURL:        intent.CheckoutURL,
		SandboxCheckoutURL: intent.SandboxCheckoutURL,
		OrderID:            intent.OrderID,
	})
}

// PaymentWebhook consumes the raw body before any JSON parsing so the HMAC
// signature is verified over exactly the bytes the gateway sent.
func (a *App) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	rawBody, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unreadable body")
		return
	}
	signature := r.Header.Get("X-Signature")
	if err := a.Orders.ReconcilePayment(r.Context(), rawBody, signature); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			a.error(w, http.StatusUnauthorized, "unauthorized", "invalid signature")
		case errors.Is(err, domain.ErrValidation):
			a.error(w, http.StatusBadRequest, "bad_request", "malformed notification")
		default:
			a.Logger.Error().Err(err).Msg("webhook reconciliation failed")
			a.error(w, http.StatusInternalServerError, "internal", "reconciliation failed")
		}
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) OrdersGet(w http.ResponseWriter, r *http.Request) {
	id, err := a.idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", a.msg(r, "id inválido", "invalid id"))
		return
	}
	order, err := a.Orders.OrderStatus(r.Context(), id)
	if err != nil {
		a.domainError(w, r, err, "get order failed")
		return
	}
	a.json(w, http.StatusOK, toOrderDTO(*order))
}
