package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"weddingapi/internal/domain"
	"weddingapi/internal/orders"
	"weddingapi/internal/payments/mercadopago"
)

const testWebhookSecret = "webhook-secret"

func newOrdersTestApp(t *testing.T) (*App, *fakeGifts, *fakeOrders, *fakeSales, *fakeGateway) {
	t.Helper()
	gifts := newFakeGifts()
	orderRepo := newFakeOrders(gifts)
	sales := &fakeSales{gifts: gifts}
	config := &fakeConfig{cfg: domain.SiteConfig{SiteTitle: "Nosso Casamento"}}
	gateway := &fakeGateway{payments: map[string]*mercadopago.Payment{}}

	service := orders.NewService(orders.Options{
		Gifts:         gifts,
		Orders:        orderRepo,
		Sales:         sales,
		Config:        config,
		Gateway:       gateway,
		PublicBaseURL: "https://casamento.example",
		WebhookSecret: testWebhookSecret,
		Logger:        zerolog.Nop(),
	})
	app := &App{
		Gifts:  gifts,
		Sales:  sales,
		Orders: service,
		Logger: zerolog.Nop(),
	}
	return app, gifts, orderRepo, sales, gateway
}

func signBody(body string) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPurchaseIntentCreate(t *testing.T) {
	app, gifts, _, _, gateway := newOrdersTestApp(t)
	gift := &domain.Gift{Name: "Jantar romântico", PriceCents: 45000, Stock: 1}
	if err := gifts.Create(context.Background(), gift); err != nil {
		t.Fatal(err)
	}

	body := `{"giftId":1,"customerName":"Ana","customerEmail":"ana@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/purchase-intents", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.PurchaseIntentCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	var resp purchaseIntentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.PreferenceID != "pref-1" || resp.OrderID != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.CheckoutURL != "https://mp/init" {
		t.Fatalf("checkout url %q", resp.CheckoutURL)
	}
	if gateway.lastReq.ExternalReference != "order-1" {
		t.Fatalf("external reference %q", gateway.lastReq.ExternalReference)
	}
	if gateway.lastReq.Items[0].UnitPrice != 450 {
		t.Fatalf("unit price %v", gateway.lastReq.Items[0].UnitPrice)
	}
}

func TestPurchaseIntentCreateValidation(t *testing.T) {
	app, _, _, _, _ := newOrdersTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/purchase-intents", strings.NewReader(`{"giftId":1}`))
	rec := httptest.NewRecorder()
	app.PurchaseIntentCreate(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestPurchaseIntentCreateUnknownGift(t *testing.T) {
	app, _, _, _, _ := newOrdersTestApp(t)

	body := `{"giftId":99,"customerName":"Ana"}`
	req := httptest.NewRequest(http.MethodPost, "/api/purchase-intents", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.PurchaseIntentCreate(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestPaymentWebhookRejectsBadSignature(t *testing.T) {
	app, _, orderRepo, sales, _ := newOrdersTestApp(t)

	body := `{"type":"payment","data":{"id":"555"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment-webhook", strings.NewReader(body))
	req.Header.Set("X-Signature", "deadbeef")
	rec := httptest.NewRecorder()
	app.PaymentWebhook(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", rec.Code)
	}
	if len(orderRepo.orders) != 0 || len(sales.sales) != 0 {
		t.Fatal("state touched by unsigned webhook")
	}
}

func TestPaymentWebhookSettlesApprovedPayment(t *testing.T) {
	app, gifts, _, sales, gateway := newOrdersTestApp(t)
	gift := &domain.Gift{Name: "Jantar romântico", PriceCents: 45000, Stock: 1}
	if err := gifts.Create(context.Background(), gift); err != nil {
		t.Fatal(err)
	}

	// create the order through the public endpoint
	intentBody := `{"giftId":1,"customerName":"Ana"}`
	intentReq := httptest.NewRequest(http.MethodPost, "/api/purchase-intents", strings.NewReader(intentBody))
	intentRec := httptest.NewRecorder()
	app.PurchaseIntentCreate(intentRec, intentReq)
	if intentRec.Code != http.StatusCreated {
		t.Fatalf("intent status %d", intentRec.Code)
	}

	gateway.payments["555"] = &mercadopago.Payment{ID: "555", Status: "approved", ExternalReference: "order-1"}

	body := `{"type":"payment","data":{"id":"555"}}`
	webhook := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/payment-webhook", strings.NewReader(body))
		req.Header.Set("X-Signature", signBody(body))
		rec := httptest.NewRecorder()
		app.PaymentWebhook(rec, req)
		return rec
	}

	if rec := webhook(); rec.Code != http.StatusOK {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	// replay must be acknowledged but change nothing
	if rec := webhook(); rec.Code != http.StatusOK {
		t.Fatalf("replay status %d", rec.Code)
	}

	stored, err := gifts.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Stock != 0 {
		t.Fatalf("stock %d", stored.Stock)
	}
	if len(sales.sales) != 1 {
		t.Fatalf("sales %d", len(sales.sales))
	}
}

func TestOrdersGet(t *testing.T) {
	app, gifts, _, _, _ := newOrdersTestApp(t)
	gift := &domain.Gift{Name: "Jantar romântico", PriceCents: 45000, Stock: 1}
	if err := gifts.Create(context.Background(), gift); err != nil {
		t.Fatal(err)
	}
	intentBody := `{"giftId":1,"customerName":"Ana"}`
	intentReq := httptest.NewRequest(http.MethodPost, "/api/purchase-intents", strings.NewReader(intentBody))
	intentRec := httptest.NewRecorder()
	app.PurchaseIntentCreate(intentRec, intentReq)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	app.OrdersGet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var order orderDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatal(err)
	}
	if order.Status != domain.OrderStatusPending || order.Gift.Name != "Jantar romântico" {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestOrdersGetNotFound(t *testing.T) {
	app, _, _, _, _ := newOrdersTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/42", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "42")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	app.OrdersGet(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}
