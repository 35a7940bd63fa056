package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"weddingapi/internal/domain"
	"weddingapi/internal/metrics"
	"weddingapi/internal/payments/mercadopago"
)

// fallbackPayerEmail keeps the gateway happy when the guest leaves theirs blank.
const fallbackPayerEmail = "cliente@exemplo.com"

// Gateway is the slice of the payment provider the lifecycle needs.
type Gateway interface {
	CreatePreference(ctx context.Context, req mercadopago.PreferenceRequest) (*mercadopago.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, error)
}

// PurchaseIntent is the result of a created checkout session.
type PurchaseIntent struct {
	OrderID            int64
	PreferenceID       string
	CheckoutURL        string
	SandboxCheckoutURL string
}

// Service drives a purchase from intent to settlement: order creation, webhook
// reconciliation, stock decrement and sale recording.
type Service struct {
	gifts   domain.GiftRepository
	orders  domain.OrderRepository
	sales   domain.SaleRepository
	config  domain.SiteConfigRepository
	gateway Gateway

	publicBaseURL string
	webhookSecret string
	logger        zerolog.Logger
	metrics       *metrics.OrderMetrics
}

// Options holds the dependencies for NewService.
type Options struct {
	Gifts         domain.GiftRepository
	Orders        domain.OrderRepository
	Sales         domain.SaleRepository
	Config        domain.SiteConfigRepository
	Gateway       Gateway
	PublicBaseURL string
	WebhookSecret string
	Logger        zerolog.Logger
	Metrics       *metrics.OrderMetrics
}

// NewService wires the lifecycle manager.
func NewService(opts Options) *Service {
	return &Service{
		gifts:         opts.Gifts,
		orders:        opts.Orders,
		sales:         opts.Sales,
		config:        opts.Config,
		gateway:       opts.Gateway,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		webhookSecret: opts.WebhookSecret,
		logger:        opts.Logger,
		metrics:       opts.Metrics,
	}
}

// CreatePurchaseIntent creates a pending order and a gateway checkout session
// for it. If the gateway call fails after the order row exists, the order stays
// pending without a payment ref; there is no automatic retry or expiry for
// these orphans yet.
func (s *Service) CreatePurchaseIntent(ctx context.Context, giftID int64, customerName, customerEmail string) (*PurchaseIntent, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}

	gift, err := s.gifts.GetByID(ctx, giftID)
	if err != nil {
		return nil, err
	}
	if gift.Stock <= 0 {
		return nil, fmt.Errorf("%w: gift %d is out of stock", domain.ErrUnavailable, giftID)
	}

	siteTitle := "Casamento"
	if cfg, err := s.config.Get(ctx); err == nil && cfg.SiteTitle != "" {
		siteTitle = cfg.SiteTitle
	}

	order := &domain.Order{
		GiftID:        gift.ID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Status:        domain.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	description := gift.Description
	if description == "" {
		description = "Presente para " + siteTitle
	}
	payerEmail := customerEmail
	if payerEmail == "" {
		payerEmail = fallbackPayerEmail
	}
	returnURL := fmt.Sprintf("%s/presentes/confirmacao?order_id=%d", s.publicBaseURL, order.ID)

	pref, err := s.gateway.CreatePreference(ctx, mercadopago.PreferenceRequest{
		Items: []mercadopago.Item{{
			ID:          fmt.Sprintf("gift-%d", gift.ID),
			Title:       gift.Name,
			Description: description,
			Quantity:    1,
			CurrencyID:  "BRL",
			UnitPrice:   gift.PriceUnits(),
		}},
		Payer:               mercadopago.Payer{Name: customerName, Email: payerEmail},
		ExternalReference:   ExternalRef(order.ID),
		BackURLs:            mercadopago.BackURLs{Success: returnURL, Failure: returnURL, Pending: returnURL},
		AutoReturn:          "approved",
		StatementDescriptor: siteTitle,
	})
	if err != nil {
		s.metrics.GatewayError()
		s.logger.Error().Err(err).Int64("order_id", order.ID).
			Msg("preference creation failed, order left pending without payment ref")
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayFailure, err)
	}

	if err := s.orders.SetPaymentRef(ctx, order.ID, pref.ID); err != nil {
		return nil, err
	}

	s.metrics.OrderCreated()
	s.logger.Info().Int64("order_id", order.ID).Str("preference_id", pref.ID).Msg("purchase intent created")

	return &PurchaseIntent{
		OrderID:            order.ID,
		PreferenceID:       pref.ID,
		CheckoutURL:        pref.InitPoint,
		SandboxCheckoutURL: pref.SandboxInitPoint,
	}, nil
}

// notification is the webhook body shape. The data id may arrive as a string
// or a number depending on the sender.
type notification struct {
	Type string `json:"type"`
	Data struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// ReconcilePayment handles an inbound gateway notification. The raw body is
// verified against the pre-shared secret before anything else; unsigned or
// mismatched requests leave no trace beyond the rejection. The notification is
// only a hint: payment status is always re-fetched from the gateway.
func (s *Service) ReconcilePayment(ctx context.Context, rawBody []byte, signature string) error {
	if !VerifySignature(s.webhookSecret, rawBody, signature) {
		s.metrics.WebhookReceived("unauthorized")
		return fmt.Errorf("%w: webhook signature mismatch", domain.ErrUnauthorized)
	}

	var note notification
	if err := json.Unmarshal(rawBody, &note); err != nil {
		s.metrics.WebhookReceived("malformed")
		return fmt.Errorf("%w: malformed notification body", domain.ErrValidation)
	}

	if note.Type != "payment" {
		s.metrics.WebhookReceived("ignored")
		s.logger.Debug().Str("type", note.Type).Msg("ignoring non-payment notification")
		return nil
	}

	payment, err := s.gateway.GetPayment(ctx, note.Data.ID.String())
	if err != nil {
		s.metrics.GatewayError()
		return fmt.Errorf("%w: %v", domain.ErrGatewayFailure, err)
	}

	orderID, err := ParseExternalRef(payment.ExternalReference)
	if err != nil {
		s.metrics.WebhookReceived("malformed")
		return err
	}

	if payment.Status != "approved" {
		// Pass the gateway status through unchanged.
		if err := s.orders.UpdateStatus(ctx, orderID, payment.Status); err != nil {
			return err
		}
		s.metrics.WebhookReceived("status_update")
		s.logger.Info().Int64("order_id", orderID).Str("status", payment.Status).Msg("order status updated")
		return nil
	}

	first, err := s.orders.MarkPaid(ctx, orderID)
	if err != nil {
		return err
	}
	if !first {
		// Duplicate or replayed delivery for an already settled order.
		s.metrics.WebhookReceived("replay")
		s.logger.Info().Int64("order_id", orderID).Msg("order already settled, ignoring duplicate notification")
		return nil
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.gifts.DecrementStock(ctx, order.GiftID); err != nil {
		return err
	}
	sale := &domain.Sale{
		GiftID:        order.GiftID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		AmountCents:   order.Gift.PriceCents,
		PaymentMethod: "mercadopago",
		PaymentRef:    payment.ID.String(),
		Status:        domain.OrderStatusPaid,
		Notes:         fmt.Sprintf("Pagamento aprovado via Mercado Pago. Pedido %d", orderID),
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return err
	}

	s.metrics.WebhookReceived("settled")
	s.metrics.Settled()
	s.logger.Info().Int64("order_id", orderID).Int64("sale_id", sale.ID).Msg("order settled")
	return nil
}

// OrderStatus returns an order together with its gift snapshot.
func (s *Service) OrderStatus(ctx context.Context, orderID int64) (*domain.OrderWithGift, error) {
	return s.orders.GetByID(ctx, orderID)
}
