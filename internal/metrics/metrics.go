package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics counts purchase-intent and webhook activity.
type OrderMetrics struct {
	OrdersCreatedTotal    prometheus.Counter
	WebhooksReceivedTotal *prometheus.CounterVec
	SettlementsTotal      prometheus.Counter
	GatewayErrorsTotal    prometheus.Counter
}

// NewOrderMetrics registers the metrics on the default registry. Call once at
// startup.
func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Purchase intents created.",
		}),
		WebhooksReceivedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_webhooks_received_total",
			Help: "Webhook notifications received, by outcome.",
		}, []string{"outcome"}),
		SettlementsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "order_settlements_total",
			Help: "Orders settled (first transition to paid).",
		}),
		GatewayErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gateway_errors_total",
			Help: "Failed calls to the payment gateway.",
		}),
	}
}

// OrderCreated increments the intent counter. Nil-safe.
func (m *OrderMetrics) OrderCreated() {
	if m != nil {
		m.OrdersCreatedTotal.Inc()
	}
}

// WebhookReceived records a webhook outcome label. Nil-safe.
func (m *OrderMetrics) WebhookReceived(outcome string) {
	if m != nil {
		m.WebhooksReceivedTotal.WithLabelValues(outcome).Inc()
	}
}

// Settled increments the settlement counter. Nil-safe.
func (m *OrderMetrics) Settled() {
	if m != nil {
		m.SettlementsTotal.Inc()
	}
}

// GatewayError increments the gateway failure counter. Nil-safe.
func (m *OrderMetrics) GatewayError() {
	if m != nil {
		m.GatewayErrorsTotal.Inc()
	}
}
