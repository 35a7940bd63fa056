package domain

import "time"

// SiteConfig holds the single editable configuration row: site identity, PIX
// details and Mercado Pago credentials. Exactly one logical row exists; the
// repository enforces the invariant.
type SiteConfig struct {
	ID              int64
	SiteTitle       string
	WeddingDate     string
	PixKey          string
	PixDescription  string
	PixQRCodeImage  string
	MPPublicKey     string
	MPAccessToken   string
	MPWebhookSecret string
	NotificationURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Redacted returns a copy safe for unauthenticated responses.
func (c SiteConfig) Redacted() SiteConfig {
	c.MPAccessToken = ""
	c.MPWebhookSecret = ""
	return c
}
