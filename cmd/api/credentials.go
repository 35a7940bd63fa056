package main

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/payments/mercadopago"
)

// gatewayCredentials reads gateway secrets from the site configuration row on
// every call, so rotated credentials take effect without a restart.
type gatewayCredentials struct {
	config domain.SiteConfigRepository
}

func (g gatewayCredentials) GatewayCredentials(ctx context.Context) (mercadopago.Credentials, error) {
	cfg, err := g.config.Get(ctx)
	if err != nil {
		return mercadopago.Credentials{}, err
	}
	return mercadopago.Credentials{
		AccessToken:     cfg.MPAccessToken,
		PublicKey:       cfg.MPPublicKey,
		NotificationURL: cfg.NotificationURL,
	}, nil
}
