package repo

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

const defaultSiteTitle = "Marília & Iago"

// SiteConfigRepositoryPG implements domain.SiteConfigRepository using PostgreSQL.
// Get is self-healing: it creates the row when the table is empty and collapses
// duplicates down to the earliest id.
type SiteConfigRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewSiteConfigRepository creates a new site config repo.
func NewSiteConfigRepository(sql infra.SQLExecutor) *SiteConfigRepositoryPG {
	return &SiteConfigRepositoryPG{sql: sql}
}

func (r *SiteConfigRepositoryPG) Get(ctx context.Context) (*domain.SiteConfig, error) {
	var count int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountSiteConfig).Scan(&count); err != nil {
		return nil, err
	}

	if count == 0 {
		var id int64
		row := r.sql.QueryRow(ctx, sqlinline.QInsertDefaultSiteConfig, defaultSiteTitle)
		if err := row.Scan(&id); err != nil {
			return nil, err
		}
	}

	var cfg domain.SiteConfig
	row := r.sql.QueryRow(ctx, sqlinline.QSelectEarliestSiteConfig)
	err := row.Scan(&cfg.ID, &cfg.SiteTitle, &cfg.WeddingDate, &cfg.PixKey,
		&cfg.PixDescription, &cfg.PixQRCodeImage, &cfg.MPPublicKey, &cfg.MPAccessToken,
		&cfg.MPWebhookSecret, &cfg.NotificationURL, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if count > 1 {
		if _, err := r.sql.Exec(ctx, sqlinline.QDeleteDuplicateSiteConfig, cfg.ID); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (r *SiteConfigRepositoryPG) Update(ctx context.Context, cfg *domain.SiteConfig) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateSiteConfig,
		cfg.ID, cfg.SiteTitle, cfg.WeddingDate, cfg.PixKey, cfg.PixDescription,
		cfg.PixQRCodeImage, cfg.MPPublicKey, cfg.MPAccessToken, cfg.MPWebhookSecret,
		cfg.NotificationURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
