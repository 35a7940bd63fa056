package repo

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

// ContentRepositoryPG implements domain.ContentRepository using PostgreSQL.
type ContentRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewContentRepository creates a new content repo.
func NewContentRepository(sql infra.SQLExecutor) *ContentRepositoryPG {
	return &ContentRepositoryPG{sql: sql}
}

func (r *ContentRepositoryPG) GetBySection(ctx context.Context, section string) (*domain.Content, error) {
	var c domain.Content
	row := r.sql.QueryRow(ctx, sqlinline.QSelectContentBySection, section)
	if err := row.Scan(&c.ID, &c.Section, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepositoryPG) Upsert(ctx context.Context, section, body string) (*domain.Content, error) {
	var c domain.Content
	row := r.sql.QueryRow(ctx, sqlinline.QUpsertContent, section, body)
	if err := row.Scan(&c.ID, &c.Section, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
