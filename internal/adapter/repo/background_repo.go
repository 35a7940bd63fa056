package repo

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

// BackgroundRepositoryPG implements domain.BackgroundRepository using PostgreSQL.
type BackgroundRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewBackgroundRepository creates a new background image repo.
func NewBackgroundRepository(sql infra.SQLExecutor) *BackgroundRepositoryPG {
	return &BackgroundRepositoryPG{sql: sql}
}

func (r *BackgroundRepositoryPG) List(ctx context.Context, activeOnly bool) ([]domain.BackgroundImage, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListBackgrounds, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.BackgroundImage
	for rows.Next() {
		var b domain.BackgroundImage
		if err := scanBackground(rows.Scan, &b); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *BackgroundRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.BackgroundImage, error) {
	var b domain.BackgroundImage
	row := r.sql.QueryRow(ctx, sqlinline.QSelectBackgroundByID, id)
	if err := scanBackground(row.Scan, &b); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BackgroundRepositoryPG) Create(ctx context.Context, image *domain.BackgroundImage) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertBackground,
		image.Image, image.Title, image.SortOrder, image.Active)
	return row.Scan(&image.ID, &image.CreatedAt)
}

func (r *BackgroundRepositoryPG) Update(ctx context.Context, image *domain.BackgroundImage) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateBackground,
		image.ID, image.Image, image.Title, image.SortOrder, image.Active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BackgroundRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteBackground, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBackground(scan func(dest ...any) error, b *domain.BackgroundImage) error {
	return scan(&b.ID, &b.Image, &b.Title, &b.SortOrder, &b.Active, &b.CreatedAt)
}
