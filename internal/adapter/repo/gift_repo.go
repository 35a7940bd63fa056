package repo

import (
	"context"
	"fmt"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

// GiftRepositoryPG implements domain.GiftRepository using PostgreSQL.
type GiftRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewGiftRepository creates a new gift repo.
func NewGiftRepository(sql infra.SQLExecutor) *GiftRepositoryPG {
	return &GiftRepositoryPG{sql: sql}
}

func (r *GiftRepositoryPG) List(ctx context.Context) ([]domain.Gift, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListGifts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Gift
	for rows.Next() {
		var g domain.Gift
		if err := scanGift(rows.Scan, &g); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *GiftRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Gift, error) {
	var g domain.Gift
	row := r.sql.QueryRow(ctx, sqlinline.QSelectGiftByID, id)
	if err := scanGift(row.Scan, &g); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *GiftRepositoryPG) Create(ctx context.Context, gift *domain.Gift) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertGift,
		gift.Name, gift.Description, gift.PriceCents, gift.Image, gift.Stock)
	return row.Scan(&gift.ID, &gift.CreatedAt, &gift.UpdatedAt)
}

func (r *GiftRepositoryPG) Update(ctx context.Context, gift *domain.Gift) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateGift,
		gift.ID, gift.Name, gift.Description, gift.PriceCents, gift.Image, gift.Stock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GiftRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteGift, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock lowers the stock by one, floored at zero in SQL so concurrent
// settlements of different orders cannot drive it negative.
func (r *GiftRepositoryPG) DecrementStock(ctx context.Context, id int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDecrementGiftStock, id)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanGift(scan func(dest ...any) error, g *domain.Gift) error {
	return scan(&g.ID, &g.Name, &g.Description, &g.PriceCents, &g.Image, &g.Stock,
		&g.CreatedAt, &g.UpdatedAt)
}
