package repo

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

// SaleRepositoryPG implements domain.SaleRepository using PostgreSQL.
type SaleRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewSaleRepository creates a new sale repo.
func NewSaleRepository(sql infra.SQLExecutor) *SaleRepositoryPG {
	return &SaleRepositoryPG{sql: sql}
}

func (r *SaleRepositoryPG) Create(ctx context.Context, sale *domain.Sale) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertSale,
		sale.GiftID, sale.CustomerName, sale.CustomerEmail, sale.AmountCents,
		sale.PaymentMethod, sale.PaymentRef, sale.Status, sale.Notes)
	return row.Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
}

func (r *SaleRepositoryPG) List(ctx context.Context) ([]domain.SaleWithGift, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListSales)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.SaleWithGift
	for rows.Next() {
		var s domain.SaleWithGift
		if err := scanSaleWithGift(rows.Scan, &s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *SaleRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.SaleWithGift, error) {
	var s domain.SaleWithGift
	row := r.sql.QueryRow(ctx, sqlinline.QSelectSaleByID, id)
	if err := scanSaleWithGift(row.Scan, &s); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepositoryPG) UpdateStatus(ctx context.Context, id int64, status, notes string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateSaleStatus, id, status, notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepositoryPG) Summary(ctx context.Context) (*domain.SalesSummary, error) {
	var summary domain.SalesSummary

	row := r.sql.QueryRow(ctx, sqlinline.QSalesTotals)
	if err := row.Scan(&summary.TotalSales, &summary.TotalCents); err != nil {
		return nil, err
	}

	rows, err := r.sql.Query(ctx, sqlinline.QSalesByMethod)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var m domain.MethodTotal
		if err := rows.Scan(&m.PaymentMethod, &m.Count, &m.AmountCents); err != nil {
			return nil, err
		}
		summary.ByMethod = append(summary.ByMethod, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	giftRows, err := r.sql.Query(ctx, sqlinline.QSalesByGift)
	if err != nil {
		return nil, err
	}
	defer giftRows.Close()
	for giftRows.Next() {
		var g domain.GiftTotal
		if err := giftRows.Scan(&g.GiftID, &g.Name, &g.Description, &g.Count, &g.AmountCents); err != nil {
			return nil, err
		}
		summary.TopGifts = append(summary.TopGifts, g)
	}
	return &summary, giftRows.Err()
}

func scanSaleWithGift(scan func(dest ...any) error, s *domain.SaleWithGift) error {
	return scan(
		&s.ID, &s.GiftID, &s.CustomerName, &s.CustomerEmail, &s.AmountCents,
		&s.PaymentMethod, &s.PaymentRef, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		&s.Gift.ID, &s.Gift.Name, &s.Gift.Description, &s.Gift.PriceCents,
		&s.Gift.Image, &s.Gift.Stock, &s.Gift.CreatedAt, &s.Gift.UpdatedAt,
	)
}
