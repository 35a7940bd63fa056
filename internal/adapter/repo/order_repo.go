package repo

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

// OrderRepositoryPG implements domain.OrderRepository using PostgreSQL.
type OrderRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewOrderRepository creates a new order repo.
func NewOrderRepository(sql infra.SQLExecutor) *OrderRepositoryPG {
	return &OrderRepositoryPG{sql: sql}
}

func (r *OrderRepositoryPG) Create(ctx context.Context, order *domain.Order) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertOrder,
		order.GiftID, order.CustomerName, order.CustomerEmail, order.Status)
	return row.Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *OrderRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.OrderWithGift, error) {
	var out domain.OrderWithGift
	row := r.sql.QueryRow(ctx, sqlinline.QSelectOrderWithGift, id)
	err := row.Scan(
		&out.ID, &out.GiftID, &out.CustomerName, &out.CustomerEmail, &out.Status,
		&out.PaymentRef, &out.CreatedAt, &out.UpdatedAt,
		&out.Gift.ID, &out.Gift.Name, &out.Gift.Description, &out.Gift.PriceCents,
		&out.Gift.Image, &out.Gift.Stock, &out.Gift.CreatedAt, &out.Gift.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *OrderRepositoryPG) SetPaymentRef(ctx context.Context, id int64, ref string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QSetOrderPaymentRef, id, ref)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepositoryPG) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateOrderStatus, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkPaid performs the conditional transition to paid. The WHERE clause makes
// the update a no-op for orders already paid, so concurrent or replayed webhook
// deliveries race on a single row update and only one caller observes true.
func (r *OrderRepositoryPG) MarkPaid(ctx context.Context, id int64) (bool, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QMarkOrderPaid, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
