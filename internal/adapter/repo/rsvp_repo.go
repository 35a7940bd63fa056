package repo

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

// RSVPRepositoryPG implements domain.RSVPRepository using PostgreSQL.
type RSVPRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewRSVPRepository creates a new RSVP repo.
func NewRSVPRepository(sql infra.SQLExecutor) *RSVPRepositoryPG {
	return &RSVPRepositoryPG{sql: sql}
}

func (r *RSVPRepositoryPG) List(ctx context.Context) ([]domain.RSVP, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListRSVPs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RSVP
	for rows.Next() {
		var v domain.RSVP
		if err := rows.Scan(&v.ID, &v.Name, &v.Companions, &v.Email, &v.Phone,
			&v.Message, &v.Confirmed, &v.Country, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *RSVPRepositoryPG) Create(ctx context.Context, rsvp *domain.RSVP) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertRSVP,
		rsvp.Name, rsvp.Companions, rsvp.Email, rsvp.Phone, rsvp.Message,
		rsvp.Confirmed, rsvp.Country)
	return row.Scan(&rsvp.ID, &rsvp.CreatedAt)
}

func (r *RSVPRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteRSVP, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
