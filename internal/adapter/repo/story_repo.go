package repo

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

// StoryRepositoryPG implements domain.StoryRepository using PostgreSQL.
type StoryRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewStoryRepository creates a new story event repo.
func NewStoryRepository(sql infra.SQLExecutor) *StoryRepositoryPG {
	return &StoryRepositoryPG{sql: sql}
}

func (r *StoryRepositoryPG) List(ctx context.Context) ([]domain.StoryEvent, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListStoryEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.StoryEvent
	for rows.Next() {
		var e domain.StoryEvent
		if err := scanStoryEvent(rows.Scan, &e); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *StoryRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.StoryEvent, error) {
	var e domain.StoryEvent
	row := r.sql.QueryRow(ctx, sqlinline.QSelectStoryEventByID, id)
	if err := scanStoryEvent(row.Scan, &e); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *StoryRepositoryPG) Create(ctx context.Context, event *domain.StoryEvent) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertStoryEvent,
		event.EventDate, event.Title, event.Body, event.Image, event.SortOrder)
	return row.Scan(&event.ID, &event.CreatedAt)
}

func (r *StoryRepositoryPG) Update(ctx context.Context, event *domain.StoryEvent) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateStoryEvent,
		event.ID, event.EventDate, event.Title, event.Body, event.Image, event.SortOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StoryRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteStoryEvent, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanStoryEvent(scan func(dest ...any) error, e *domain.StoryEvent) error {
	return scan(&e.ID, &e.EventDate, &e.Title, &e.Body, &e.Image, &e.SortOrder, &e.CreatedAt)
}
