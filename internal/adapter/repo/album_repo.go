package repo

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

// PhotoRepositoryPG implements domain.PhotoRepository using PostgreSQL.
type PhotoRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewPhotoRepository creates a new album photo repo.
func NewPhotoRepository(sql infra.SQLExecutor) *PhotoRepositoryPG {
	return &PhotoRepositoryPG{sql: sql}
}

func (r *PhotoRepositoryPG) List(ctx context.Context, active *bool) ([]domain.Photo, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListPhotos, active)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPhotos(rows.Next, rows.Scan, rows.Err)
}

func (r *PhotoRepositoryPG) ListByGallery(ctx context.Context, gallery string, active *bool) ([]domain.Photo, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListPhotosByGallery, gallery, active)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPhotos(rows.Next, rows.Scan, rows.Err)
}

func (r *PhotoRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Photo, error) {
	var p domain.Photo
	row := r.sql.QueryRow(ctx, sqlinline.QSelectPhotoByID, id)
	if err := scanPhoto(row.Scan, &p); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PhotoRepositoryPG) MaxSortOrder(ctx context.Context, gallery string) (int, error) {
	var max int
	row := r.sql.QueryRow(ctx, sqlinline.QMaxPhotoSortOrder, gallery)
	if err := row.Scan(&max); err != nil {
		return -1, err
	}
	return max, nil
}

func (r *PhotoRepositoryPG) Create(ctx context.Context, photo *domain.Photo) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertPhoto,
		photo.Gallery, photo.Image, photo.Title, photo.SortOrder, photo.Active)
	return row.Scan(&photo.ID, &photo.CreatedAt)
}

func (r *PhotoRepositoryPG) Update(ctx context.Context, photo *domain.Photo) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdatePhoto,
		photo.ID, photo.Gallery, photo.Image, photo.Title, photo.SortOrder, photo.Active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PhotoRepositoryPG) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QSetPhotoActive, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PhotoRepositoryPG) Reorder(ctx context.Context, orders []domain.PhotoOrder) error {
	for _, o := range orders {
		if _, err := r.sql.Exec(ctx, sqlinline.QSetPhotoSortOrder, o.ID, o.SortOrder); err != nil {
			return err
		}
	}
	return nil
}

func (r *PhotoRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeletePhoto, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectPhotos(next func() bool, scan func(dest ...any) error, rowsErr func() error) ([]domain.Photo, error) {
	var items []domain.Photo
	for next() {
		var p domain.Photo
		if err := scanPhoto(scan, &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rowsErr()
}

func scanPhoto(scan func(dest ...any) error, p *domain.Photo) error {
	return scan(&p.ID, &p.Gallery, &p.Image, &p.Title, &p.SortOrder, &p.Active, &p.CreatedAt)
}
