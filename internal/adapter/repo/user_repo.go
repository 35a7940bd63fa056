package repo

import (
	"context"

	"weddingapi/internal/domain"
	"weddingapi/internal/infra"
	"weddingapi/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository using PostgreSQL.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new user repo.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	row := r.sql.QueryRow(ctx, sqlinline.QSelectUserByEmail, email)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertUser, user.Name, user.Email, user.PasswordHash)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		// on conflict do nothing returns no row for an existing email
		if infra.IsNoRows(err) {
			return nil
		}
		return err
	}
	return nil
}
