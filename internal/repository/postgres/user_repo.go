package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRow struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*UserRow, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id::text, name, email, password
		FROM users
		WHERE email = $1
		LIMIT 1
	`, email)

	var u UserRow
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
		return nil, err
	}
	return &u, nil
}
