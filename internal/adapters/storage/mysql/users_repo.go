package mysql

import (
	"context"
	"database/sql"
	"errors"

	"vet-recetas/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u *users.User) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (owner_name, email, password_hash, is_active, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.OwnerName, u.Email, u.PasswordHash, u.IsActive, u.CreatedAt.UTC(),
	)
	if err != nil {
		switch errNumber(err) {
		case errDuplicateEntry:
			return users.ErrEmailTaken
		case errDataTooLong:
			return users.ErrFieldTooLong
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, owner_name, email, password_hash, is_active, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, owner_name, email, password_hash, is_active, created_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	err := row.Scan(&u.ID, &u.OwnerName, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}
