package postgres

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
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (owner_name, email, password_hash, is_active, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		u.OwnerName,
		u.Email,
		u.PasswordHash,
		u.IsActive,
		u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return users.ErrEmailTaken
		case codeStringTooLong:
			return users.ErrFieldTooLong
		}
		return err
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_name, email, password_hash, is_active, created_at
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_name, email, password_hash, is_active, created_at
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	if err := row.Scan(
		&u.ID,
		&u.OwnerName,
		&u.Email,
		&u.PasswordHash,
		&u.IsActive,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}
