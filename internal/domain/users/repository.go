package users

import "context"

// Repository es el puerto de persistencia de usuarios.
// Create debe devolver ErrEmailTaken si el email viola la unique constraint,
// y los Get* devuelven ErrNotFound cuando no hay fila.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
