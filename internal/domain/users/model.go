package users

import "time"

// Largos máximos (iguales a los VARCHAR del schema).
const (
	MaxOwnerNameLen = 120
	MaxEmailLen     = 120
)

// User es el dueño de mascotas que tiene recetas a su nombre.
type User struct {
	ID        int64
	OwnerName string
	Email     string

	// PasswordHash guarda el hash argon2id en formato PHC, nunca el texto plano.
	PasswordHash string

	IsActive  bool
	CreatedAt time.Time
}
