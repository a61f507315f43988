package auth

import (
	"context"
	"time"
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token de acceso para un usuario ya autenticado.
type TokenIssuer interface {
	Issue(userID int64, email string) (token string, expiresAt time.Time, err error)
}
