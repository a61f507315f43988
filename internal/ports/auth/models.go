package auth

import "time"

// Claims representa la información extraída del token.
type Claims struct {
	UserID    int64
	Email     string
	TokenID   string
	ExpiresAt time.Time
}
