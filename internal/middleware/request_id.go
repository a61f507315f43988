package middleware

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestIDFrom devuelve el id que setea chimw.RequestID (vacío si no corrió).
func RequestIDFrom(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
