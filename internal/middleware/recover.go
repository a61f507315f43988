package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"vet-recetas/internal/platform/logger"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con nuestro logger
// y responde JSON como el resto de la API.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				LoggerFrom(r.Context(), log).Error("panic recovered", map[string]any{
					"panic": fmt.Sprint(rec),
					"stack": string(debug.Stack()),
				})
				writeJSONMsg(w, http.StatusInternalServerError, "Error interno")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
