package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vet-recetas/internal/middleware"
	"vet-recetas/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta signup/login/perfil. limiter se aplica solo a signup y login;
// puede ser nil.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, limiter func(http.Handler) http.Handler) {
	r.Group(func(ar chi.Router) {
		if limiter != nil {
			ar.Use(limiter)
		}
		ar.Post("/signup", signupHandler(svc, log))
		ar.Post("/login", loginHandler(svc, log))
	})

	r.Get("/profile/{userID}", profileHandler(svc, log))
	r.Get("/me", meHandler(svc, log))
}

type signupRequest struct {
	OwnerName string `json:"owner_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse nunca incluye el password.
type userResponse struct {
	ID        int64  `json:"id"`
	OwnerName string `json:"owner_name"`
	Email     string `json:"email"`
}

type createdUserResponse struct {
	userResponse
	Active bool `json:"active"`
}

type signupResponse struct {
	Msg  string              `json:"msg"`
	User createdUserResponse `json:"user"`
}

type loginResponse struct {
	Msg         string       `json:"msg"`
	User        userResponse `json:"user"`
	AccessToken string       `json:"access_token,omitempty"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

// signupHandler godoc
// @Summary Registrar dueño
// @Description Crea un usuario activo. El email es único; el password se guarda hasheado (argon2id).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body signupRequest true "owner_name, email y password son obligatorios"
// @Success 201 {object} signupResponse
// @Failure 400 {object} msgResponse "Faltan datos / Datos inválidos / El usuario ya existe"
// @Failure 429 {object} msgResponse "Demasiadas solicitudes"
// @Failure 500 {object} msgResponse "Error interno"
// @Router /signup [post]
func signupHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "JSON inválido"})
			return
		}

		u, err := svc.Signup(r.Context(), SignupInput{
			OwnerName: req.OwnerName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrFieldTooLong):
				writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "Datos inválidos: owner_name y email admiten hasta 120 caracteres"})
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "Faltan datos"})
			case errors.Is(err, ErrEmailTaken):
				writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "El usuario ya existe"})
			default:
				internalError(w, r, log, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, signupResponse{
			Msg: "Usuario creado correctamente",
			User: createdUserResponse{
				userResponse: toUserResponse(u),
				Active:       u.IsActive,
			},
		})
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Verifica email + password y devuelve el usuario y un access token (JWT HS256).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {object} msgResponse "Faltan datos"
// @Failure 401 {object} msgResponse "Credenciales inválidas"
// @Failure 429 {object} msgResponse "Demasiadas solicitudes"
// @Router /login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "JSON inválido"})
			return
		}

		sess, err := svc.Login(r.Context(), LoginInput{Email: req.Email, Password: req.Password})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, msgResponse{Msg: "Faltan datos"})
			case errors.Is(err, ErrInvalidCredentials):
				writeJSON(w, http.StatusUnauthorized, msgResponse{Msg: "Credenciales inválidas"})
			default:
				internalError(w, r, log, err)
			}
			return
		}

		resp := loginResponse{
			Msg:         "Login exitoso",
			User:        toUserResponse(sess.User),
			AccessToken: sess.AccessToken,
		}
		if !sess.ExpiresAt.IsZero() {
			exp := sess.ExpiresAt.UTC()
			resp.ExpiresAt = &exp
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// profileHandler godoc
// @Summary Perfil de usuario
// @Tags users
// @Produce json
// @Param userID path int true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 404 {object} msgResponse "Usuario no encontrado"
// @Router /profile/{userID} [get]
func profileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, msgResponse{Msg: "Usuario no encontrado"})
			return
		}

		writeUser(w, r, svc, log, id)
	}
}

// meHandler godoc
// @Summary Usuario autenticado
// @Description Devuelve el usuario dueño del token enviado en el header Authorization (Bearer).
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer token obtenido en /login"
// @Success 200 {object} userResponse
// @Failure 401 {object} msgResponse "No autorizado"
// @Failure 404 {object} msgResponse "Usuario no encontrado"
// @Router /me [get]
func meHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.UserID <= 0 {
			writeJSON(w, http.StatusUnauthorized, msgResponse{Msg: "No autorizado"})
			return
		}

		writeUser(w, r, svc, log, claims.UserID)
	}
}

func writeUser(w http.ResponseWriter, r *http.Request, svc *Service, log logger.Logger, id int64) {
	u, err := svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, msgResponse{Msg: "Usuario no encontrado"})
			return
		}
		internalError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		OwnerName: u.OwnerName,
		Email:     u.Email,
	}
}

func internalError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	middleware.LoggerFrom(r.Context(), log).Error("users: request failed", map[string]any{
		"err": err.Error(),
	})
	writeJSON(w, http.StatusInternalServerError, msgResponse{Msg: "Error interno"})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
