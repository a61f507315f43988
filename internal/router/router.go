package router

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"vet-recetas/docs"
	mem "vet-recetas/internal/adapters/storage/memory"
	my "vet-recetas/internal/adapters/storage/mysql"
	pg "vet-recetas/internal/adapters/storage/postgres"
	"vet-recetas/internal/domain/recetas"
	"vet-recetas/internal/domain/users"
	"vet-recetas/internal/middleware"
	"vet-recetas/internal/platform/logger"
	"vet-recetas/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Tokens agrupa issuer y verifier; *token.Manager implementa ambos.
type Tokens interface {
	auth.TokenIssuer
	auth.AuthVerifier
}

type Options struct {
	Logger logger.Logger // nil => Nop

	// Si viene DB se usa el driver indicado (postgres por defecto). Si no, in-memory.
	DB     *sql.DB
	Driver string

	// Repos explícitos (tests). Tienen prioridad sobre DB.
	Users   users.Repository
	Recetas recetas.Repository

	Tokens Tokens // puede ser nil: login sin token y /me siempre 401

	// RateLimitRPS <= 0 desactiva el límite en /signup y /login.
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	var (
		issuer   auth.TokenIssuer
		verifier auth.AuthVerifier
	)
	if opts.Tokens != nil {
		issuer = opts.Tokens
		verifier = opts.Tokens
	}
	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/hello", helloHandler)
	r.Post("/hello", helloHandler)

	docs.SwaggerInfo.BasePath = "/"
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	userRepo, recetaRepo := repositories(opts, log)

	// Services por módulo
	usersSvc := users.NewService(userRepo, issuer)
	recetasSvc := recetas.NewService(recetaRepo, usersSvc)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, log, middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	recetas.RegisterRoutes(r, recetasSvc, log)

	return r
}

func repositories(opts Options, log logger.Logger) (users.Repository, recetas.Repository) {
	userRepo, recetaRepo := opts.Users, opts.Recetas

	if userRepo == nil || recetaRepo == nil {
		switch {
		case opts.DB == nil:
			log.Warn("router: sin DB, usando storage in-memory", nil)
			if userRepo == nil {
				userRepo = mem.NewUsersRepo()
			}
			if recetaRepo == nil {
				recetaRepo = mem.NewRecetasRepo()
			}
		case opts.Driver == DriverMySQL:
			if userRepo == nil {
				userRepo = my.NewUsersRepo(opts.DB)
			}
			if recetaRepo == nil {
				recetaRepo = my.NewRecetasRepo(opts.DB)
			}
		default:
			if userRepo == nil {
				userRepo = pg.NewUsersRepo(opts.DB)
			}
			if recetaRepo == nil {
				recetaRepo = pg.NewRecetasRepo(opts.DB)
			}
		}
	}
	return userRepo, recetaRepo
}

type helloResponse struct {
	Message string `json:"message"`
}

// helloHandler godoc
// @Summary Saludo
// @Description Chequeo simple de que la API responde. Acepta GET y POST.
// @Tags health
// @Produce json
// @Success 200 {object} helloResponse
// @Router /hello [get]
// @Router /hello [post]
func helloHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(helloResponse{Message: "Hola! La API de recetas veterinarias está funcionando"})
}
