package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-recetas/internal/adapters/auth/token"
	my "vet-recetas/internal/adapters/storage/mysql"
	pg "vet-recetas/internal/adapters/storage/postgres"
	"vet-recetas/internal/config"
	"vet-recetas/internal/platform/logger"
	"vet-recetas/internal/router"

	"github.com/joho/godotenv"
)

// @title Vet Recetas API
// @version 1.0
// @description Backend de recetas veterinarias: dueños (signup/login) y recetas médicas de mascotas.
// @BasePath /
func main() {
	envErr := godotenv.Load()

	log := logger.NewFromEnv()
	if envErr != nil {
		log.Warn("no .env file found, using environment variables", nil)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid config", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	db, err := openDB(cfg)
	if err != nil {
		log.Error("database init failed", map[string]any{"driver": cfg.DBDriver, "err": err.Error()})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Error("token manager init failed", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{
		Logger:         log,
		DB:             db,
		Driver:         cfg.DBDriver,
		Tokens:         tokens,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", map[string]any{"port": cfg.Port, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced shutdown", map[string]any{"err": err.Error()})
		return
	}

	log.Info("server stopped", nil)
}

// openDB devuelve nil sin DSN: el router cae a storage in-memory.
func openDB(cfg config.Config) (*sql.DB, error) {
	if cfg.DBDSN == "" {
		return nil, nil
	}

	var (
		open    func(string) (*sql.DB, error)
		migrate func(context.Context, *sql.DB) error
	)
	switch cfg.DBDriver {
	case router.DriverPostgres:
		open, migrate = pg.Open, pg.Migrate
	case router.DriverMySQL:
		open, migrate = my.Open, my.Migrate
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := open(cfg.DBDSN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
