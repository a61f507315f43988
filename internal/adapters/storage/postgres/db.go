package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Códigos SQLSTATE que traducimos a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeStringTooLong       = "22001"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		owner_name    VARCHAR(120) NOT NULL,
		email         VARCHAR(120) NOT NULL UNIQUE,
		password_hash TEXT         NOT NULL,
		is_active     BOOLEAN      NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS recetas (
		id          BIGSERIAL PRIMARY KEY,
		pet_name    VARCHAR(120)     NOT NULL,
		pet_weight  DOUBLE PRECISION NOT NULL,
		pet_color   VARCHAR(120)     NOT NULL,
		species     VARCHAR(120)     NOT NULL,
		sex         VARCHAR(20)      NOT NULL,
		vet_name    VARCHAR(120)     NOT NULL,
		visit_date  DATE             NOT NULL DEFAULT CURRENT_DATE,
		diagnosis   TEXT             NOT NULL,
		treatment   TEXT             NOT NULL,
		owner_id    BIGINT           NULL REFERENCES users(id)
	)`,
	`CREATE INDEX IF NOT EXISTS recetas_owner_id_idx ON recetas (owner_id)`,
	`CREATE INDEX IF NOT EXISTS recetas_visit_date_idx ON recetas (visit_date)`,
}

// Migrate crea el schema si no existe. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres migrate: %w", err)
		}
	}
	return nil
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// likePattern arma un "contains" para ILIKE escapando comodines del usuario.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
