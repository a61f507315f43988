package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	driver "github.com/go-sql-driver/mysql"
)

// Números de error de MySQL que traducimos a errores de dominio.
const (
	errDuplicateEntry  = 1062
	errNoReferencedRow = 1452
	errDataTooLong     = 1406
)

// Open abre el pool MySQL. parseTime=true es obligatorio para escanear DATE/DATETIME
// a time.Time, así que lo forzamos sobre el DSN recibido.
func Open(dsn string) (*sql.DB, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql: parse dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	connector, err := driver.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

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
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		owner_name    VARCHAR(120) NOT NULL,
		email         VARCHAR(120) NOT NULL,
		password_hash TEXT         NOT NULL,
		is_active     BOOLEAN      NOT NULL DEFAULT TRUE,
		created_at    DATETIME(6)  NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		UNIQUE KEY users_email_uq (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS recetas (
		id          BIGINT AUTO_INCREMENT PRIMARY KEY,
		pet_name    VARCHAR(120) NOT NULL,
		pet_weight  DOUBLE       NOT NULL,
		pet_color   VARCHAR(120) NOT NULL,
		species     VARCHAR(120) NOT NULL,
		sex         VARCHAR(20)  NOT NULL,
		vet_name    VARCHAR(120) NOT NULL,
		visit_date  DATE         NOT NULL,
		diagnosis   TEXT         NOT NULL,
		treatment   TEXT         NOT NULL,
		owner_id    BIGINT       NULL,
		KEY recetas_visit_date_idx (visit_date),
		CONSTRAINT recetas_owner_fk FOREIGN KEY (owner_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate crea el schema si no existe. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("mysql migrate: %w", err)
		}
	}
	return nil
}

func errNumber(err error) uint16 {
	var myErr *driver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}
	return 0
}

// likePattern arma un "contains" escapando comodines; el ESCAPE por defecto es '\'.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(s)) + "%"
}
