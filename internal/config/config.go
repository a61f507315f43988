package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

var ErrInsecureSecret = errors.New("JWT_SECRET must be set in production")

type Config struct {
	Port string
	Env  string

	// DBDriver: postgres | mysql. Sin DBDSN se usa storage in-memory.
	DBDriver string
	DBDSN    string

	JWTSecret string
	JWTTTL    time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load lee la configuración del entorno. Valores mal formados caen al default.
// LOG_LEVEL, LOG_FORMAT y APP_NAME los lee logger.NewFromEnv.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBDSN:          os.Getenv("DB_DSN"),
		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		JWTTTL:         getDuration("JWT_TTL", 24*time.Hour),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.IsProduction() && cfg.JWTSecret == devJWTSecret {
		return cfg, ErrInsecureSecret
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}
