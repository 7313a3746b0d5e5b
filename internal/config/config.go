package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds every process-wide setting. Loaded once at startup and passed
// into constructors; nothing reads the environment after Load returns.
type Config struct {
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret    string
	JWTAlgorithm string

	AccessTokenTTLMinutes int
	RefreshTokenTTLDays   int

	GoEnv string // dev/test/prod
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8001"),

		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "kenneltrack"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTAlgorithm: getenv("JWT_ALGORITHM", "HS256"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	pgPort, err := atoiEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	accessTTL, err := atoiEnv("ACCESS_TOKEN_EXPIRE_MINUTES", 60)
	if err != nil {
		return Config{}, err
	}
	cfg.AccessTokenTTLMinutes = accessTTL

	refreshTTL, err := atoiEnv("REFRESH_TOKEN_EXPIRE_DAYS", 7)
	if err != nil {
		return Config{}, err
	}
	cfg.RefreshTokenTTLDays = refreshTTL

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AccessTokenTTLMinutes <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if cfg.RefreshTokenTTLDays <= 0 {
		return Config{}, fmt.Errorf("REFRESH_TOKEN_EXPIRE_DAYS must be positive")
	}

	return cfg, nil
}

// IsDev reports whether the process runs against the dev environment.
// Cookies drop the Secure flag only in dev.
func (c Config) IsDev() bool {
	return c.GoEnv == "dev"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
