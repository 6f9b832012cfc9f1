package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port          string `validate:"required,numeric"`
	IsProduction  bool
	LogLevel      string `validate:"oneof=debug info warn error"`
	AppVersion    string
	EnableDBCheck bool

	StorageBackend string `validate:"oneof=postgres sqlite"`
	DatabaseURL    string `validate:"required_if=StorageBackend postgres"`
	SQLitePath     string `validate:"required_if=StorageBackend sqlite"`
	MigrationsPath string `validate:"required_if=StorageBackend postgres"`

	CurrencyAPIKey     string        `validate:"required"`
	CurrencyAPIBaseURL string        `validate:"required,url"`
	CurrencyAPITimeout time.Duration `validate:"gt=0"`

	CORSAllowedOrigins []string `validate:"min=1"`
	RateLimit          string   // ulule format, e.g. "100-M". Empty disables limiting.
	JWTSecret          string   // Empty leaves mutating routes unauthenticated.
	JWTIssuer          string
	BodyLimitBytes     int64 `validate:"gt=0"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_BACKEND", StorageBackendPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "data/budgets.db")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CURRENCY_API_KEY", "")
	v.SetDefault("CURRENCY_API_BASE_URL", "https://v6.exchangerate-api.com/v6")
	v.SetDefault("CURRENCY_API_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("BODY_LIMIT_BYTES", 5<<20)

	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	timeoutStr := v.GetString("CURRENCY_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CURRENCY_API_TIMEOUT %q: %w", timeoutStr, err)
	}

	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		AppVersion:         v.GetString("APP_VERSION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		StorageBackend:     strings.ToLower(v.GetString("STORAGE_BACKEND")),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		CurrencyAPIKey:     v.GetString("CURRENCY_API_KEY"),
		CurrencyAPIBaseURL: v.GetString("CURRENCY_API_BASE_URL"),
		CurrencyAPITimeout: timeout,
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          v.GetString("RATE_LIMIT"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		BodyLimitBytes:     v.GetInt64("BODY_LIMIT_BYTES"),
	}

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set. Mutating budget routes are not authenticated.")
	}
	if cfg.StorageBackend == StorageBackendPostgres && cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	return cfg, nil
}

// Validate checks the configuration needed to serve the API.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
