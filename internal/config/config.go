package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBDriver       string `env:"DB_DRIVER" env-default:"mysql"`
	DBHost         string `env:"DB_HOST" env-default:"localhost"`
	DBPort         string `env:"DB_PORT" env-default:"3307"`
	DBUser         string `env:"DB_USER" env-default:"root"`
	DBPassword     string `env:"DB_PASSWORD"`
	DBName         string `env:"DB_NAME" env-default:"checklist_user"`
	DBSSLMode      string `env:"DB_SSLMODE" env-default:"disable"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" env-default:"10"`

	// Auth
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTExpiry  time.Duration `env:"JWT_EXPIRY" env-default:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" env-default:"10"`

	// Admin panel gate
	AdminAuthRequired bool   `env:"ADMIN_AUTH_REQUIRED" env-default:"false"`
	AdminToken        string `env:"ADMIN_TOKEN"`
	AdminRoles        string `env:"ADMIN_ROLES"`

	// Server
	Port         string `env:"PORT" env-default:"3000"`
	CORSOrigins  string `env:"CORS_ORIGINS" env-default:"*"`
	RateLimitMax int    `env:"RATE_LIMIT_MAX" env-default:"120"`

	// Cache
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" env-default:"60s"`

	// Observability
	LogRetentionDays int    `env:"LOG_RETENTION_DAYS" env-default:"30"`
	SentryDSN        string `env:"SENTRY_DSN"`
	AppEnv           string `env:"APP_ENV" env-default:"development"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env file", "error", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBMaxOpenConns <= 0 {
		return errors.New("DB_MAX_OPEN_CONNS must be positive")
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return "host=" + c.DBHost +
			" user=" + c.DBUser +
			" password=" + c.DBPassword +
			" dbname=" + c.DBName +
			" port=" + c.DBPort +
			" sslmode=" + c.DBSSLMode +
			" TimeZone=UTC"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
