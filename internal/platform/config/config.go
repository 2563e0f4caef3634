package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var errPostgresDSNRequired = errors.New("POSTGRES_DSN (or CONTENT_DATABASE_URL) is required")

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	// Database pool
	DBMaxConnections    int32         `env:"DB_MAX_CONNECTIONS" envDefault:"10"`
	DBMinConnections    int32         `env:"DB_MIN_CONNECTIONS" envDefault:"2"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	RunMigrations       bool          `env:"RUN_MIGRATIONS" envDefault:"true"`

	// HTTP
	HTTPPort           int           `env:"HTTP_PORT" envDefault:"3001"`
	HealthPort         int           `env:"HEALTH_PORT" envDefault:"8080"`
	HTTPRequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"15s"`
	APIRateLimitRPS    float64       `env:"API_RATE_LIMIT_RPS" envDefault:"20"`
	APIRateLimitBurst  int           `env:"API_RATE_LIMIT_BURST" envDefault:"40"`

	// Dropdowns
	DropdownOptionOrder        string `env:"DROPDOWN_OPTION_ORDER" envDefault:"lexicographic"`
	DropdownIncludeTextOptions bool   `env:"DROPDOWN_INCLUDE_TEXT_OPTIONS" envDefault:"false"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	applyAliases(cfg)

	if cfg.PostgresDSN == "" {
		return nil, errPostgresDSNRequired
	}

	return cfg, nil
}

// applyAliases accepts the legacy CONTENT_DATABASE_URL and PORT variables.
func applyAliases(cfg *Config) {
	if cfg.PostgresDSN == "" {
		setStringFromEnv("CONTENT_DATABASE_URL", &cfg.PostgresDSN)
	}

	if !hasEnv("HTTP_PORT") {
		setIntFromEnv("PORT", &cfg.HTTPPort)
	}
}

func hasEnv(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func setStringFromEnv(key string, target *string) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	val = strings.TrimSpace(val)
	if val == "" {
		return
	}

	*target = val
}

func setIntFromEnv(key string, target *int) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return
	}

	*target = parsed
}
