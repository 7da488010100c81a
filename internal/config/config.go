package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Ledger backend selectors.
const (
	LedgerMemory   = "memory"
	LedgerPostgres = "postgres"
	LedgerRedis    = "redis"
)

// Config holds runtime configuration loaded from the environment.
type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN"`
	// AdminID is the single Telegram identity allowed to grant credits.
	// Zero means nobody is the admin.
	AdminID int64 `env:"TELEGRAM_ADMIN_ID"`

	OpenAIToken   string `env:"OPENAI_TOKEN"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	LedgerBackend string `env:"LEDGER_BACKEND" envDefault:"memory"`
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

// FromEnv loads configuration from environment variables. TELEGRAM_TOKEN is
// required; everything else has a default or is optional.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.TelegramToken == "" {
		return nil, errors.New("TELEGRAM_TOKEN is not set")
	}
	switch cfg.LedgerBackend {
	case LedgerMemory, LedgerRedis:
	case LedgerPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for the postgres ledger backend")
		}
	default:
		return nil, fmt.Errorf("unknown LEDGER_BACKEND %q", cfg.LedgerBackend)
	}
	return cfg, nil
}
