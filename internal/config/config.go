package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Host              string        `env:"TRIPPLAN_HOST" envDefault:"localhost"`
	Port              string        `env:"TRIPPLAN_PORT" envDefault:"8092"`
	ReadHeaderTimeout time.Duration `env:"TRIPPLAN_READ_HEADER_TIMEOUT" envDefault:"20s"`
	LogMode           string        `env:"TRIPPLAN_LOG_MODE" envDefault:"dev"`

	// memory, file or redis
	StorageBackend string `env:"TRIPPLAN_STORAGE" envDefault:"memory"`
	StorageDir     string `env:"TRIPPLAN_STORAGE_DIR" envDefault:".tripplan"`
	RedisAddr      string `env:"TRIPPLAN_REDIS_ADDR" envDefault:"localhost:6379"`

	RapidAPIKey string `env:"RAPID_API_KEY"`

	SeedDemo       bool     `env:"TRIPPLAN_SEED_DEMO" envDefault:"false"`
	AllowedOrigins []string `env:"TRIPPLAN_ALLOWED_ORIGINS" envDefault:"*"`
}

// Load reads configuration from the environment, with an optional .env file
// layered underneath.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}
