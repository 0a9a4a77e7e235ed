// Package config loads runtime settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mmynk/secretsanta/internal/assignment"
)

// Config holds the settings shared by the server and the CLI.
type Config struct {
	Addr        string        `env:"SANTA_ADDR"         envDefault:":8080"`
	DBPath      string        `env:"SANTA_DB_PATH"      envDefault:"./data/santa.db"`
	TokenSecret string        `env:"SANTA_TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"SANTA_TOKEN_TTL"    envDefault:"720h"`
	MaxAttempts int           `env:"SANTA_MAX_ATTEMPTS" envDefault:"10000"`
	TimeBudget  time.Duration `env:"SANTA_TIME_BUDGET"  envDefault:"5s"`
	Prune       bool          `env:"SANTA_PRUNE"        envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ValidateServer checks the settings only the server needs.
func (c Config) ValidateServer() error {
	if len(c.TokenSecret) < 16 {
		return errors.New("SANTA_TOKEN_SECRET must be at least 16 characters")
	}
	if c.TokenTTL <= 0 {
		return errors.New("SANTA_TOKEN_TTL must be positive")
	}
	return nil
}

// EngineOptions turns the search settings into engine options.
func (c Config) EngineOptions() []assignment.Option {
	return []assignment.Option{
		assignment.WithMaxAttempts(c.MaxAttempts),
		assignment.WithTimeBudget(c.TimeBudget),
		assignment.WithPruning(c.Prune),
	}
}
