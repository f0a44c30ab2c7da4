package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration. JWTSecret and DatabasePath are
// required: running without either is a startup error, never a per-request one.
type Config struct {
	ServerPort   int    `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH,required"`
	JWTSecret    string `env:"JWT_SECRET,required"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
