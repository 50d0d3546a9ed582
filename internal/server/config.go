package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the HTTP server configuration, read from QUESTLY_* env vars.
type Config struct {
	Addr            string        `env:"QUESTLY_SERVER_ADDR" envDefault:":8000"`
	RequestTimeout  time.Duration `env:"QUESTLY_REQUEST_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"QUESTLY_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"QUESTLY_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the server configuration from the environment, loading a
// .env file first when one exists.
func LoadConfig() (Config, error) {
	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse server config: %w", err)
	}
	return cfg, nil
}
