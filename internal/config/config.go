package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings taken from the system's environment variables.
//
// Usage example on the command line:
// > PORT=8080 GIN_MODE=release GIN_LOGGING=OFF LOG_MODE=production assistant serve
type Config struct {
	Port       int    `env:"PORT"        envDefault:"8080"`
	GinLogging string `env:"GIN_LOGGING"`
	LogMode    string `env:"LOG_MODE"    envDefault:"development"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

// RequestLogging reports whether gin should log every HTTP request.
func (c Config) RequestLogging() bool {
	return !strings.EqualFold(c.GinLogging, "off")
}

// Addr returns the listen address for the HTTP service.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
