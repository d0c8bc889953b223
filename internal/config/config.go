package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration, parsed from the environment
type Config struct {
	Host        string `env:"HUB_HOST" envDefault:""`
	Port        int    `env:"HUB_PORT" envDefault:"8080"`
	StorageType string `env:"HUB_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"HUB_REDIS_URL" envDefault:"redis://localhost:6379"`
	LogLevel    string `env:"HUB_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog level
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
