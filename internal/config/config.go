package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries process-level settings loaded from the environment.
type Config struct {
	Port             string
	LogLevel         string
	LocalDBPath      string
	DefaultIncrement int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	cfg := Config{
		Port:             envOrDefault("AUCTION_PORT", "8080"),
		LogLevel:         envOrDefault("AUCTION_LOG_LEVEL", "info"),
		LocalDBPath:      envOrDefault("AUCTION_LOCAL_DB", "file:auction-local.db"),
		DefaultIncrement: int64OrDefault(os.Getenv("AUCTION_DEFAULT_INCREMENT"), 500),
	}
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	}
	return cfg
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func int64OrDefault(v string, fallback int64) int64 {
	if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil && i > 0 {
		return i
	}
	return fallback
}
