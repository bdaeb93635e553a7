package config

import (
	"os"
	"strconv"
)

// FromEnv overlays KEBAB_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("KEBAB_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("KEBAB_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("KEBAB_DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("KEBAB_SUB_BUF"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SubscriberBuffer = n
		}
	}
	if v := os.Getenv("KEBAB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KEBAB_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
