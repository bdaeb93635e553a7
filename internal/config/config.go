package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store backend names accepted in Config.Store.
const (
	StoreMemory   = "memory"
	StorePebble   = "pebble"
	StorePostgres = "postgres"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// Store selects the order store backend: memory, pebble or postgres.
	Store string `json:"store"`
	// DataDir is where the pebble backend keeps its database.
	DataDir string `json:"dataDir"`
	// DatabaseURL is the connection string for the postgres backend.
	DatabaseURL string `json:"databaseURL"`
	// SubscriberBuffer is the per-subscriber event queue capacity. When a
	// queue is full further events for that subscriber are dropped.
	SubscriberBuffer int `json:"subscriberBuffer"`
	// LogLevel and LogFormat configure the process logger.
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Store:            StoreMemory,
		SubscriberBuffer: 64,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Validate checks cross-field requirements.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StorePebble:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: store %q requires databaseURL", c.Store)
		}
	default:
		return fmt.Errorf("config: unknown store %q", c.Store)
	}
	if c.SubscriberBuffer <= 0 {
		return fmt.Errorf("config: subscriberBuffer must be positive")
	}
	return nil
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
