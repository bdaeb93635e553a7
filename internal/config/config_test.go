package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Store != StoreMemory {
		t.Fatalf("default store: %s", cfg.Store)
	}
	if cfg.SubscriberBuffer != 64 {
		t.Fatalf("default subscriber buffer: %d", cfg.SubscriberBuffer)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "kebab.json")
	data := []byte(`{"store":"pebble","dataDir":"/tmp/kebab","subscriberBuffer":128}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store != StorePebble {
		t.Fatalf("expected pebble, got %s", cfg.Store)
	}
	if cfg.DataDir != "/tmp/kebab" {
		t.Fatalf("data dir: %s", cfg.DataDir)
	}
	if cfg.SubscriberBuffer != 128 {
		t.Fatalf("subscriber buffer: %d", cfg.SubscriberBuffer)
	}
	// Untouched fields keep defaults.
	if cfg.LogLevel != "info" {
		t.Fatalf("log level: %s", cfg.LogLevel)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("KEBAB_STORE", "postgres")
	os.Setenv("KEBAB_DATABASE_URL", "postgres://localhost/kebab")
	os.Setenv("KEBAB_SUB_BUF", "256")
	t.Cleanup(func() {
		os.Unsetenv("KEBAB_STORE")
		os.Unsetenv("KEBAB_DATABASE_URL")
		os.Unsetenv("KEBAB_SUB_BUF")
	})
	FromEnv(&cfg)
	if cfg.Store != StorePostgres {
		t.Fatalf("env store override: %s", cfg.Store)
	}
	if cfg.DatabaseURL != "postgres://localhost/kebab" {
		t.Fatalf("env database url: %s", cfg.DatabaseURL)
	}
	if cfg.SubscriberBuffer != 256 {
		t.Fatalf("env subscriber buffer: %d", cfg.SubscriberBuffer)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Store = "cassandra"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown store should fail")
	}
	cfg = Default()
	cfg.Store = StorePostgres
	if err := cfg.Validate(); err == nil {
		t.Fatal("postgres without databaseURL should fail")
	}
	cfg = Default()
	cfg.SubscriberBuffer = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero buffer should fail")
	}
}
