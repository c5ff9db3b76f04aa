package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CASHDEY_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Premium.PriceNGN != 1500 {
		t.Fatalf("premium price = %v, want 1500", cfg.Premium.PriceNGN)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cashdey.toml")
	content := `
log_level = "debug"

[server]
port = "9090"

[premium]
plan = "premium-monthly"
price_ngn = 2500.0
period_days = 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CASHDEY_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Premium.PriceNGN != 2500 {
		t.Fatalf("premium price = %v, want 2500", cfg.Premium.PriceNGN)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.LogLevel)
	}
	// Untouched keys keep defaults
	if cfg.Database.Path != "./cashdey.db" {
		t.Fatalf("database path = %q, want default", cfg.Database.Path)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cashdey.toml")
	if err := os.WriteFile(path, []byte("[server]\nport = \"9090\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CASHDEY_CONFIG", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("PREMIUM_PRICE_NGN", "3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("port = %q, want 7070", cfg.Server.Port)
	}
	if cfg.Premium.PriceNGN != 3000 {
		t.Fatalf("premium price = %v, want 3000", cfg.Premium.PriceNGN)
	}
}
