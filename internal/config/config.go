package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all CashDey server configuration. Values come from defaults,
// then an optional TOML file, then environment overrides, in that order.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Uploads  UploadsConfig  `toml:"uploads"`
	AI       AIConfig       `toml:"ai"`
	Paystack PaystackConfig `toml:"paystack"`
	Premium  PremiumConfig  `toml:"premium"`
	LogLevel string         `toml:"log_level"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type UploadsConfig struct {
	Dir string `toml:"dir"`
}

type AIConfig struct {
	GeminiAPIKey string `toml:"gemini_api_key,omitempty"`
	Model        string `toml:"model"`
}

type PaystackConfig struct {
	SecretKey string `toml:"secret_key,omitempty"`
}

type PremiumConfig struct {
	Plan       string  `toml:"plan"`
	PriceNGN   float64 `toml:"price_ngn"`
	PeriodDays int     `toml:"period_days"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Path: "./cashdey.db"},
		Uploads:  UploadsConfig{Dir: "./uploads"},
		AI:       AIConfig{Model: "gemini-2.0-flash"},
		Premium:  PremiumConfig{Plan: "premium-monthly", PriceNGN: 1500, PeriodDays: 30},
		LogLevel: "info",
	}
}

// ConfigPath returns the config file location, overridable via CASHDEY_CONFIG.
func ConfigPath() string {
	if p := os.Getenv("CASHDEY_CONFIG"); p != "" {
		return p
	}
	return "./cashdey.toml"
}

// Load builds the configuration: defaults, then the config file if present,
// then environment variables.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", ConfigPath(), err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read %s: %w", ConfigPath(), err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setEnv(&cfg.Server.Port, "SERVER_PORT")
	setEnv(&cfg.Database.Path, "DATABASE_URL")
	setEnv(&cfg.Uploads.Dir, "UPLOAD_DIR")
	setEnv(&cfg.AI.GeminiAPIKey, "GEMINI_API_KEY")
	setEnv(&cfg.AI.Model, "GEMINI_MODEL")
	setEnv(&cfg.Paystack.SecretKey, "PAYSTACK_SECRET_KEY")
	setEnv(&cfg.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("PREMIUM_PRICE_NGN"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil && price > 0 {
			cfg.Premium.PriceNGN = price
		}
	}
}

func setEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
