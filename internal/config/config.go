// Package config loads process settings for the GlazeCut server and CLI
// from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/piwi3910/GlazeCut/internal/project"
)

// Environment variable names.
const (
	EnvAddr      = "GLAZECUT_ADDR"
	EnvDBPath    = "GLAZECUT_DB_PATH"
	EnvRateLimit = "GLAZECUT_RATE_LIMIT"
	EnvRateBurst = "GLAZECUT_RATE_BURST"
	EnvConfig    = "GLAZECUT_CONFIG"
)

// Config holds the process settings.
type Config struct {
	Addr          string  // HTTP listen address
	DBPath        string  // SQLite design library
	RateLimit     float64 // API requests per second per client IP
	RateBurst     int
	AppConfigPath string // model.AppConfig JSON
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Addr:          ":8080",
		DBPath:        filepath.Join(project.DefaultConfigDir(), "designs.db"),
		RateLimit:     5,
		RateBurst:     10,
		AppConfigPath: project.DefaultConfigPath(),
	}
}

// Load reads the given .env files (".env" when none are named) into the
// environment, then builds the config from it. Missing .env files are not
// an error; variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the config from environment variables over Default.
func FromEnv() (*Config, error) {
	cfg := Default()
	cfg.Addr = getEnv(EnvAddr, cfg.Addr)
	cfg.DBPath = getEnv(EnvDBPath, cfg.DBPath)
	cfg.AppConfigPath = getEnv(EnvConfig, cfg.AppConfigPath)

	var err error
	if cfg.RateLimit, err = getEnvAsFloat(EnvRateLimit, cfg.RateLimit); err != nil {
		return nil, err
	}
	if cfg.RateBurst, err = getEnvAsInt(EnvRateBurst, cfg.RateBurst); err != nil {
		return nil, err
	}
	if cfg.RateLimit <= 0 || cfg.RateBurst <= 0 {
		return nil, fmt.Errorf("%s and %s must be positive", EnvRateLimit, EnvRateBurst)
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultVal float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return f, nil
}
