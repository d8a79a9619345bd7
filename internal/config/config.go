// Package config loads application configuration from an optional YAML
// file with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Gesture holds the swipe recognizer thresholds. Units are pixels for the
// web front-end; the TUI scales them down to terminal cells on its own.
type Gesture struct {
	DeadZone       float64 `yaml:"deadZone"`
	MinDistance    float64 `yaml:"minDistance"`
	MaxCrossTravel float64 `yaml:"maxCrossTravel"`
	MaxDurationMs  int     `yaml:"maxDurationMs"`
}

// Config is the full application configuration.
type Config struct {
	Addr        string  `yaml:"addr"`
	WebDir      string  `yaml:"webDir"`
	Store       string  `yaml:"store"` // diskv, postgres or memory
	DataDir     string  `yaml:"dataDir"`
	DatabaseURL string  `yaml:"databaseUrl"`
	Gesture     Gesture `yaml:"gesture"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Addr:    ":8080",
		WebDir:  "web",
		Store:   "diskv",
		DataDir: filepath.Join(home, ".weightlog", "entries"),
		Gesture: Gesture{
			DeadZone:       10,
			MinDistance:    70,
			MaxCrossTravel: 90,
			MaxDurationMs:  450,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (or
// ~/.weightlog.yaml when path is empty; a missing file is not an error),
// then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".weightlog.yaml")
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
	}

	cfg.Addr = env("WEIGHTLOG_ADDR", cfg.Addr)
	cfg.WebDir = env("WEIGHTLOG_WEB_DIR", cfg.WebDir)
	cfg.Store = env("WEIGHTLOG_STORE", cfg.Store)
	cfg.DataDir = env("WEIGHTLOG_DATA_DIR", cfg.DataDir)
	cfg.DatabaseURL = env("DATABASE_URL", cfg.DatabaseURL)
	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
