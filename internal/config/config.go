// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

// Package config loads and validates the Nutrilens server configuration
// using Koanf v2 with layered sources: built-in defaults, an optional YAML
// config file, and environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Nutrilens server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Storage  StorageConfig  `koanf:"storage"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatasetConfig holds raw dataset settings.
type DatasetConfig struct {
	// Path is the raw dataset CSV loaded at startup and watched for changes.
	Path string `koanf:"path"`

	// Watch enables the fsnotify-based dataset watcher that re-runs the
	// precompute pipeline when the file changes.
	Watch bool `koanf:"watch"`

	// WatchDebounce coalesces bursts of filesystem events into one run.
	WatchDebounce time.Duration `koanf:"watch_debounce"`
}

// StorageConfig holds durable-store and mirror settings.
type StorageConfig struct {
	// BadgerPath is the directory of the BadgerDB durable artifact store.
	BadgerPath string `koanf:"badger_path"`

	// MirrorPath is the local JSON file mirroring the summary artifact.
	// Empty disables the mirror.
	MirrorPath string `koanf:"mirror_path"`
}

// SecurityConfig holds request-protection settings.
type SecurityConfig struct {
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_requests"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8642,
			Timeout: 30 * time.Second,
		},
		Dataset: DatasetConfig{
			Path:          "data/All_Diets.csv",
			Watch:         false,
			WatchDebounce: 2 * time.Second,
		},
		Storage: StorageConfig{
			BadgerPath: "data/store",
			MirrorPath: "data/simulated_nosql/results.json",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: 1 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for inconsistencies. It is called after
// every load, so the rest of the program can rely on these invariants.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path must not be empty")
	}
	if c.Dataset.Watch && c.Dataset.WatchDebounce <= 0 {
		return fmt.Errorf("dataset.watch_debounce must be positive when dataset.watch is enabled")
	}
	if c.Storage.BadgerPath == "" {
		return fmt.Errorf("storage.badger_path must not be empty")
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_requests must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}
