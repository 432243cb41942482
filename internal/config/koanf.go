// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/planetary/config.yaml",
	"/etc/planetary/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// sliceConfigPaths are keys that accept comma-separated values from env vars.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Database
	"database_driver":    "database.driver",
	"mongo_uri":          "database.uri",
	"mongo_dbname":       "database.name",
	"mongo_collection":   "database.collection",
	"badger_path":        "database.path",
	"badger_in_memory":   "database.in_memory",
	"db_connect_timeout": "database.connect_timeout",

	// Appearance lookup
	"swapi_url":                    "lookup.base_url",
	"lookup_timeout":               "lookup.timeout",
	"lookup_rate_limit":            "lookup.rate_limit",
	"lookup_rate_burst":            "lookup.rate_burst",
	"lookup_breaker_max_requests":  "lookup.breaker_max_requests",
	"lookup_breaker_interval":      "lookup.breaker_interval",
	"lookup_breaker_timeout":       "lookup.breaker_timeout",
	"lookup_breaker_min_requests":  "lookup.breaker_min_requests",
	"lookup_breaker_failure_ratio": "lookup.breaker_failure_ratio",

	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// defaultConfig returns the built-in defaults. The database and collection
// names match the original deployment so existing data is found unchanged.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:         DriverMongo,
			URI:            "mongodb://127.0.0.1:27017",
			Name:           "starwars_planets",
			Collection:     "starwars_planets",
			Path:           "/data/planetary",
			InMemory:       false,
			ConnectTimeout: 10 * time.Second,
		},
		Lookup: LookupConfig{
			BaseURL:             "https://swapi.dev/api/planets/",
			Timeout:             10 * time.Second,
			RateLimit:           5,
			RateBurst:           10,
			BreakerMaxRequests:  3,
			BreakerInterval:     time.Minute,
			BreakerTimeout:      30 * time.Second,
			BreakerMinRequests:  5,
			BreakerFailureRatio: 0.6,
		},
		Server: ServerConfig{
			Port:        5000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration from defaults, an optional YAML file and
// the environment, in that order of increasing precedence, then validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// MONGO_URI -> database.uri, SWAPI_URL -> lookup.base_url
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// processSliceFields splits comma-separated env values into string slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
