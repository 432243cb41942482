// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

// Package config loads and validates Planetary configuration.
//
// Configuration is layered with Koanf v2, lowest to highest precedence:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, then DefaultConfigPaths)
//  3. Environment variables, including .env and .env.local
//
// Only environment variables listed in the mapping table are read, so
// unrelated process environment never leaks into the configuration.
package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted by DatabaseConfig.Driver.
const (
	DriverMongo  = "mongo"
	DriverBadger = "badger"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Lookup   LookupConfig   `koanf:"lookup"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig selects and configures the planet document store.
type DatabaseConfig struct {
	Driver         string        `koanf:"driver"`          // "mongo" or "badger"
	URI            string        `koanf:"uri"`             // MongoDB connection string
	Name           string        `koanf:"name"`            // MongoDB database name
	Collection     string        `koanf:"collection"`      // MongoDB collection name
	Path           string        `koanf:"path"`            // Badger data directory
	InMemory       bool          `koanf:"in_memory"`       // Badger in-memory mode (no files written)
	ConnectTimeout time.Duration `koanf:"connect_timeout"` // Connect and ping deadline at startup
}

// LookupConfig configures the appearance-count lookup service client.
type LookupConfig struct {
	BaseURL   string        `koanf:"base_url"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"` // Requests per second; 0 disables the limiter
	RateBurst int           `koanf:"rate_burst"`

	BreakerMaxRequests  uint32        `koanf:"breaker_max_requests"`  // Probes allowed while half-open
	BreakerInterval     time.Duration `koanf:"breaker_interval"`      // Closed-state counter reset period
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`       // Open-state duration before half-open
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`  // Requests seen before the breaker may trip
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"` // Failure ratio that trips the breaker
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging" or "production"
}

// SecurityConfig holds CORS and inbound rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads .env files into the process environment (existing variables
// win) and then loads the layered configuration.
func Load() (*Config, error) {
	loadEnvFiles()
	return LoadWithKoanf()
}

// loadEnvFiles loads .env then .env.local. Missing files are not an error.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}
