// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package config

import (
	"fmt"
	"time"
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateLookup(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.URI == "" {
			return fmt.Errorf("MONGO_URI is required when DATABASE_DRIVER=mongo")
		}
		if err := validateMongoURI(c.Database.URI); err != nil {
			return err
		}
		if c.Database.Name == "" {
			return fmt.Errorf("MONGO_DBNAME is required when DATABASE_DRIVER=mongo")
		}
		if c.Database.Collection == "" {
			return fmt.Errorf("MONGO_COLLECTION must not be empty")
		}
	case DriverBadger:
		if !c.Database.InMemory && c.Database.Path == "" {
			return fmt.Errorf("BADGER_PATH is required unless BADGER_IN_MEMORY=true")
		}
	default:
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverMongo, DriverBadger, c.Database.Driver)
	}

	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateLookup() error {
	if err := validateLookupURL(c.Lookup.BaseURL, "SWAPI_URL"); err != nil {
		return err
	}
	if c.Lookup.Timeout <= 0 {
		return fmt.Errorf("LOOKUP_TIMEOUT must be positive")
	}
	if c.Lookup.RateLimit < 0 {
		return fmt.Errorf("LOOKUP_RATE_LIMIT must not be negative")
	}
	if c.Lookup.RateLimit > 0 && c.Lookup.RateBurst < 1 {
		return fmt.Errorf("LOOKUP_RATE_BURST must be at least 1 when LOOKUP_RATE_LIMIT is set")
	}
	if c.Lookup.BreakerFailureRatio <= 0 || c.Lookup.BreakerFailureRatio > 1 {
		return fmt.Errorf("LOOKUP_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if c.Lookup.BreakerTimeout <= 0 {
		return fmt.Errorf("LOOKUP_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
