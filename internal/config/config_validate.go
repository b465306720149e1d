// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDataset,
		c.validateIngest,
		c.validateCatalog,
		c.validateAPI,
		c.validateSecurity,
		c.validatePoster,
		c.validateLogging,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
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

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.MoviesPath) == "" {
		return fmt.Errorf("MOVIES_CSV is required")
	}
	return nil
}

func (c *Config) validateIngest() error {
	if c.Ingest.BatchSize < 1 || c.Ingest.BatchSize > 100000 {
		return fmt.Errorf("INGEST_BATCH_SIZE must be between 1 and 100000")
	}
	if c.Ingest.MaxMovies < 0 {
		return fmt.Errorf("INGEST_MAX_MOVIES must be non-negative")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.FirstRank < 0 || c.Catalog.LastRank < 0 {
		return fmt.Errorf("CATALOG_FIRST_RANK and CATALOG_LAST_RANK must be non-negative")
	}
	if c.Catalog.FirstRank > 0 && c.Catalog.LastRank > 0 && c.Catalog.FirstRank > c.Catalog.LastRank {
		return fmt.Errorf("CATALOG_FIRST_RANK must not exceed CATALOG_LAST_RANK")
	}
	if c.Catalog.SuggestLimit < 1 {
		return fmt.Errorf("CATALOG_SUGGEST_LIMIT must be at least 1")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 || c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be at least 1 and no larger than API_MAX_PAGE_SIZE")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateJWTSecret(); err != nil {
		return err
	}
	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	if c.Security.LockoutMaxAttempts < 0 {
		return fmt.Errorf("LOCKOUT_MAX_ATTEMPTS must be non-negative")
	}
	if c.Security.LockoutMaxAttempts > 0 && c.Security.LockoutDuration <= 0 {
		return fmt.Errorf("LOCKOUT_DURATION must be positive when lockout is enabled")
	}
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateJWTSecret requires a secret in production. Outside production an
// empty secret is allowed and the server generates an ephemeral one.
func (c *Config) validateJWTSecret() error {
	if c.Security.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required when ENVIRONMENT=production")
		}
		return nil
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters for security")
	}
	if containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	return nil
}

// validateCORS rejects wildcard origins in production.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
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

func (c *Config) validatePoster() error {
	if !c.Poster.Enabled() {
		return nil
	}
	if !strings.HasPrefix(c.Poster.BaseURL, "http://") && !strings.HasPrefix(c.Poster.BaseURL, "https://") {
		return fmt.Errorf("OMDB_URL must start with http:// or https://")
	}
	if c.Poster.RateLimit <= 0 || c.Poster.RateBurst < 1 {
		return fmt.Errorf("OMDB_RATE_LIMIT must be positive and OMDB_RATE_BURST at least 1")
	}
	if c.Poster.Timeout <= 0 {
		return fmt.Errorf("OMDB_TIMEOUT must be positive")
	}
	if c.Poster.BreakerFailures == 0 {
		return fmt.Errorf("OMDB_BREAKER_FAILURES must be at least 1")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns flags values the operator forgot to replace.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"PLACEHOLDER",
	"EXAMPLE",
}

func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
