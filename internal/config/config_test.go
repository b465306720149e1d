// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"missing movies path", func(c *Config) { c.Dataset.MoviesPath = "  " }, "MOVIES_CSV"},
		{"users path optional", func(c *Config) { c.Dataset.UsersPath = "" }, ""},
		{"batch size zero", func(c *Config) { c.Ingest.BatchSize = 0 }, "INGEST_BATCH_SIZE"},
		{"negative cap", func(c *Config) { c.Ingest.MaxMovies = -1 }, "INGEST_MAX_MOVIES"},
		{"negative rank bound", func(c *Config) { c.Catalog.FirstRank = -1 }, "CATALOG_FIRST_RANK"},
		{"inverted rank bounds", func(c *Config) {
			c.Catalog.FirstRank = 10
			c.Catalog.LastRank = 5
		}, "must not exceed"},
		{"one-sided bound", func(c *Config) { c.Catalog.FirstRank = 10 }, ""},
		{"suggest limit", func(c *Config) { c.Catalog.SuggestLimit = 0 }, "CATALOG_SUGGEST_LIMIT"},
		{"page sizes", func(c *Config) { c.API.MaxPageSize = 5 }, "API_DEFAULT_PAGE_SIZE"},
		{"short jwt secret", func(c *Config) { c.Security.JWTSecret = "short" }, "at least 32"},
		{"placeholder jwt secret", func(c *Config) {
			c.Security.JWTSecret = "CHANGEME-CHANGEME-CHANGEME-CHANGEME"
		}, "placeholder"},
		{"jwt secret required in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"https://catalog.example.org"}
		}, "JWT_SECRET is required"},
		{"wildcard cors in production", func(c *Config) {
			c.Server.Environment = "prod"
			c.Security.JWTSecret = strings.Repeat("k", 32)
		}, "CORS_ORIGINS"},
		{"bcrypt cost", func(c *Config) { c.Security.BcryptCost = 2 }, "BCRYPT_COST"},
		{"rate limit window", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"poster url", func(c *Config) {
			c.Poster.APIKey = "key"
			c.Poster.BaseURL = "omdbapi.com"
		}, "OMDB_URL"},
		{"poster breaker", func(c *Config) {
			c.Poster.APIKey = "key"
			c.Poster.BreakerFailures = 0
		}, "OMDB_BREAKER_FAILURES"},
		{"poster disabled skips checks", func(c *Config) { c.Poster.BaseURL = "" }, ""},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	tests := []struct {
		env        string
		production bool
		dev        bool
	}{
		{"", false, true},
		{"development", false, true},
		{"DEV", false, true},
		{"staging", false, false},
		{"Production", true, false},
		{"prod", true, false},
	}
	for _, tt := range tests {
		cfg := &Config{Server: ServerConfig{Environment: tt.env}}
		if cfg.IsProduction() != tt.production || cfg.IsDevelopment() != tt.dev {
			t.Errorf("%q: IsProduction=%v IsDevelopment=%v", tt.env, cfg.IsProduction(), cfg.IsDevelopment())
		}
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}
