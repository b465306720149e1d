// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

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

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marquee/config.yaml",
	"/etc/marquee/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Dataset: DatasetConfig{
			MoviesPath: "data/movies.csv",
			UsersPath:  "data/users.csv",
		},
		Ingest: IngestConfig{
			AutoStart:       true,
			BatchSize:       250,
			MaxMovies:       0,
			LinkColleagues:  true,
			PasswordsHashed: false,
		},
		Catalog: CatalogConfig{
			FirstRank:     0,
			LastRank:      0,
			FacetCacheTTL: 10 * time.Minute,
			SuggestLimit:  10,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: SecurityConfig{
			JWTSecret:         "",
			SessionTimeout:    24 * time.Hour,
			BcryptCost:        10,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},

			LockoutMaxAttempts: 5,
			LockoutDuration:    15 * time.Minute,
		},
		Poster: PosterConfig{
			APIKey:          "",
			BaseURL:         "http://www.omdbapi.com/",
			Timeout:         5 * time.Second,
			RateLimit:       5,
			RateBurst:       5,
			CacheTTL:        24 * time.Hour,
			BreakerFailures: 5,
			BreakerTimeout:  60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
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

	// HTTP_PORT -> server.port, OMDB_API_KEY -> poster.api_key
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

// findConfigFile returns CONFIG_PATH when it exists, else the first of
// DefaultConfigPaths that exists, else "".
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

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML already yields slices.
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
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Dataset
	"movies_csv": "dataset.movies_path",
	"users_csv":  "dataset.users_path",

	// Ingest
	"ingest_auto_start":       "ingest.auto_start",
	"ingest_batch_size":       "ingest.batch_size",
	"ingest_max_movies":       "ingest.max_movies",
	"ingest_link_colleagues":  "ingest.link_colleagues",
	"ingest_passwords_hashed": "ingest.passwords_hashed",

	// Catalog
	"catalog_first_rank":      "catalog.first_rank",
	"catalog_last_rank":       "catalog.last_rank",
	"catalog_facet_cache_ttl": "catalog.facet_cache_ttl",
	"catalog_suggest_limit":   "catalog.suggest_limit",

	// API
	"api_default_page_size": "api.default_page_size",
	"api_max_page_size":     "api.max_page_size",

	// Security
	"jwt_secret":           "security.jwt_secret",
	"session_timeout":      "security.session_timeout",
	"bcrypt_cost":          "security.bcrypt_cost",
	"rate_limit_requests":  "security.rate_limit_reqs",
	"rate_limit_window":    "security.rate_limit_window",
	"disable_rate_limit":   "security.rate_limit_disabled",
	"cors_origins":         "security.cors_origins",
	"lockout_max_attempts": "security.lockout_max_attempts",
	"lockout_duration":     "security.lockout_duration",

	// Poster
	"omdb_api_key":          "poster.api_key",
	"omdb_url":              "poster.base_url",
	"omdb_timeout":          "poster.timeout",
	"omdb_rate_limit":       "poster.rate_limit",
	"omdb_rate_burst":       "poster.rate_burst",
	"omdb_cache_ttl":        "poster.cache_ttl",
	"omdb_breaker_failures": "poster.breaker_failures",
	"omdb_breaker_timeout":  "poster.breaker_timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped so unrelated environment
// variables never reach the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
