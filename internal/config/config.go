// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in values from defaultConfig
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Ingest   IngestConfig   `koanf:"ingest"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Poster   PosterConfig   `koanf:"poster"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatasetConfig locates the CSV files loaded at startup.
//
// Environment Variables:
//   - MOVIES_CSV: path to the movie dataset (default: data/movies.csv)
//   - USERS_CSV: path to the user dataset, empty to skip (default: data/users.csv)
type DatasetConfig struct {
	MoviesPath string `koanf:"movies_path"`
	UsersPath  string `koanf:"users_path"`
}

// IngestConfig controls how the dataset loader populates the repository.
type IngestConfig struct {
	// AutoStart loads the dataset when the supervisor starts the import service.
	AutoStart bool `koanf:"auto_start"`

	// BatchSize is the number of CSV rows read per query.
	BatchSize int `koanf:"batch_size"`

	// MaxMovies caps the number of movies indexed. 0 means no cap.
	MaxMovies int `koanf:"max_movies"`

	// LinkColleagues registers every pair of co-stars as colleagues.
	LinkColleagues bool `koanf:"link_colleagues"`

	// PasswordsHashed marks the users CSV as already holding bcrypt hashes.
	PasswordsHashed bool `koanf:"passwords_hashed"`
}

// CatalogConfig holds query-side settings.
type CatalogConfig struct {
	// FirstRank and LastRank pin the movies returned as first and last.
	// 0 derives them from the lowest and highest rank loaded.
	FirstRank int `koanf:"first_rank"`
	LastRank  int `koanf:"last_rank"`

	// FacetCacheTTL bounds how long year and genre lists are cached.
	FacetCacheTTL time.Duration `koanf:"facet_cache_ttl"`

	// SuggestLimit is the default number of title suggestions.
	SuggestLimit int `koanf:"suggest_limit"`
}

// APIConfig holds API pagination and response settings
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds authentication and request limiting settings
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	BcryptCost        int           `koanf:"bcrypt_cost"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// LockoutMaxAttempts failed logins lock an account for LockoutDuration,
	// doubling on each repeat lockout. Zero disables lockout.
	LockoutMaxAttempts int           `koanf:"lockout_max_attempts"`
	LockoutDuration    time.Duration `koanf:"lockout_duration"`
}

// PosterConfig holds the OMDb poster lookup settings. Lookups are
// disabled when APIKey is empty.
//
// Environment Variables:
//   - OMDB_API_KEY: OMDb API key
//   - OMDB_URL: API base URL (default: http://www.omdbapi.com/)
//   - OMDB_TIMEOUT: per-request timeout (default: 5s)
//   - OMDB_RATE_LIMIT: requests per second (default: 5)
type PosterConfig struct {
	APIKey          string        `koanf:"api_key"`
	BaseURL         string        `koanf:"base_url"`
	Timeout         time.Duration `koanf:"timeout"`
	RateLimit       float64       `koanf:"rate_limit"`
	RateBurst       int           `koanf:"rate_burst"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// Enabled reports whether poster lookups are configured.
func (p PosterConfig) Enabled() bool {
	return p.APIKey != ""
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads configuration with LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
