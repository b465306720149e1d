// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config loads and validates Marquee configuration.

# Configuration Sources

Values are layered with Koanf v2, later layers winning:

 1. Defaults from defaultConfig
 2. A YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/marquee/config.yaml or /etc/marquee/config.yml
 3. Environment variables listed in envMappings

# Sections

  - server: listen address, timeouts, environment
  - dataset: movie and user CSV paths
  - ingest: batch size, movie cap, colleague linking, pre-hashed passwords
  - catalog: first/last rank bounds, facet cache TTL, suggestion limit
  - api: page sizes
  - security: JWT secret, session timeout, bcrypt cost, rate limit, CORS
  - poster: OMDb key, rate limit, cache TTL, circuit breaker
  - logging: level, format, caller

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT
	MOVIES_CSV, USERS_CSV
	INGEST_AUTO_START, INGEST_BATCH_SIZE, INGEST_MAX_MOVIES,
	INGEST_LINK_COLLEAGUES, INGEST_PASSWORDS_HASHED
	CATALOG_FIRST_RANK, CATALOG_LAST_RANK, CATALOG_FACET_CACHE_TTL,
	CATALOG_SUGGEST_LIMIT
	API_DEFAULT_PAGE_SIZE, API_MAX_PAGE_SIZE
	JWT_SECRET, SESSION_TIMEOUT, BCRYPT_COST, RATE_LIMIT_REQUESTS,
	RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
	OMDB_API_KEY, OMDB_URL, OMDB_TIMEOUT, OMDB_RATE_LIMIT, OMDB_RATE_BURST,
	OMDB_CACHE_TTL, OMDB_BREAKER_FAILURES, OMDB_BREAKER_TIMEOUT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	repo := repository.New(repository.WithRankBounds(cfg.Catalog.FirstRank, cfg.Catalog.LastRank))
*/
package config
