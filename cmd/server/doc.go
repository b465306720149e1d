// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee loads a ranked movie dataset and a user list into memory, indexes
movies by release year, actor, director and genre, and serves the catalog
over a JSON API with user registration, reviews, watch lists and watch
history.

# Application Architecture

Long-running components run under a Suture v4 supervisor tree:

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   ├── dataset-import (one-shot CSV load, not restarted on failure)
	│   └── catalog-metrics (publishes catalog size gauges)
	└── APISupervisor ("api-layer")
	    └── http-server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file and environment
 2. Logging: zerolog with JSON or console output
 3. Repository: in-memory indices with optional first/last rank bounds
 4. Authentication: bcrypt hashing, JWT sessions, login lockout
 5. Posters: optional OMDb client with circuit breaker and rate limiter
 6. Catalog: query service with facet cache
 7. Importer: DuckDB-backed CSV reader feeding the indexer
 8. HTTP Server: chi router with CORS, rate limiting and metrics
 9. Supervisor Tree: starts everything and blocks until shutdown

The API answers /api/v1/health immediately. /api/v1/health/ready returns
503 until the import has completed.

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=8080               # HTTP listen port
	ENVIRONMENT=development      # production enforces JWT_SECRET
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Dataset
	MOVIES_CSV=data/movies.csv
	USERS_CSV=data/users.csv
	INGEST_MAX_MOVIES=0          # 0 loads every row

	# Security
	JWT_SECRET=<32+ chars>       # generated per process when unset outside production
	CORS_ORIGINS=*
	DISABLE_RATE_LIMIT=false

	# Posters (optional)
	OMDB_API_KEY=<api-key>

CONFIG_PATH points at an explicit YAML file.

# Signal Handling

The server shuts down on SIGINT and SIGTERM:

 1. The supervisor tree cancels every service context
 2. The HTTP server drains in-flight requests
 3. A running import is stopped
 4. Services that failed to stop in time are logged

# Usage Examples

Development:

	export LOG_FORMAT=console MOVIES_CSV=./movies.csv USERS_CSV=./users.csv
	go run ./cmd/server

Production:

	export ENVIRONMENT=production
	export JWT_SECRET=$(openssl rand -base64 48)
	export CORS_ORIGINS=https://marquee.example
	./marquee

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/ingest: Dataset loading
  - internal/catalog: Query service
*/
package main
