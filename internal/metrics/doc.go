// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus instrumentation for Marquee.

All collectors are registered with the default registry through promauto
at package initialization and exposed by the API at /metrics.

Metric Families:

  - marquee_repository_*: repository operation outcomes
  - marquee_catalog_*: current movie, user and review counts
  - marquee_ingest_*: dataset loader throughput and duration
  - marquee_api_*: request count, latency and concurrency
  - marquee_poster_*: OMDb poster lookups
  - marquee_circuit_breaker_*: breaker state guarding poster lookups
  - marquee_cache_*: hit and miss counts per named cache

Usage:

	metrics.RecordAPIRequest("GET", "/api/v1/movies/{rank}", "200", elapsed)
	metrics.RecordRepositoryOp("get_movie", "hit")
*/
package metrics
