// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Repository operations and catalog size
// - Dataset ingestion
// - API endpoint latency and throughput
// - Poster lookups and their circuit breaker
// - Cache efficiency

var (
	// Repository Metrics
	RepositoryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_repository_operations_total",
			Help: "Total number of repository operations",
		},
		[]string{"operation", "result"}, // result: "hit", "miss", "ok", "error"
	)

	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_catalog_movies",
			Help: "Number of movies registered in the repository",
		},
	)

	CatalogUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_catalog_users",
			Help: "Number of users registered in the repository",
		},
	)

	CatalogReviews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_catalog_reviews",
			Help: "Number of reviews registered in the repository",
		},
	)

	// Ingest Metrics
	IngestRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_ingest_records_total",
			Help: "Total number of dataset records processed by the loader",
		},
		[]string{"kind", "result"}, // kind: "movie", "user"; result: "loaded", "skipped", "error"
	)

	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marquee_ingest_duration_seconds",
			Help:    "Duration of a full dataset load in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	IngestLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_ingest_last_success_timestamp",
			Help: "Unix timestamp of the last successful dataset load",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// Poster Lookup Metrics
	PosterLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_poster_lookups_total",
			Help: "Total number of poster lookups",
		},
		[]string{"result"}, // "cache_hit", "found", "not_found", "error"
	)

	PosterLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marquee_poster_lookup_duration_seconds",
			Help:    "Duration of upstream poster lookups in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "marquee_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)
)

// RecordRepositoryOp records one repository operation outcome.
func RecordRepositoryOp(operation, result string) {
	RepositoryOperations.WithLabelValues(operation, result).Inc()
}

// UpdateCatalogSize sets the catalog size gauges.
func UpdateCatalogSize(movies, users, reviews int) {
	CatalogMovies.Set(float64(movies))
	CatalogUsers.Set(float64(users))
	CatalogReviews.Set(float64(reviews))
}

// RecordIngestRecords adds n records of kind with the given result.
func RecordIngestRecords(kind, result string, n int) {
	if n <= 0 {
		return
	}
	IngestRecords.WithLabelValues(kind, result).Add(float64(n))
}

// RecordIngestRun records a completed dataset load.
func RecordIngestRun(duration time.Duration, err error) {
	IngestDuration.Observe(duration.Seconds())
	if err == nil {
		IngestLastSuccess.Set(float64(time.Now().Unix()))
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPosterLookup records a poster lookup outcome. A zero duration
// (cache hits) is not observed.
func RecordPosterLookup(result string, duration time.Duration) {
	PosterLookups.WithLabelValues(result).Inc()
	if duration > 0 {
		PosterLookupDuration.Observe(duration.Seconds())
	}
}

// RecordCacheLookup records a hit or miss for the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}
