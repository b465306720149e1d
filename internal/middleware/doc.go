// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request counter, duration histogram, in-flight gauge
  - AccessLog: one structured log line per request

Metrics and access logs label requests by chi route pattern, so both must
run inside a chi router:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
