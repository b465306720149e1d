// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"
)

// APIResponse is the wrapper for every HTTP response.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
//	{
//	  "status": "success",
//	  "data": {"rank": 2, "title": "Prometheus"},
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z", "query_time_ms": 1}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache information for a response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	Count       *int      `json:"count,omitempty"`
}

// APIError describes a failed request.
//
// Codes in use: NOT_FOUND, VALIDATION_ERROR, CONFLICT, UNAUTHORIZED,
// RATE_LIMIT_EXCEEDED, NOT_READY, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

// HealthStatus reports process liveness and catalog readiness.
type HealthStatus struct {
	Status  string       `json:"status"`
	Ready   bool         `json:"ready"`
	Version string       `json:"version,omitempty"`
	Uptime  float64      `json:"uptime_seconds"`
	Catalog *CatalogSize `json:"catalog,omitempty"`
}

// CatalogSize summarizes repository contents.
type CatalogSize struct {
	Movies  int `json:"movies"`
	Users   int `json:"users"`
	Reviews int `json:"reviews"`
	Years   int `json:"years"`
	Genres  int `json:"genres"`
}
