// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSMaxAge         int // seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// DefaultChiMiddlewareConfig returns a configuration with no CORS origins
// and 100 requests per minute per client IP.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		CORSMaxAge:         86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// NewChiMiddlewareConfig builds the middleware configuration from the
// security settings.
func NewChiMiddlewareConfig(sec *config.SecurityConfig) *ChiMiddlewareConfig {
	cfg := DefaultChiMiddlewareConfig()
	if sec == nil {
		return cfg
	}
	cfg.CORSAllowedOrigins = sec.CORSOrigins
	if sec.RateLimitReqs > 0 {
		cfg.RateLimitRequests = sec.RateLimitReqs
	}
	if sec.RateLimitWindow > 0 {
		cfg.RateLimitWindow = sec.RateLimitWindow
	}
	cfg.RateLimitDisabled = sec.RateLimitDisabled
	return cfg
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(cfg *ChiMiddlewareConfig) *ChiMiddleware {
	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: cfg.CORSAllowedMethods,
		AllowedHeaders: cfg.CORSAllowedHeaders,
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         cfg.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: cfg,
		cors:   corsHandler,
	}
}

// CORS returns the go-chi/cors middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimitConfig defines rate limit parameters for specific endpoints.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

var (
	// RateLimitAuth applies to every /auth endpoint.
	RateLimitAuth = RateLimitConfig{Requests: 5, Window: time.Minute}

	// RateLimitLogin is stricter and stacks on RateLimitAuth.
	RateLimitLogin = RateLimitConfig{Requests: 5, Window: 5 * time.Minute}

	// RateLimitWrite covers review and watch list mutations.
	RateLimitWrite = RateLimitConfig{Requests: 30, Window: time.Minute}

	// RateLimitHealth is permissive for monitoring probes.
	RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}
)

func noopMiddleware(next http.Handler) http.Handler { return next }

// RateLimit returns the default per-IP limiter for the API.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitConfig{
		Requests: m.config.RateLimitRequests,
		Window:   m.config.RateLimitWindow,
	})
}

// RateLimitCustom returns a per-IP limiter with its own budget. All
// limiters are disabled together by RateLimitDisabled.
func (m *ChiMiddleware) RateLimitCustom(rl RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return noopMiddleware
	}

	return httprate.Limit(
		rl.Requests,
		rl.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// RateLimitAuth returns the limiter for authentication endpoints.
func (m *ChiMiddleware) RateLimitAuth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitAuth)
}

// RateLimitLogin returns the limiter for the login endpoint.
func (m *ChiMiddleware) RateLimitLogin() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitLogin)
}

// RateLimitWrite returns the limiter for mutating endpoints.
func (m *ChiMiddleware) RateLimitWrite() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitWrite)
}

// RateLimitHealth returns the limiter for health endpoints.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	logging.Ctx(r.Context()).Warn().
		Str("path", r.URL.Path).
		Str("remote_addr", r.RemoteAddr).
		Msg("Rate limit exceeded")
	respondError(w, http.StatusTooManyRequests, CodeRateLimited, "Too many requests, please retry later", nil)
}

// APISecurityHeaders adds security headers to API responses. HSTS is only
// sent for HTTPS requests, including those terminated at a proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
