// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil ChiMiddleware uses the defaults.
func NewRouter(handler *Handler, authMw *auth.Middleware, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		auth:          authMw,
		chiMiddleware: chiMw,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		r.Route("/health", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitHealth())
			r.Get("/", router.handler.Health)
			r.Get("/ready", router.handler.HealthReady)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitAuth())
			r.Post("/register", router.handler.Register)
			r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(chimiddleware.Timeout(30 * time.Second))

			r.Route("/movies", func(r chi.Router) {
				r.Get("/", router.handler.Movies)
				r.Get("/first", router.handler.FirstMovie)
				r.Get("/last", router.handler.LastMovie)
				r.Get("/batch", router.handler.MoviesBatch)
				r.Get("/{rank}", router.handler.Movie)
				r.Get("/{rank}/reviews", router.handler.MovieReviews)
				r.With(router.auth.RequireAuth, router.chiMiddleware.RateLimitWrite()).
					Post("/{rank}/reviews", router.handler.AddReview)
			})

			r.Get("/years", router.handler.Years)
			r.Get("/years/{year}/movies", router.handler.MoviesForYear)
			r.Get("/genres", router.handler.Genres)
			r.Get("/genres/{genre}/movies", router.handler.MoviesForGenre)
			r.Get("/actors/{name}/movies", router.handler.MoviesForActor)
			r.Get("/directors/{name}/movies", router.handler.MoviesForDirector)
			r.Get("/search", router.handler.Search)
			r.Get("/suggest", router.handler.Suggest)

			r.Route("/me", func(r chi.Router) {
				r.Use(router.auth.RequireAuth)
				r.Get("/", router.handler.Me)
				r.Get("/watchlist", router.handler.WatchList)
				r.Get("/watched", router.handler.Watched)
				r.Group(func(r chi.Router) {
					r.Use(router.chiMiddleware.RateLimitWrite())
					r.Post("/watchlist", router.handler.AddToWatchList)
					r.Delete("/watchlist/{rank}", router.handler.RemoveFromWatchList)
					r.Post("/watched", router.handler.MarkWatched)
				})
			})
		})
	})

	return r
}
