// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/ingest"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/poster"
	"github.com/tomtom215/marquee/internal/repository"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("movies_csv", cfg.Dataset.MoviesPath).
		Str("users_csv", cfg.Dataset.UsersPath).
		Msg("Starting Marquee")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Strs("origins", cfg.Security.CORSOrigins).Msg("CORS allows any origin; restrict CORS_ORIGINS before exposing the API")
	}

	if cfg.Security.JWTSecret == "" {
		secret, err := ephemeralSecret()
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to generate JWT secret")
		}
		cfg.Security.JWTSecret = secret
		logging.Warn().Msg("JWT_SECRET not set; using an ephemeral secret, tokens will not survive a restart")
	}

	repo := repository.New(repository.WithRankBounds(cfg.Catalog.FirstRank, cfg.Catalog.LastRank))

	tokens, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	authSvc, err := auth.NewService(repo, &cfg.Security, tokens)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize auth service")
	}

	var posters catalog.PosterLookup
	if cfg.Poster.Enabled() {
		client := poster.NewClient(&cfg.Poster)
		defer client.Close()
		posters = client
		logging.Info().Str("base_url", cfg.Poster.BaseURL).Msg("Poster lookups enabled")
	} else {
		logging.Info().Msg("Poster lookups disabled (OMDB_API_KEY not set)")
	}

	catalogSvc := catalog.NewService(repo, &cfg.Catalog, posters)
	defer catalogSvc.Close()

	importer := ingest.NewImporter(&cfg.Dataset, &cfg.Ingest, repo, authSvc.Hasher())

	handler := api.NewHandler(catalogSvc, authSvc, cfg,
		api.WithImportStatus(importer),
		api.WithVersion(version),
	)
	router := api.NewRouter(handler, auth.NewMiddleware(tokens),
		api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// sutureslog needs slog; the adapter forwards to zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewImportService(importer, cfg.Ingest.AutoStart, catalogSvc.InvalidateCaches))
	tree.AddDataService(services.NewCatalogMetricsService(catalogSvc, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Marquee stopped")
}

// ephemeralSecret returns a random 48-byte secret for development runs.
func ephemeralSecret() (string, error) {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawStdEncoding.EncodeToString(buf), nil
}
