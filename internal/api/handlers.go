// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"time"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/ingest"
)

// ImportStatus reports the progress of the dataset load.
// *ingest.Importer satisfies it.
type ImportStatus interface {
	Completed() bool
	IsRunning() bool
	GetStats() *ingest.ImportStats
}

// Handler serves the catalog, auth and watch list endpoints.
type Handler struct {
	catalog  *catalog.Service
	auth     *auth.Service
	importer ImportStatus
	apiCfg   config.APIConfig

	startTime time.Time
	version   string
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithImportStatus gates readiness on the dataset import.
func WithImportStatus(s ImportStatus) HandlerOption {
	return func(h *Handler) { h.importer = s }
}

// WithVersion sets the version reported by /health.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// NewHandler creates a new Handler. Without an ImportStatus the service
// is ready as soon as it starts.
func NewHandler(cat *catalog.Service, authSvc *auth.Service, cfg *config.Config, opts ...HandlerOption) *Handler {
	apiCfg := config.APIConfig{DefaultPageSize: 20, MaxPageSize: 100}
	if cfg != nil {
		if cfg.API.DefaultPageSize > 0 {
			apiCfg.DefaultPageSize = cfg.API.DefaultPageSize
		}
		if cfg.API.MaxPageSize > 0 {
			apiCfg.MaxPageSize = cfg.API.MaxPageSize
		}
	}

	h := &Handler{
		catalog:   cat,
		auth:      authSvc,
		apiCfg:    apiCfg,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ready reports whether the dataset has finished loading.
func (h *Handler) ready() bool {
	return h.importer == nil || h.importer.Completed()
}
