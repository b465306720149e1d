// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/ingest"
	"github.com/tomtom215/marquee/internal/models"
)

// Health handles health check requests. It always answers 200 while the
// process is serving; readiness is reported in the body.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats := h.catalog.Stats()
	status := "healthy"
	ready := h.ready()
	if !ready {
		status = "loading"
	}

	respondSuccess(w, http.StatusOK, models.HealthStatus{
		Status:  status,
		Ready:   ready,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Catalog: &stats,
	}, start)
}

// readiness is the body of /health/ready.
type readiness struct {
	Ready  bool                    `json:"ready"`
	Import *ingest.ProgressSummary `json:"import,omitempty"`
}

// HealthReady answers 503 until the dataset import has completed.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body := readiness{Ready: h.ready()}
	if h.importer != nil {
		if stats := h.importer.GetStats(); stats != nil {
			body.Import = stats.ToSummary(h.importer.IsRunning())
		}
	}

	if !body.Ready {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     body,
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    CodeNotReady,
				Message: "Dataset import has not completed",
			},
		})
		return
	}
	respondSuccess(w, http.StatusOK, body, start)
}
