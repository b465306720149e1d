// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// CatalogStats reports catalog sizes. *catalog.Service satisfies it.
type CatalogStats interface {
	Stats() models.CatalogSize
}

// CatalogMetricsService publishes catalog sizes to the catalog gauges
// on a fixed interval.
type CatalogMetricsService struct {
	catalog  CatalogStats
	interval time.Duration
}

// NewCatalogMetricsService creates the refresher. A non-positive
// interval uses 30s.
func NewCatalogMetricsService(catalog CatalogStats, interval time.Duration) *CatalogMetricsService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CatalogMetricsService{catalog: catalog, interval: interval}
}

// Serve implements suture.Service.
func (s *CatalogMetricsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.publish()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.publish()
		}
	}
}

func (s *CatalogMetricsService) publish() {
	stats := s.catalog.Stats()
	metrics.UpdateCatalogSize(stats.Movies, stats.Users, stats.Reviews)
}

func (s *CatalogMetricsService) String() string {
	return "catalog-metrics"
}
