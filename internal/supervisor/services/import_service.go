// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/ingest"
	"github.com/tomtom215/marquee/internal/logging"
)

// Importer is the lifecycle of the dataset loader. *ingest.Importer
// satisfies it.
type Importer interface {
	Import(ctx context.Context) (*ingest.ImportStats, error)
	IsRunning() bool
	Completed() bool
	Stop() error
}

// ImportService runs the dataset import once under supervision.
//
// With autoStart the import runs when the service starts; on success
// onComplete is called and the service idles until shutdown. A failed
// import is not retried: the repository may hold a partial load, so the
// service returns suture.ErrDoNotRestart and readiness stays false.
type ImportService struct {
	importer   Importer
	name       string
	autoStart  bool
	onComplete func()
}

// NewImportService creates a new import service wrapper. onComplete may be nil.
func NewImportService(importer Importer, autoStart bool, onComplete func()) *ImportService {
	return &ImportService{
		importer:   importer,
		name:       "dataset-import",
		autoStart:  autoStart,
		onComplete: onComplete,
	}
}

// Serve implements suture.Service.
func (s *ImportService) Serve(ctx context.Context) error {
	if s.autoStart && !s.importer.Completed() {
		if err := s.runImport(ctx); err != nil {
			return err
		}
	} else if !s.autoStart {
		logging.Info().Msg("Dataset import disabled (ingest.auto_start=false)")
	}

	<-ctx.Done()

	if s.importer.IsRunning() {
		logging.Info().Msg("Stopping running import due to shutdown")
		if err := s.importer.Stop(); err != nil {
			logging.Warn().Err(err).Msg("Failed to stop import")
		}
	}
	return ctx.Err()
}

func (s *ImportService) runImport(ctx context.Context) error {
	logging.Info().Msg("Starting dataset import")
	stats, err := s.importer.Import(ctx)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		logging.Info().Msg("Import canceled due to shutdown")
		return ctx.Err()
	case errors.Is(err, ingest.ErrImportRunning):
		logging.Warn().Msg("Import already running, waiting for shutdown")
		return nil
	default:
		logging.Error().Err(err).Msg("Dataset import failed; catalog will not become ready")
		return suture.ErrDoNotRestart
	}

	if s.onComplete != nil {
		s.onComplete()
	}
	if stats != nil {
		logging.Info().
			Int64("imported", stats.Imported).
			Int64("users", stats.UsersImported).
			Dur("duration", stats.Duration()).
			Msg("Dataset ready")
	}
	return nil
}

// String implements fmt.Stringer for suture logging.
func (s *ImportService) String() string {
	return s.name
}
