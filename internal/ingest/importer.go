// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/repository"
)

// ErrImportRunning is returned when Import is called during a load.
var ErrImportRunning = errors.New("import already in progress")

// PasswordHasher hashes plain-text passwords read from the user CSV.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Importer loads the movie and user CSV files into a repository.
type Importer struct {
	dataset *config.DatasetConfig
	cfg     *config.IngestConfig
	repo    repository.Repository
	indexer *repository.Indexer
	hasher  PasswordHasher
	mapper  *Mapper

	mu        sync.RWMutex
	running   bool
	completed bool
	stats     *ImportStats
	stopChan  chan struct{}
}

// NewImporter creates a loader writing to repo. hasher may be nil when
// cfg.PasswordsHashed is set or no users file is configured.
func NewImporter(dataset *config.DatasetConfig, cfg *config.IngestConfig, repo repository.Repository, hasher PasswordHasher) *Importer {
	return &Importer{
		dataset:  dataset,
		cfg:      cfg,
		repo:     repo,
		indexer:  repository.NewIndexer(repo),
		hasher:   hasher,
		mapper:   NewMapper(cfg.LinkColleagues),
		stopChan: make(chan struct{}),
	}
}

// Import reads the movie CSV in batches, indexes every valid movie, then
// loads users. It blocks until the load completes, fails or is stopped.
func (i *Importer) Import(ctx context.Context) (*ImportStats, error) {
	i.mu.Lock()
	if i.running {
		i.mu.Unlock()
		return nil, ErrImportRunning
	}
	i.running = true
	i.stats = &ImportStats{StartTime: time.Now()}
	stopChan := i.stopChan
	i.mu.Unlock()

	err := i.run(ctx, stopChan)

	i.mu.Lock()
	i.running = false
	i.stats.EndTime = time.Now()
	if err == nil {
		i.completed = true
	}
	duration := i.stats.Duration()
	i.mu.Unlock()

	metrics.RecordIngestRun(duration, err)
	return i.GetStats(), err
}

func (i *Importer) run(ctx context.Context, stopChan <-chan struct{}) error {
	reader, err := NewCSVReader()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Error closing CSV reader")
		}
	}()

	total, err := reader.LoadMovies(ctx, i.dataset.MoviesPath)
	if err != nil {
		return fmt.Errorf("load movies: %w", err)
	}
	i.mu.Lock()
	i.stats.TotalRecords = total
	i.mu.Unlock()

	logging.Info().
		Str("path", i.dataset.MoviesPath).
		Int64("total_records", total).
		Int("max_movies", i.cfg.MaxMovies).
		Msg("Starting movie import")
	i.logYearRange(ctx, reader)

	if err := i.processAllBatches(ctx, stopChan, reader); err != nil {
		return err
	}

	if strings.TrimSpace(i.dataset.UsersPath) != "" {
		if err := i.importUsers(ctx, reader); err != nil {
			return err
		}
	}

	stats := i.GetStats()
	logging.Info().
		Int64("imported", stats.Imported).
		Int64("skipped", stats.Skipped).
		Int64("errors", stats.Errors).
		Int64("users", stats.UsersImported).
		Int("actors", i.mapper.ActorCount()).
		Dur("duration", stats.Duration()).
		Msg("Import completed")
	return nil
}

func (i *Importer) processAllBatches(ctx context.Context, stopChan <-chan struct{}, reader *CSVReader) error {
	var lastRow int64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopChan:
			return fmt.Errorf("import canceled")
		default:
		}

		records, err := reader.ReadMovieBatch(ctx, lastRow, i.cfg.BatchSize)
		if err != nil {
			return fmt.Errorf("read batch: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		lastRow = i.processBatchAndUpdateStats(records)
	}
}

// processBatchAndUpdateStats indexes one batch and returns its last row.
func (i *Importer) processBatchAndUpdateStats(records []MovieRecord) int64 {
	valid, skipped := i.mapper.FilterValidRecords(records)
	imported, capped, failed := i.indexMovies(i.mapper.ToMovies(valid))
	skipped += capped

	i.mu.Lock()
	i.stats.Processed += int64(len(records))
	i.stats.Imported += int64(imported)
	i.stats.Skipped += int64(skipped)
	i.stats.Errors += int64(failed)
	i.stats.LastProcessedRow = records[len(records)-1].Row
	stats := *i.stats
	i.mu.Unlock()

	metrics.RecordIngestRecords("movie", "imported", imported)
	metrics.RecordIngestRecords("movie", "skipped", skipped)
	metrics.RecordIngestRecords("movie", "error", failed)

	logging.Debug().
		Float64("progress_percent", stats.Progress()).
		Int64("processed", stats.Processed).
		Int64("total_records", stats.TotalRecords).
		Int64("imported", stats.Imported).
		Float64("records_per_second", stats.RecordsPerSecond()).
		Msg("Import progress")

	return stats.LastProcessedRow
}

// indexMovies indexes movies until the movie cap is reached. Movies past
// the cap are counted as capped.
func (i *Importer) indexMovies(movies []*models.Movie) (imported, capped, failed int) {
	for _, m := range movies {
		if i.cfg.MaxMovies > 0 && i.repo.GetNumberOfMovies() >= i.cfg.MaxMovies {
			capped++
			continue
		}
		if err := i.indexer.Index(m); err != nil {
			logging.Error().Err(err).Str("movie", m.String()).Msg("Failed to index movie")
			failed++
			continue
		}
		imported++
	}
	return imported, capped, failed
}

// importUsers registers every user row whose username is new.
func (i *Importer) importUsers(ctx context.Context, reader *CSVReader) error {
	if _, err := reader.LoadUsers(ctx, i.dataset.UsersPath); err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	records, err := reader.ReadUsers(ctx)
	if err != nil {
		return err
	}

	var imported, skipped int
	for _, rec := range records {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		user, err := i.toUser(rec)
		if err != nil {
			logging.Warn().Err(err).Int64("row", rec.Row).Msg("Skipping user record")
			skipped++
			continue
		}
		if i.repo.GetUser(user.Username()) != nil {
			logging.Debug().Str("username", user.Username()).Msg("Skipping duplicate user")
			skipped++
			continue
		}
		i.repo.AddUser(user)
		imported++
	}

	i.mu.Lock()
	i.stats.UsersImported += int64(imported)
	i.stats.UsersSkipped += int64(skipped)
	i.mu.Unlock()

	metrics.RecordIngestRecords("user", "imported", imported)
	metrics.RecordIngestRecords("user", "skipped", skipped)
	logging.Info().Int("imported", imported).Int("skipped", skipped).Msg("Users imported")
	return nil
}

func (i *Importer) toUser(rec UserRecord) (*models.User, error) {
	username := strings.TrimSpace(rec.Username)
	if username == "" {
		return nil, fmt.Errorf("row %d: username is empty", rec.Row)
	}
	if rec.Password == "" {
		return nil, fmt.Errorf("row %d: password is empty", rec.Row)
	}
	if i.cfg.PasswordsHashed {
		return models.NewUser(username, rec.Password), nil
	}
	if i.hasher == nil {
		return nil, fmt.Errorf("row %d: no password hasher configured", rec.Row)
	}
	hash, err := i.hasher.Hash(rec.Password)
	if err != nil {
		return nil, fmt.Errorf("row %d: hash password: %w", rec.Row, err)
	}
	return models.NewUser(username, hash), nil
}

func (i *Importer) logYearRange(ctx context.Context, reader *CSVReader) {
	earliest, latest, err := reader.GetYearRange(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to get dataset year range")
		return
	}
	logging.Info().Int("earliest", earliest).Int("latest", latest).Msg("Dataset year range")
}

// Stop cancels a running import.
func (i *Importer) Stop() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.running {
		return fmt.Errorf("no import in progress")
	}

	close(i.stopChan)
	i.stopChan = make(chan struct{})
	return nil
}

// GetStats returns a copy of the current import statistics.
func (i *Importer) GetStats() *ImportStats {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.stats == nil {
		return &ImportStats{}
	}
	stats := *i.stats
	return &stats
}

// IsRunning returns whether an import is currently in progress.
func (i *Importer) IsRunning() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.running
}

// Completed reports whether an import has finished without error.
func (i *Importer) Completed() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.completed
}
