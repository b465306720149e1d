// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ingest

import (
	"time"
)

// MovieRecord is one raw row of the movie CSV. Every field is the text as
// read; the Mapper parses and validates it.
type MovieRecord struct {
	Row         int64 // 1-based data row, header excluded
	Rank        string
	Title       string
	Genre       string // comma-separated
	Description string
	Director    string
	Actors      string // comma-separated
	Year        string
	Runtime     string // minutes
	Rating      string
	Votes       string
	Revenue     string // millions
	Metascore   string
}

// UserRecord is one raw row of the user CSV.
type UserRecord struct {
	Row      int64
	ID       string
	Username string
	Password string
}

// ImportStats holds statistics about a dataset load.
type ImportStats struct {
	// TotalRecords is the number of movie rows in the CSV.
	TotalRecords int64 `json:"total_records"`

	// Processed is the number of movie rows read (including skipped).
	Processed int64 `json:"processed"`

	// Imported is the number of movies indexed.
	Imported int64 `json:"imported"`

	// Skipped is the number of movie rows rejected by the mapper or cut by
	// the movie cap.
	Skipped int64 `json:"skipped"`

	// Errors is the number of movies the indexer refused.
	Errors int64 `json:"errors"`

	UsersImported int64 `json:"users_imported"`
	UsersSkipped  int64 `json:"users_skipped"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time,omitempty"`

	// LastProcessedRow is the last movie row read.
	LastProcessedRow int64 `json:"last_processed_row"`
}

// Duration returns the duration of the load.
func (s *ImportStats) Duration() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Progress returns the load progress as a percentage (0-100).
func (s *ImportStats) Progress() float64 {
	if s.TotalRecords == 0 {
		return 0
	}
	return float64(s.Processed) / float64(s.TotalRecords) * 100
}

// RecordsPerSecond returns the load rate.
func (s *ImportStats) RecordsPerSecond() float64 {
	duration := s.Duration().Seconds()
	if duration == 0 {
		return 0
	}
	return float64(s.Processed) / duration
}

// ProgressSummary is the JSON view of ImportStats.
type ProgressSummary struct {
	Status         string    `json:"status"`
	Progress       float64   `json:"progress"`
	TotalRecords   int64     `json:"total_records"`
	Processed      int64     `json:"processed"`
	Imported       int64     `json:"imported"`
	Skipped        int64     `json:"skipped"`
	Errors         int64     `json:"errors"`
	UsersImported  int64     `json:"users_imported"`
	UsersSkipped   int64     `json:"users_skipped"`
	RecordsPerSec  float64   `json:"records_per_second"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	StartTime      time.Time `json:"start_time"`
}

// ToSummary converts ImportStats to a ProgressSummary.
func (s *ImportStats) ToSummary(running bool) *ProgressSummary {
	summary := &ProgressSummary{
		Progress:       s.Progress(),
		TotalRecords:   s.TotalRecords,
		Processed:      s.Processed,
		Imported:       s.Imported,
		Skipped:        s.Skipped,
		Errors:         s.Errors,
		UsersImported:  s.UsersImported,
		UsersSkipped:   s.UsersSkipped,
		RecordsPerSec:  s.RecordsPerSecond(),
		ElapsedSeconds: s.Duration().Seconds(),
		StartTime:      s.StartTime,
	}

	switch {
	case running:
		summary.Status = "running"
	case s.EndTime.IsZero():
		summary.Status = "pending"
	default:
		summary.Status = "completed"
	}
	return summary
}
