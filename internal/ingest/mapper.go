// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

// Mapper converts MovieRecords to models.Movie.
//
// Actors are interned by name so a performer appearing in several movies is
// one *models.Actor, which lets colleague links accumulate across the
// dataset.
type Mapper struct {
	linkColleagues bool

	mu     sync.Mutex
	actors map[string]*models.Actor
}

// NewMapper creates a mapper. With linkColleagues set, every pair of actors
// sharing a movie is registered as colleagues in both directions.
func NewMapper(linkColleagues bool) *Mapper {
	return &Mapper{
		linkColleagues: linkColleagues,
		actors:         make(map[string]*models.Actor),
	}
}

// ValidateRecord reports why rec cannot become a movie, or nil.
func (m *Mapper) ValidateRecord(rec *MovieRecord) error {
	rank, err := strconv.Atoi(strings.TrimSpace(rec.Rank))
	if err != nil {
		return fmt.Errorf("row %d: rank %q: %w", rec.Row, rec.Rank, err)
	}
	if rank <= 0 {
		return fmt.Errorf("row %d: rank %d is not positive", rec.Row, rank)
	}
	if strings.TrimSpace(rec.Title) == "" {
		return fmt.Errorf("row %d: title is empty", rec.Row)
	}
	return nil
}

// FilterValidRecords returns the records that pass ValidateRecord and the
// number skipped.
func (m *Mapper) FilterValidRecords(records []MovieRecord) ([]MovieRecord, int) {
	valid := make([]MovieRecord, 0, len(records))
	skipped := 0
	for i := range records {
		if err := m.ValidateRecord(&records[i]); err != nil {
			logging.Debug().Err(err).Msg("Skipping movie record")
			skipped++
			continue
		}
		valid = append(valid, records[i])
	}
	return valid, skipped
}

// ToMovie converts a validated record. Optional numeric fields that do not
// parse are left unset; a bad year leaves the release year unset.
func (m *Mapper) ToMovie(rec *MovieRecord) *models.Movie {
	year, _ := strconv.Atoi(strings.TrimSpace(rec.Year))
	movie := models.NewMovie(rec.Title, year)

	rank, _ := strconv.Atoi(strings.TrimSpace(rec.Rank))
	movie.SetRank(rank)
	movie.SetDescription(rec.Description)

	if d := models.NewDirector(rec.Director); d.Valid() {
		movie.SetDirector(d)
	}
	for _, name := range SplitList(rec.Genre) {
		movie.AddGenre(models.NewGenre(name))
	}

	cast := make([]*models.Actor, 0, 4)
	for _, name := range SplitList(rec.Actors) {
		a := m.actor(name)
		movie.AddActor(a)
		cast = append(cast, a)
	}
	if m.linkColleagues {
		linkCast(cast)
	}

	m.mapMetrics(movie, rec)
	return movie
}

// ToMovies converts validated records in order.
func (m *Mapper) ToMovies(records []MovieRecord) []*models.Movie {
	movies := make([]*models.Movie, 0, len(records))
	for i := range records {
		movies = append(movies, m.ToMovie(&records[i]))
	}
	return movies
}

// mapMetrics fills runtime, rating, votes, revenue and metascore.
func (m *Mapper) mapMetrics(movie *models.Movie, rec *MovieRecord) {
	if v := strings.TrimSpace(rec.Runtime); v != "" {
		minutes, err := strconv.Atoi(v)
		if err == nil {
			err = movie.SetRuntimeMinutes(minutes)
		}
		if err != nil {
			logging.Debug().Err(err).Int64("row", rec.Row).Str("runtime", v).Msg("Ignoring runtime")
		}
	}
	if f, ok := parseFloat(rec.Rating); ok {
		movie.SetRating(f)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(rec.Votes)); err == nil {
		movie.SetVotes(n)
	}
	if f, ok := parseFloat(rec.Revenue); ok {
		movie.SetRevenue(f)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(rec.Metascore)); err == nil {
		movie.SetMetascore(n)
	}
}

// actor returns the interned actor for name.
func (m *Mapper) actor(name string) *models.Actor {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.actors[name]; ok {
		return a
	}
	a := models.NewActor(name)
	m.actors[name] = a
	return a
}

// ActorCount returns the number of distinct actors seen.
func (m *Mapper) ActorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.actors)
}

func linkCast(cast []*models.Actor) {
	for i, a := range cast {
		for j, b := range cast {
			if i != j && !a.WorkedWith(b) {
				a.AddColleague(b)
			}
		}
	}
}

// SplitList splits a comma-separated field, trims each value and drops
// empty ones. Case is preserved.
func SplitList(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
