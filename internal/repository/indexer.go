// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package repository

import (
	"errors"
	"fmt"

	"github.com/tomtom215/marquee/internal/models"
)

// ErrUnrankedMovie is returned when a movie without a positive rank is indexed.
var ErrUnrankedMovie = errors.New("movie has no rank")

// Indexer populates the rank, year, actor, director and genre indices
// from loaded movies.
type Indexer struct {
	repo Repository
}

// NewIndexer returns an Indexer writing to repo.
func NewIndexer(repo Repository) *Indexer {
	return &Indexer{repo: repo}
}

// Index registers m in one atomic step: movie list, rank, release year,
// year index, actor index, director index, genre index. Facet keys are
// the entity names already trimmed by the model constructors.
func (ix *Indexer) Index(m *models.Movie) error {
	if m == nil {
		return errors.New("nil movie")
	}
	rank := m.Rank()
	if rank <= 0 {
		return fmt.Errorf("%w: %s", ErrUnrankedMovie, m)
	}

	actors := names(m.Actors(), (*models.Actor).Name)
	genres := names(m.Genres(), (*models.Genre).Name)
	director := m.Director().Name()
	year := m.ReleaseYear()

	ix.repo.Batch(func(w IndexWriter) {
		w.AddMovie(m)
		w.AddMovieRank(rank, m)
		if m.HasReleaseYear() {
			w.AddReleaseYear(year)
			w.AddMovieWithReleaseYear(m, year)
		}
		w.AddMovieWithActors(m, actors)
		w.AddMovieWithDirector(m, director)
		w.AddMovieWithGenres(m, genres)
	})
	return nil
}

// IndexAll indexes movies in order and returns the number indexed. It
// stops at the first error.
func (ix *Indexer) IndexAll(movies []*models.Movie) (int, error) {
	for i, m := range movies {
		if err := ix.Index(m); err != nil {
			return i, fmt.Errorf("index movie %d: %w", i, err)
		}
	}
	return len(movies), nil
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if n := name(it); n != "" {
			out = append(out, n)
		}
	}
	return out
}
