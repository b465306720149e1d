// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package repository

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/tomtom215/marquee/internal/models"
)

// syntheticYear spreads 1000 ranks over 2006-2016 with 297 movies in 2016.
func syntheticYear(rank int) int {
	switch {
	case rank == 1:
		return 2014
	case rank == 2:
		return 2012
	case rank <= 298 || rank == 1000:
		return 2016
	default:
		return 2006 + rank%10
	}
}

func syntheticCatalog(t *testing.T) []*models.Movie {
	t.Helper()
	titles := map[int]string{1: "Guardians of the Galaxy", 2: "Prometheus", 3: "Split", 1000: "Nine Lives"}
	movies := make([]*models.Movie, 0, 1000)
	for rank := 1; rank <= 1000; rank++ {
		title, ok := titles[rank]
		if !ok {
			title = fmt.Sprintf("Movie %d", rank)
		}
		m := models.NewMovie(title, syntheticYear(rank))
		m.SetRank(rank)
		m.SetDirector(models.NewDirector(fmt.Sprintf("Director %d", rank%50)))
		m.AddActor(models.NewActor(fmt.Sprintf("Actor %d", rank%200)))
		m.AddGenre(models.NewGenre([]string{"Drama", "Action", "Comedy"}[rank%3]))
		movies = append(movies, m)
	}
	return movies
}

func TestIndexAll_ReferenceDataset(t *testing.T) {
	t.Parallel()
	repo := New()
	n, err := NewIndexer(repo).IndexAll(syntheticCatalog(t))
	if err != nil {
		t.Fatalf("IndexAll error = %v", err)
	}
	if n != 1000 || repo.GetNumberOfMovies() != 1000 {
		t.Fatalf("indexed %d, repository holds %d", n, repo.GetNumberOfMovies())
	}

	if got := repo.GetFirstMovie(); got.Title() != "Guardians of the Galaxy" || got.ReleaseYear() != 2014 {
		t.Errorf("GetFirstMovie() = %v", got)
	}
	if got := repo.GetLastMovie(); got.Title() != "Nine Lives" || got.ReleaseYear() != 2016 {
		t.Errorf("GetLastMovie() = %v", got)
	}

	years := repo.GetYearList()
	if len(years) != 11 || years[0] != 2006 || years[len(years)-1] != 2016 {
		t.Errorf("GetYearList() = %v", years)
	}

	ranks, ok := repo.GetMoviesWithYear(2016)
	if !ok || len(ranks) != 297 {
		t.Errorf("2016 has %d movies, want 297", len(ranks))
	}
	if !slices.Contains(ranks, 3) || !slices.Contains(ranks, 1000) {
		t.Error("2016 bucket should contain Split and Nine Lives")
	}
	if _, ok := repo.GetMoviesWithYear(2020); ok {
		t.Error("2020 should be unknown")
	}

	movies, err := repo.GetMoviesByRank(ranks)
	if err != nil {
		t.Fatalf("GetMoviesByRank error = %v", err)
	}
	for _, m := range movies {
		if m.ReleaseYear() != 2016 {
			t.Fatalf("%v is not from 2016", m)
		}
	}
}

func TestIndex_EveryFacetConsistent(t *testing.T) {
	t.Parallel()
	repo := New()
	movies := syntheticCatalog(t)
	if _, err := NewIndexer(repo).IndexAll(movies); err != nil {
		t.Fatalf("IndexAll error = %v", err)
	}

	for _, m := range movies {
		rank := m.Rank()
		if repo.GetMovie(rank) != m {
			t.Fatalf("rank %d does not resolve to its movie", rank)
		}
		if r, _ := repo.GetMoviesWithDirector(m.Director().Name()); !slices.Contains(r, rank) {
			t.Fatalf("rank %d missing from director bucket", rank)
		}
		for _, a := range m.Actors() {
			if r, _ := repo.GetMoviesWithActor(a.Name()); !slices.Contains(r, rank) {
				t.Fatalf("rank %d missing from actor bucket %q", rank, a.Name())
			}
		}
		for _, g := range m.Genres() {
			if r, _ := repo.GetMoviesWithGenre(g.Name()); !slices.Contains(r, rank) {
				t.Fatalf("rank %d missing from genre bucket %q", rank, g.Name())
			}
		}
	}
}

func TestIndex_Errors(t *testing.T) {
	t.Parallel()
	repo := New()
	ix := NewIndexer(repo)

	if err := ix.Index(nil); err == nil {
		t.Error("Index(nil) should fail")
	}

	unranked := models.NewMovie("Unranked", 2010)
	if err := ix.Index(unranked); !errors.Is(err, ErrUnrankedMovie) {
		t.Errorf("Index(unranked) error = %v, want ErrUnrankedMovie", err)
	}

	ok := models.NewMovie("Ranked", 2010)
	ok.SetRank(1)
	n, err := ix.IndexAll([]*models.Movie{ok, unranked})
	if n != 1 || !errors.Is(err, ErrUnrankedMovie) {
		t.Errorf("IndexAll = %d, %v", n, err)
	}
	if repo.GetNumberOfMovies() != 1 {
		t.Errorf("repository holds %d movies, want 1", repo.GetNumberOfMovies())
	}
}

func TestIndex_MovieWithoutYear(t *testing.T) {
	t.Parallel()
	repo := New()
	m := models.NewMovie("Undated", 0)
	m.SetRank(1)
	m.AddGenre(models.NewGenre("Drama"))

	if err := NewIndexer(repo).Index(m); err != nil {
		t.Fatalf("Index error = %v", err)
	}
	if len(repo.GetYearList()) != 0 {
		t.Errorf("GetYearList() = %v, want empty", repo.GetYearList())
	}
	if r, ok := repo.GetMoviesWithGenre("Drama"); !ok || !slices.Equal(r, []int{1}) {
		t.Errorf("genre bucket = %v, %v", r, ok)
	}
}
