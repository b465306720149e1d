// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package repository

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/tomtom215/marquee/internal/models"
)

// newTestMovie builds a ranked movie with a director, cast and genres.
func newTestMovie(t *testing.T, rank int, title string, year int, director string, actors, genres []string) *models.Movie {
	t.Helper()
	m := models.NewMovie(title, year)
	m.SetRank(rank)
	m.SetDirector(models.NewDirector(director))
	for _, a := range actors {
		m.AddActor(models.NewActor(a))
	}
	for _, g := range genres {
		m.AddGenre(models.NewGenre(g))
	}
	if err := m.SetRuntimeMinutes(100 + rank); err != nil {
		t.Fatalf("SetRuntimeMinutes: %v", err)
	}
	return m
}

// loadSampleCatalog indexes the first few movies of the reference dataset.
func loadSampleCatalog(t *testing.T, opts ...Option) *MemoryRepository {
	t.Helper()
	repo := New(opts...)
	ix := NewIndexer(repo)
	movies := []*models.Movie{
		newTestMovie(t, 1, "Guardians of the Galaxy", 2014, "James Gunn",
			[]string{"Chris Pratt", "Vin Diesel", "Bradley Cooper", "Zoe Saldana"},
			[]string{"Action", "Adventure", "Sci-Fi"}),
		newTestMovie(t, 2, "Prometheus", 2012, "Ridley Scott",
			[]string{"Noomi Rapace", "Logan Marshall-Green", "Michael Fassbender", "Charlize Theron"},
			[]string{"Adventure", "Mystery", "Sci-Fi"}),
		newTestMovie(t, 3, "Split", 2016, "M. Night Shyamalan",
			[]string{"James McAvoy", "Anya Taylor-Joy", "Haley Lu Richardson", "Jessica Sula"},
			[]string{"Horror", "Thriller"}),
		newTestMovie(t, 4, "Sing", 2016, "Christophe Lourdelet",
			[]string{"Matthew McConaughey", "Reese Witherspoon", "Seth MacFarlane", "Scarlett Johansson"},
			[]string{"Animation", "Comedy", "Family"}),
		newTestMovie(t, 5, "Suicide Squad", 2016, "David Ayer",
			[]string{"Will Smith", "Jared Leto", "Margot Robbie", "Viola Davis"},
			[]string{"Action", "Adventure", "Fantasy"}),
	}
	if _, err := ix.IndexAll(movies); err != nil {
		t.Fatalf("IndexAll: %v", err)
	}
	return repo
}

func TestGetMovie_RoundTrip(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)

	got := repo.GetMovie(2)
	if got == nil {
		t.Fatal("GetMovie(2) = nil")
	}
	if !got.Equal(models.NewMovie("Prometheus", 2012)) {
		t.Errorf("GetMovie(2) = %v, want Prometheus (2012)", got)
	}
	if got.Director().Name() != "Ridley Scott" || got.RuntimeMinutes() != 102 {
		t.Errorf("unexpected movie fields: %s %d", got.Director().Name(), got.RuntimeMinutes())
	}

	if repo.GetMovie(0) != nil || repo.GetMovie(1001) != nil {
		t.Error("absent ranks should return nil")
	}
}

func TestAddMovie_WithoutRankIsInvisible(t *testing.T) {
	t.Parallel()
	repo := New()

	m := models.NewMovie("Moana", 2016)
	m.SetRank(7)
	repo.AddMovie(m)

	if repo.GetNumberOfMovies() != 1 {
		t.Errorf("GetNumberOfMovies() = %d, want 1", repo.GetNumberOfMovies())
	}
	if repo.GetMovie(7) != nil {
		t.Error("movie added without AddMovieRank should not be visible by rank")
	}

	repo.AddMovieRank(7, m)
	if repo.GetMovie(7) != m {
		t.Error("movie should be visible after AddMovieRank")
	}
}

func TestGetMoviesByRank(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)

	movies, err := repo.GetMoviesByRank([]int{3, 1, 2})
	if err != nil {
		t.Fatalf("GetMoviesByRank error = %v", err)
	}
	var titles []string
	for _, m := range movies {
		titles = append(titles, m.Title())
	}
	want := []string{"Split", "Guardians of the Galaxy", "Prometheus"}
	if !slices.Equal(titles, want) {
		t.Errorf("titles = %v, want %v", titles, want)
	}

	movies, err = repo.GetMoviesByRank([]int{1, 42, 2})
	if !errors.Is(err, ErrRankNotFound) || !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrRankNotFound", err)
	}
	if movies != nil {
		t.Errorf("expected no partial result, got %v", movies)
	}

	movies, err = repo.GetMoviesByRank(nil)
	if err != nil || len(movies) != 0 {
		t.Errorf("empty batch = %v, %v", movies, err)
	}
}

func TestIndexingSameMovieTwice(t *testing.T) {
	t.Parallel()
	repo := New()
	ix := NewIndexer(repo)

	m := newTestMovie(t, 1, "Guardians of the Galaxy", 2014, "James Gunn",
		[]string{"Chris Pratt"}, []string{"Action"})
	reloaded := newTestMovie(t, 1, "Guardians of the Galaxy", 2014, "James Gunn",
		[]string{"Chris Pratt"}, []string{"Action"})
	for _, movie := range []*models.Movie{m, m, reloaded} {
		if err := ix.Index(movie); err != nil {
			t.Fatalf("Index: %v", err)
		}
	}

	if got := repo.GetNumberOfMovies(); got != 1 {
		t.Errorf("GetNumberOfMovies() = %d, want 1", got)
	}
	if got := repo.Stats().Movies; got != 1 {
		t.Errorf("Stats().Movies = %d, want 1", got)
	}
	if got, _ := repo.GetMoviesWithGenre("Action"); !slices.Equal(got, []int{1}) {
		t.Errorf("Action bucket = %v, want [1]", got)
	}
}

func TestGetRanks(t *testing.T) {
	t.Parallel()
	repo := New()
	if got := repo.GetRanks(); len(got) != 0 {
		t.Errorf("empty repository ranks = %v", got)
	}

	for _, rank := range []int{7, 1, 3} {
		m := models.NewMovie(fmt.Sprintf("Movie %d", rank), 2016)
		m.SetRank(rank)
		repo.AddMovieRank(rank, m)
	}
	if got := repo.GetRanks(); !slices.Equal(got, []int{1, 3, 7}) {
		t.Errorf("GetRanks() = %v, want [1 3 7]", got)
	}
}

func TestFirstAndLastMovie(t *testing.T) {
	t.Parallel()

	t.Run("derived from registered ranks", func(t *testing.T) {
		repo := loadSampleCatalog(t)
		if got := repo.GetFirstMovie(); got == nil || got.Rank() != 1 {
			t.Errorf("GetFirstMovie() = %v", got)
		}
		if got := repo.GetLastMovie(); got == nil || got.Title() != "Suicide Squad" {
			t.Errorf("GetLastMovie() = %v", got)
		}
	})

	t.Run("explicit bounds", func(t *testing.T) {
		repo := loadSampleCatalog(t, WithRankBounds(2, 1000))
		if got := repo.GetFirstMovie(); got == nil || got.Title() != "Prometheus" {
			t.Errorf("GetFirstMovie() = %v", got)
		}
		if got := repo.GetLastMovie(); got != nil {
			t.Errorf("GetLastMovie() = %v, want nil for absent bound", got)
		}
	})

	t.Run("empty repository", func(t *testing.T) {
		repo := New()
		if repo.GetFirstMovie() != nil || repo.GetLastMovie() != nil {
			t.Error("empty repository should have no first or last movie")
		}
	})
}

func TestReleaseYears(t *testing.T) {
	t.Parallel()
	repo := New()

	for _, y := range []int{2016, 2012, 2016, 2014, 2012} {
		repo.AddReleaseYear(y)
	}
	if got := repo.GetYearList(); !slices.Equal(got, []int{2012, 2014, 2016}) {
		t.Errorf("GetYearList() = %v", got)
	}
}

func TestGetMoviesWithYear(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)

	ranks, ok := repo.GetMoviesWithYear(2016)
	if !ok || !slices.Equal(ranks, []int{3, 4, 5}) {
		t.Errorf("GetMoviesWithYear(2016) = %v, %v", ranks, ok)
	}

	ranks, ok = repo.GetMoviesWithYear(2020)
	if ok || len(ranks) != 0 {
		t.Errorf("GetMoviesWithYear(2020) = %v, %v; want empty, false", ranks, ok)
	}

	repo.AddReleaseYear(2020)
	ranks, ok = repo.GetMoviesWithYear(2020)
	if !ok || ranks == nil || len(ranks) != 0 {
		t.Errorf("known empty year = %v, %v; want [], true", ranks, ok)
	}
}

func TestSecondaryLookups(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)

	tests := []struct {
		name   string
		lookup func(string) ([]int, bool)
		key    string
		want   []int
		wantOK bool
	}{
		{"actor", repo.GetMoviesWithActor, "Chris Pratt", []int{1}, true},
		{"actor unknown", repo.GetMoviesWithActor, "Tom Hanks", nil, false},
		{"actor case sensitive", repo.GetMoviesWithActor, "chris pratt", nil, false},
		{"director", repo.GetMoviesWithDirector, "Ridley Scott", []int{2}, true},
		{"director unknown", repo.GetMoviesWithDirector, "Nobody", nil, false},
		{"genre", repo.GetMoviesWithGenre, "Adventure", []int{1, 2, 5}, true},
		{"genre unknown", repo.GetMoviesWithGenre, "Western", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.lookup(tt.key)
			if ok != tt.wantOK || !slices.Equal(got, tt.want) {
				t.Errorf("lookup(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFacetBucketsAreDeduplicated(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)

	m := repo.GetMovie(1)
	repo.AddMovieWithGenres(m, []string{"Action", "Action"})
	repo.AddMovieWithReleaseYear(m, 2014)

	if got, _ := repo.GetMoviesWithGenre("Action"); !slices.Equal(got, []int{1, 5}) {
		t.Errorf("Action bucket = %v, want [1 5]", got)
	}
	if got, _ := repo.GetMoviesWithYear(2014); !slices.Equal(got, []int{1}) {
		t.Errorf("2014 bucket = %v, want [1]", got)
	}
}

func TestLookupsReturnCopies(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)

	got, _ := repo.GetMoviesWithGenre("Adventure")
	got[0] = 999
	again, _ := repo.GetMoviesWithGenre("Adventure")
	if again[0] != 1 {
		t.Error("mutating a lookup result changed the index")
	}
}

func TestGetGenreList(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)

	want := []string{"Action", "Adventure", "Animation", "Comedy", "Family", "Fantasy", "Horror", "Mystery", "Sci-Fi", "Thriller"}
	if got := repo.GetGenreList(); !slices.Equal(got, want) {
		t.Errorf("GetGenreList() = %v", got)
	}
}

func TestUsers(t *testing.T) {
	t.Parallel()
	repo := New()

	first := models.NewUser("FMercury", "hash-1")
	dup := models.NewUser("fmercury", "hash-2")
	repo.AddUser(first)
	repo.AddUser(dup)
	repo.AddUser(nil)

	if got := repo.GetUser("fmercury"); got != first {
		t.Errorf("GetUser should return the first match, got %v", got)
	}
	if repo.GetUser("FMercury") != nil {
		t.Error("GetUser is an exact match on the stored lower-cased name")
	}
	if len(repo.GetUsers()) != 2 {
		t.Errorf("GetUsers() has %d users, want 2", len(repo.GetUsers()))
	}
}

func TestAddReview_DualAttachment(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)
	user := models.NewUser("fmercury", "hash")
	repo.AddUser(user)
	movie := repo.GetMovie(3)

	t.Run("detached review is rejected", func(t *testing.T) {
		r := models.NewReview("Good!", user, movie, 8)
		err := repo.AddReview(r)
		var ve *ValidationError
		if !errors.As(err, &ve) || !errors.Is(err, ErrValidation) {
			t.Fatalf("AddReview error = %v, want *ValidationError", err)
		}
		if ve.Field != "user" {
			t.Errorf("Field = %q, want user", ve.Field)
		}
		if repo.HasReview(r) {
			t.Error("rejected review must not be registered")
		}
	})

	t.Run("nil sides are rejected", func(t *testing.T) {
		orphan := models.MakeReview("orphan", nil, movie, 5)
		if err := repo.AddReview(orphan); !errors.Is(err, ErrValidation) {
			t.Errorf("nil user error = %v", err)
		}
		homeless := models.MakeReview("no movie", user, nil, 5)
		var ve *ValidationError
		if err := repo.AddReview(homeless); !errors.As(err, &ve) || ve.Field != "movie" {
			t.Errorf("nil movie error = %v", err)
		}
		if err := repo.AddReview(nil); !errors.Is(err, ErrValidation) {
			t.Errorf("nil review error = %v", err)
		}
	})

	t.Run("made review is registered", func(t *testing.T) {
		r := models.MakeReview("Good!", user, movie, 8)
		if err := repo.AddReview(r); err != nil {
			t.Fatalf("AddReview error = %v", err)
		}
		if !repo.HasReview(r) {
			t.Error("HasReview should report the registered review")
		}
		reviews := repo.GetReviews()
		if len(reviews) != 1 || reviews[0] != r {
			t.Errorf("GetReviews() = %v", reviews)
		}
	})
}

func TestWatchedMovies(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)
	user := models.NewUser("thorke", "hash")

	repo.AddUserWatchedMovie(user, repo.GetMovie(1))
	repo.AddUserWatchedMovie(user, repo.GetMovie(2))
	repo.AddUserWatchedMovie(nil, repo.GetMovie(2))

	watched := repo.GetUserWatchedMovies(user)
	if len(watched) != 2 {
		t.Fatalf("watched %d movies, want 2", len(watched))
	}
	if got := user.MinutesWatched(); got != 101+102 {
		t.Errorf("MinutesWatched() = %d, want 203", got)
	}
	if repo.GetUserWatchedMovies(nil) != nil {
		t.Error("nil user should have no watched movies")
	}
}

func TestWatchLists(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)
	alice := models.NewUser("alice", "hash")
	bob := models.NewUser("bob", "hash")

	if repo.GetUserWatchList(nil) != nil {
		t.Error("nil user should have no watch list")
	}

	w := repo.GetUserWatchList(alice)
	if w == nil || w.Size() != 0 {
		t.Fatal("watch list should be created empty on first access")
	}
	if repo.GetUserWatchList(alice) != w {
		t.Error("watch list should be stable per user")
	}

	repo.AddUserWatchList(alice, repo.GetMovie(1))
	repo.AddUserWatchList(alice, repo.GetMovie(1))
	repo.AddUserWatchList(alice, repo.GetMovie(3))
	repo.DeleteMovieFromWatchList(alice, repo.GetMovie(2))
	repo.DeleteMovieFromWatchList(bob, repo.GetMovie(1))

	if w.Size() != 2 {
		t.Errorf("alice Size() = %d, want 2", w.Size())
	}
	if repo.GetUserWatchList(bob).Size() != 0 {
		t.Error("bob's watch list should be independent")
	}

	repo.DeleteMovieFromWatchList(alice, repo.GetMovie(1))
	if got := w.First(); got == nil || got.Rank() != 3 {
		t.Errorf("First() = %v, want rank 3", got)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()
	repo := loadSampleCatalog(t)
	repo.AddUser(models.NewUser("fmercury", "hash"))

	got := repo.Stats()
	want := models.CatalogSize{Movies: 5, Users: 1, Reviews: 0, Years: 3, Genres: 10}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestConcurrentReadsDuringIndexing(t *testing.T) {
	t.Parallel()
	repo := New()
	ix := NewIndexer(repo)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= 200; i++ {
			m := models.NewMovie(fmt.Sprintf("Movie %d", i), 2000+i%10)
			m.SetRank(i)
			m.AddGenre(models.NewGenre("Drama"))
			if err := ix.Index(m); err != nil {
				t.Errorf("Index: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			n := repo.GetNumberOfMovies()
			ranks, _ := repo.GetMoviesWithGenre("Drama")
			if len(ranks) < n {
				t.Errorf("genre index lags movie list: %d < %d", len(ranks), n)
				return
			}
		}
	}()
	wg.Wait()
}
