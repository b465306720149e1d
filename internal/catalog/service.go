// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/repository"
)

const (
	defaultFacetCacheTTL = 10 * time.Minute
	defaultSuggestLimit  = 10

	yearsKey  = "years:all"
	genresKey = "genres:all"
)

// PosterLookup resolves a poster image URL for a movie.
type PosterLookup interface {
	Lookup(ctx context.Context, title string, year int) (string, error)
}

// Service answers catalog queries and applies the review and watch list
// rules on top of a repository.
type Service struct {
	repo    repository.Repository
	posters PosterLookup

	suggestLimit int
	years        *cache.Cache[[]int]
	genres       *cache.Cache[[]string]

	// titles is rebuilt whenever the movie count changes.
	titlesMu      sync.Mutex
	titles        *cache.Trie[int]
	titlesIndexed int

	// reviewMu makes review creation and registration one step.
	reviewMu sync.Mutex
}

// NewService creates a catalog service over repo. posters may be nil, in
// which case movie details carry no poster URL.
func NewService(repo repository.Repository, cfg *config.CatalogConfig, posters PosterLookup) *Service {
	ttl := defaultFacetCacheTTL
	limit := defaultSuggestLimit
	if cfg != nil {
		if cfg.FacetCacheTTL > 0 {
			ttl = cfg.FacetCacheTTL
		}
		if cfg.SuggestLimit > 0 {
			limit = cfg.SuggestLimit
		}
	}

	return &Service{
		repo:         repo,
		posters:      posters,
		suggestLimit: limit,
		years:        cache.New[[]int]("years", ttl),
		genres:       cache.New[[]string]("genres", ttl),
		titles:       cache.NewTrieWithOptions[int](false, limit),
	}
}

// Close stops the facet cache sweepers.
func (s *Service) Close() {
	s.years.Close()
	s.genres.Close()
}

// InvalidateCaches drops cached facet lists and the title index. The
// dataset loader calls it after an import.
func (s *Service) InvalidateCaches() {
	s.years.Clear()
	s.genres.Clear()

	s.titlesMu.Lock()
	s.titlesIndexed = -1
	s.titlesMu.Unlock()
}

// AddReview creates a review by username for the movie at rank and
// registers it with the repository.
func (s *Service) AddReview(rank int, text string, rating int, username string) (models.ReviewDTO, error) {
	s.reviewMu.Lock()
	defer s.reviewMu.Unlock()

	movie := s.repo.GetMovie(rank)
	if movie == nil {
		return models.ReviewDTO{}, fmt.Errorf("add review for rank %d: %w", rank, ErrNonExistentMovie)
	}
	user := s.repo.GetUser(username)
	if user == nil {
		return models.ReviewDTO{}, fmt.Errorf("add review by %q: %w", username, ErrUnknownUser)
	}

	review := models.MakeReview(text, user, movie, rating)
	if err := s.repo.AddReview(review); err != nil {
		return models.ReviewDTO{}, fmt.Errorf("add review: %w", err)
	}

	stats := s.repo.Stats()
	metrics.UpdateCatalogSize(stats.Movies, stats.Users, stats.Reviews)

	logging.Info().
		Str("review_id", review.ID().String()).
		Int("rank", rank).
		Str("username", logging.SanitizeUsername(user.Username())).
		Int("rating", review.Rating()).
		Msg("Review added")

	return review.ToDTO(), nil
}

// GetMovie returns the movie at rank, with its poster URL when a poster
// lookup is configured. Poster failures are logged and ignored.
func (s *Service) GetMovie(ctx context.Context, rank int) (models.MovieDTO, error) {
	movie := s.repo.GetMovie(rank)
	if movie == nil {
		return models.MovieDTO{}, fmt.Errorf("get movie %d: %w", rank, ErrNonExistentMovie)
	}
	dto := movie.ToDTO()
	dto.PosterURL = s.posterURL(ctx, movie)
	return dto, nil
}

func (s *Service) posterURL(ctx context.Context, m *models.Movie) string {
	if s.posters == nil {
		return ""
	}
	url, err := s.posters.Lookup(ctx, m.Title(), m.ReleaseYear())
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("title", m.Title()).Msg("Poster lookup failed")
		return ""
	}
	return url
}

// GetFirstMovie returns the first movie of the catalog.
func (s *Service) GetFirstMovie() (models.MovieDTO, error) {
	movie := s.repo.GetFirstMovie()
	if movie == nil {
		return models.MovieDTO{}, fmt.Errorf("first movie: %w", ErrNonExistentMovie)
	}
	return movie.ToDTO(), nil
}

// GetLastMovie returns the last movie of the catalog.
func (s *Service) GetLastMovie() (models.MovieDTO, error) {
	movie := s.repo.GetLastMovie()
	if movie == nil {
		return models.MovieDTO{}, fmt.Errorf("last movie: %w", ErrNonExistentMovie)
	}
	return movie.ToDTO(), nil
}

// GetMoviesByYear returns the movies released in year in registration
// order. An unknown year yields an empty list.
func (s *Service) GetMoviesByYear(year int) []models.MovieDTO {
	ranks, _ := s.repo.GetMoviesWithYear(year)
	return models.MoviesToDTO(s.resolve(ranks))
}

// resolve maps ranks to movies, skipping ranks that no longer resolve.
func (s *Service) resolve(ranks []int) []*models.Movie {
	movies := make([]*models.Movie, 0, len(ranks))
	for _, r := range ranks {
		if m := s.repo.GetMovie(r); m != nil {
			movies = append(movies, m)
		}
	}
	return movies
}

// GetMovieRanksForYear returns the ranks of movies released in year.
func (s *Service) GetMovieRanksForYear(year int) ([]int, error) {
	ranks, ok := s.repo.GetMoviesWithYear(year)
	if !ok {
		return nil, fmt.Errorf("year %d: %w", year, ErrUnknownKey)
	}
	return ranks, nil
}

// GetMovieRanksForGenre returns the ranks of movies tagged with genre.
func (s *Service) GetMovieRanksForGenre(genre string) ([]int, error) {
	return lookupRanks("genre", genre, s.repo.GetMoviesWithGenre)
}

// GetMovieRanksForActor returns the ranks of movies featuring actor.
func (s *Service) GetMovieRanksForActor(actor string) ([]int, error) {
	return lookupRanks("actor", actor, s.repo.GetMoviesWithActor)
}

// GetMovieRanksForDirector returns the ranks of movies directed by director.
func (s *Service) GetMovieRanksForDirector(director string) ([]int, error) {
	return lookupRanks("director", director, s.repo.GetMoviesWithDirector)
}

func lookupRanks(facet, key string, lookup func(string) ([]int, bool)) ([]int, error) {
	ranks, ok := lookup(key)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", facet, key, ErrUnknownKey)
	}
	return ranks, nil
}

// GetMoviesByRank returns the movies at ranks, in the given order. It
// fails without partial results if any rank is absent.
func (s *Service) GetMoviesByRank(ranks []int) ([]models.MovieDTO, error) {
	movies, err := s.repo.GetMoviesByRank(ranks)
	if err != nil {
		return nil, fmt.Errorf("get movies by rank: %w", err)
	}
	return models.MoviesToDTO(movies), nil
}

// GetReviewsForMovie returns the reviews attached to the movie at rank.
func (s *Service) GetReviewsForMovie(rank int) ([]models.ReviewDTO, error) {
	movie := s.repo.GetMovie(rank)
	if movie == nil {
		return nil, fmt.Errorf("reviews for rank %d: %w", rank, ErrNonExistentMovie)
	}
	return models.ReviewsToDTO(movie.Reviews()), nil
}

// GetYears returns the known release years in ascending order.
func (s *Service) GetYears() []int {
	s.checkFreshness()
	years, _ := s.years.GetOrLoad(yearsKey, func() ([]int, error) {
		return s.repo.GetYearList(), nil
	})
	return slices.Clone(years)
}

// GetGenres returns the known genre names in ascending order.
func (s *Service) GetGenres() []string {
	s.checkFreshness()
	genres, _ := s.genres.GetOrLoad(genresKey, func() ([]string, error) {
		return s.repo.GetGenreList(), nil
	})
	return slices.Clone(genres)
}

// GetMoviesInRank returns the first quantity movies in ascending rank
// order. Ranks left empty by skipped records are passed over, so the
// result is not necessarily ranks 1 to quantity.
//
// quantity is clamped to one below the number of ranked movies, so even a
// request covering the whole catalog leaves out the last-ranked movie.
func (s *Service) GetMoviesInRank(quantity int) ([]models.MovieSummary, error) {
	ranks := s.repo.GetRanks()
	if quantity >= len(ranks) {
		quantity = len(ranks) - 1
	}
	if quantity <= 0 {
		return []models.MovieSummary{}, nil
	}

	movies, err := s.repo.GetMoviesByRank(ranks[:quantity])
	if err != nil {
		return nil, fmt.Errorf("movies in rank %d: %w", quantity, err)
	}
	return models.MoviesToSummaries(movies), nil
}

// Search returns the movies whose title, director, an actor, a genre or
// release year exactly matches q, in rank order.
func (s *Service) Search(q string) []models.MovieSummary {
	q = strings.TrimSpace(q)
	if q == "" {
		return []models.MovieSummary{}
	}

	matched := make(map[int]struct{})
	add := func(ranks []int, _ bool) {
		for _, r := range ranks {
			matched[r] = struct{}{}
		}
	}

	add(s.repo.GetMoviesWithDirector(q))
	add(s.repo.GetMoviesWithActor(q))
	add(s.repo.GetMoviesWithGenre(q))
	if year, err := strconv.Atoi(q); err == nil {
		add(s.repo.GetMoviesWithYear(year))
	}
	for _, m := range s.repo.GetMovies() {
		if m.Title() == q && m.Rank() > 0 {
			matched[m.Rank()] = struct{}{}
		}
	}

	ranks := make([]int, 0, len(matched))
	for r := range matched {
		ranks = append(ranks, r)
	}
	slices.Sort(ranks)

	logging.Debug().Str("query", q).Int("matches", len(ranks)).Msg("Catalog search")
	return models.MoviesToSummaries(s.resolve(ranks))
}

// SuggestTitles returns movies whose title starts with prefix, case
// insensitively. A non-positive limit uses the configured default.
func (s *Service) SuggestTitles(prefix string, limit int) []models.MovieSummary {
	if limit <= 0 {
		limit = s.suggestLimit
	}
	titles := s.titleIndex()

	out := make([]models.MovieSummary, 0, limit)
	for _, res := range titles.AutocompleteWithLimit(prefix, limit) {
		for _, rank := range res.Data {
			if len(out) == limit {
				return out
			}
			if m := s.repo.GetMovie(rank); m != nil {
				out = append(out, m.ToSummary())
			}
		}
	}
	return out
}

// titleIndex returns the title trie, rebuilding it if the catalog grew.
func (s *Service) titleIndex() *cache.Trie[int] {
	s.titlesMu.Lock()
	defer s.titlesMu.Unlock()

	movies := s.repo.GetMovies()
	if len(movies) == s.titlesIndexed {
		return s.titles
	}

	s.titles.Clear()
	for _, m := range movies {
		if m.HasTitle() && m.Rank() > 0 {
			s.titles.Insert(m.Title(), m.Rank())
		}
	}
	s.titlesIndexed = len(movies)
	logging.Debug().Int("titles", s.titles.Size()).Msg("Title index rebuilt")
	return s.titles
}

// checkFreshness drops cached facet lists when the title index is stale,
// which means the catalog changed since they were computed.
func (s *Service) checkFreshness() {
	s.titlesMu.Lock()
	stale := s.titlesIndexed != s.repo.GetNumberOfMovies()
	s.titlesMu.Unlock()
	if stale {
		s.years.Clear()
		s.genres.Clear()
		s.titleIndex()
	}
}

// Stats returns the current catalog sizes.
func (s *Service) Stats() models.CatalogSize {
	return s.repo.Stats()
}
