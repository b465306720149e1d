// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package repository

import (
	"fmt"
	"slices"
	"sync"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// Option configures a MemoryRepository.
type Option func(*MemoryRepository)

// WithRankBounds pins the ranks returned by GetFirstMovie and GetLastMovie.
// A zero bound falls back to the lowest or highest rank registered.
func WithRankBounds(first, last int) Option {
	return func(r *MemoryRepository) {
		r.firstRank = first
		r.lastRank = last
	}
}

// MemoryRepository is the in-memory Repository.
//
// One RWMutex guards every structure. Each method is a single critical
// section and Batch extends one section over several registrations.
type MemoryRepository struct {
	mu sync.RWMutex

	movies    []*models.Movie
	movieKeys map[models.MovieKey]struct{}
	byRank    map[int]*models.Movie
	minRank int
	maxRank int

	firstRank int
	lastRank  int

	years      map[int]struct{}
	byYear     *facetIndex[int]
	byActor    *facetIndex[string]
	byDirector *facetIndex[string]
	byGenre    *facetIndex[string]

	users      []*models.User
	byUsername map[string]*models.User

	reviews    []*models.Review
	watchLists map[models.UserKey]*models.WatchList
}

// New creates an empty repository.
func New(opts ...Option) *MemoryRepository {
	r := &MemoryRepository{
		movieKeys:  make(map[models.MovieKey]struct{}),
		byRank:     make(map[int]*models.Movie),
		years:      make(map[int]struct{}),
		byYear:     newFacetIndex[int](),
		byActor:    newFacetIndex[string](),
		byDirector: newFacetIndex[string](),
		byGenre:    newFacetIndex[string](),
		byUsername: make(map[string]*models.User),
		watchLists: make(map[models.UserKey]*models.WatchList),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ Repository = (*MemoryRepository)(nil)

// lockedWriter applies registrations while the caller holds r.mu.
type lockedWriter struct{ r *MemoryRepository }

func (w lockedWriter) AddMovie(m *models.Movie) { w.r.addMovie(m) }

func (w lockedWriter) AddMovieRank(rank int, m *models.Movie) { w.r.addMovieRank(rank, m) }

func (w lockedWriter) AddReleaseYear(year int) { w.r.addReleaseYear(year) }

func (w lockedWriter) AddMovieWithReleaseYear(m *models.Movie, year int) {
	w.r.addMovieWithReleaseYear(m, year)
}

func (w lockedWriter) AddMovieWithActors(m *models.Movie, actors []string) {
	w.r.addFacet(w.r.byActor, m, actors)
}

func (w lockedWriter) AddMovieWithDirector(m *models.Movie, director string) {
	w.r.addFacet(w.r.byDirector, m, []string{director})
}

func (w lockedWriter) AddMovieWithGenres(m *models.Movie, genres []string) {
	w.r.addFacet(w.r.byGenre, m, genres)
}

// Batch runs fn under the write lock. fn must not call back into r.
func (r *MemoryRepository) Batch(fn func(w IndexWriter)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(lockedWriter{r: r})
	r.updateSizeGauges()
}

// --- Users ---

// AddUser appends u. Uniqueness is not enforced here; the first user
// registered under a username wins lookups.
func (r *MemoryRepository) AddUser(u *models.User) {
	if u == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
	if _, ok := r.byUsername[u.Username()]; !ok {
		r.byUsername[u.Username()] = u
	}
	r.updateSizeGauges()
}

// GetUser returns the user with an exactly matching username, or nil.
func (r *MemoryRepository) GetUser(username string) *models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u := r.byUsername[username]
	recordLookup("get_user", u != nil)
	return u
}

// GetUsers returns every registered user in registration order.
func (r *MemoryRepository) GetUsers() []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.users)
}

// --- Movies ---

// AddMovie appends m to the movie list without indexing it. A movie equal
// to one already listed is ignored, so reloading a record leaves the
// movie count unchanged.
func (r *MemoryRepository) AddMovie(m *models.Movie) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addMovie(m)
	r.updateSizeGauges()
}

func (r *MemoryRepository) addMovie(m *models.Movie) {
	if m == nil {
		return
	}
	key := m.Key()
	if _, ok := r.movieKeys[key]; ok {
		return
	}
	r.movieKeys[key] = struct{}{}
	r.movies = append(r.movies, m)
}

// AddMovieRank indexes m under rank, replacing any movie already there.
func (r *MemoryRepository) AddMovieRank(rank int, m *models.Movie) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addMovieRank(rank, m)
}

func (r *MemoryRepository) addMovieRank(rank int, m *models.Movie) {
	if m == nil {
		return
	}
	if len(r.byRank) == 0 || rank < r.minRank {
		r.minRank = rank
	}
	if len(r.byRank) == 0 || rank > r.maxRank {
		r.maxRank = rank
	}
	r.byRank[rank] = m
}

// GetMovie returns the movie at rank, or nil.
func (r *MemoryRepository) GetMovie(rank int) *models.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := r.byRank[rank]
	recordLookup("get_movie", m != nil)
	return m
}

// GetMovies returns every movie in the order it was added.
func (r *MemoryRepository) GetMovies() []*models.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.movies)
}

// GetRanks returns every registered rank in ascending order. Gaps left by
// skipped records are simply absent.
func (r *MemoryRepository) GetRanks() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, 0, len(r.byRank))
	for rank := range r.byRank {
		out = append(out, rank)
	}
	slices.Sort(out)
	return out
}

// GetMoviesByRank resolves ranks in the order given. It fails with
// ErrRankNotFound on the first absent rank and returns no partial result.
func (r *MemoryRepository) GetMoviesByRank(ranks []int) ([]*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Movie, 0, len(ranks))
	for _, rank := range ranks {
		m, ok := r.byRank[rank]
		if !ok {
			recordLookup("get_movies_by_rank", false)
			return nil, fmt.Errorf("%w: %d", ErrRankNotFound, rank)
		}
		out = append(out, m)
	}
	recordLookup("get_movies_by_rank", true)
	return out, nil
}

// GetNumberOfMovies returns the length of the movie list.
func (r *MemoryRepository) GetNumberOfMovies() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movies)
}

// GetFirstMovie returns the movie at the configured first rank, or at the
// lowest rank registered when no bound was configured.
func (r *MemoryRepository) GetFirstMovie() *models.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rank := r.firstRank
	if rank == 0 {
		rank = r.minRank
	}
	return r.byRank[rank]
}

// GetLastMovie returns the movie at the configured last rank, or at the
// highest rank registered when no bound was configured.
func (r *MemoryRepository) GetLastMovie() *models.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rank := r.lastRank
	if rank == 0 {
		rank = r.maxRank
	}
	return r.byRank[rank]
}

// --- Years and facets ---

// AddReleaseYear records year. Repeated calls have no further effect.
func (r *MemoryRepository) AddReleaseYear(year int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addReleaseYear(year)
}

func (r *MemoryRepository) addReleaseYear(year int) {
	r.years[year] = struct{}{}
}

// GetYearList returns the distinct release years in ascending order.
func (r *MemoryRepository) GetYearList() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, 0, len(r.years))
	for y := range r.years {
		out = append(out, y)
	}
	slices.Sort(out)
	return out
}

// GetGenreList returns the genre index keys in ascending order.
func (r *MemoryRepository) GetGenreList() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byGenre.keys()
}

// AddMovieWithReleaseYear adds m's rank to the bucket for year.
func (r *MemoryRepository) AddMovieWithReleaseYear(m *models.Movie, year int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addMovieWithReleaseYear(m, year)
}

func (r *MemoryRepository) addMovieWithReleaseYear(m *models.Movie, year int) {
	if m == nil {
		return
	}
	r.byYear.add(year, m.Rank())
}

// AddMovieWithActors adds m's rank to one bucket per actor name.
func (r *MemoryRepository) AddMovieWithActors(m *models.Movie, actors []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addFacet(r.byActor, m, actors)
}

// AddMovieWithDirector adds m's rank to the bucket for director.
func (r *MemoryRepository) AddMovieWithDirector(m *models.Movie, director string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addFacet(r.byDirector, m, []string{director})
}

// AddMovieWithGenres adds m's rank to one bucket per genre name.
func (r *MemoryRepository) AddMovieWithGenres(m *models.Movie, genres []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addFacet(r.byGenre, m, genres)
}

// addFacet keys buckets by the raw strings given. Empty keys are skipped.
func (r *MemoryRepository) addFacet(idx *facetIndex[string], m *models.Movie, keys []string) {
	if m == nil {
		return
	}
	rank := m.Rank()
	for _, k := range keys {
		if k == "" {
			continue
		}
		idx.add(k, rank)
	}
}

// GetMoviesWithYear returns the ranks released in year. A year known only
// from AddReleaseYear yields an empty slice and true.
func (r *MemoryRepository) GetMoviesWithYear(year int) ([]int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ranks, ok := r.byYear.lookup(year); ok {
		recordLookup("get_movies_with_year", true)
		return ranks, true
	}
	_, known := r.years[year]
	recordLookup("get_movies_with_year", known)
	if known {
		return []int{}, true
	}
	return nil, false
}

// GetMoviesWithActor returns the ranks featuring actor.
func (r *MemoryRepository) GetMoviesWithActor(actor string) ([]int, bool) {
	return r.lookupFacet("get_movies_with_actor", r.byActor, actor)
}

// GetMoviesWithDirector returns the ranks directed by director.
func (r *MemoryRepository) GetMoviesWithDirector(director string) ([]int, bool) {
	return r.lookupFacet("get_movies_with_director", r.byDirector, director)
}

// GetMoviesWithGenre returns the ranks tagged with genre.
func (r *MemoryRepository) GetMoviesWithGenre(genre string) ([]int, bool) {
	return r.lookupFacet("get_movies_with_genre", r.byGenre, genre)
}

func (r *MemoryRepository) lookupFacet(op string, idx *facetIndex[string], key string) ([]int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ranks, ok := idx.lookup(key)
	recordLookup(op, ok)
	return ranks, ok
}

// --- Reviews ---

// AddReview registers a review built with models.MakeReview. It returns a
// *ValidationError when the review's user or movie is nil or does not
// already hold the review.
func (r *MemoryRepository) AddReview(review *models.Review) error {
	if err := checkAttached(review); err != nil {
		metrics.RecordRepositoryOp("add_review", "error")
		logging.Debug().Err(err).Msg("Rejected detached review")
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	metrics.RecordRepositoryOp("add_review", "ok")
	r.updateSizeGauges()
	return nil
}

func checkAttached(review *models.Review) error {
	if review == nil {
		return &ValidationError{Field: "review", Reason: "review is nil"}
	}
	if review.User() == nil {
		return &ValidationError{Field: "user", Reason: "review has no user"}
	}
	if !review.User().HasReview(review) {
		return &ValidationError{Field: "user", Reason: "review is not attached to its user"}
	}
	if review.Movie() == nil {
		return &ValidationError{Field: "movie", Reason: "review has no movie"}
	}
	if !review.Movie().HasReview(review) {
		return &ValidationError{Field: "movie", Reason: "review is not attached to its movie"}
	}
	return nil
}

// GetReviews returns every registered review in registration order.
func (r *MemoryRepository) GetReviews() []*models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.reviews)
}

// HasReview reports whether an equal review has been registered.
func (r *MemoryRepository) HasReview(review *models.Review) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.ContainsFunc(r.reviews, review.Equal)
}

// --- Watching ---

// AddUserWatchedMovie records that u watched m.
func (r *MemoryRepository) AddUserWatchedMovie(u *models.User, m *models.Movie) {
	if u == nil {
		return
	}
	u.WatchMovie(m)
}

// GetUserWatchedMovies returns the movies u has watched.
func (r *MemoryRepository) GetUserWatchedMovies(u *models.User) []*models.Movie {
	if u == nil {
		return nil
	}
	return u.WatchedMovies()
}

// AddUserWatchList adds m to u's watch list, creating the list on first use.
func (r *MemoryRepository) AddUserWatchList(u *models.User, m *models.Movie) {
	if w := r.GetUserWatchList(u); w != nil {
		w.Add(m)
	}
}

// DeleteMovieFromWatchList removes m from u's watch list.
func (r *MemoryRepository) DeleteMovieFromWatchList(u *models.User, m *models.Movie) {
	if w := r.GetUserWatchList(u); w != nil {
		w.Remove(m)
	}
}

// GetUserWatchList returns u's watch list, creating it on first access.
// It returns nil only for a nil user.
func (r *MemoryRepository) GetUserWatchList(u *models.User) *models.WatchList {
	if u == nil {
		return nil
	}
	key := u.Key()

	r.mu.RLock()
	w, ok := r.watchLists[key]
	r.mu.RUnlock()
	if ok {
		return w
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok = r.watchLists[key]; !ok {
		w = models.NewWatchList()
		r.watchLists[key] = w
	}
	return w
}

// Stats summarizes repository contents.
func (r *MemoryRepository) Stats() models.CatalogSize {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return models.CatalogSize{
		Movies:  len(r.movies),
		Users:   len(r.users),
		Reviews: len(r.reviews),
		Years:   len(r.years),
		Genres:  r.byGenre.size(),
	}
}

// updateSizeGauges must be called with r.mu held.
func (r *MemoryRepository) updateSizeGauges() {
	metrics.UpdateCatalogSize(len(r.movies), len(r.users), len(r.reviews))
}

func recordLookup(op string, hit bool) {
	if hit {
		metrics.RecordRepositoryOp(op, "hit")
		return
	}
	metrics.RecordRepositoryOp(op, "miss")
}
