// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package repository

import "github.com/tomtom215/marquee/internal/models"

// IndexWriter is the registration surface the dataset loader drives for
// each movie. A movie must be registered with AddMovieRank before it is
// visible to rank lookups; AddMovie alone only appends it to the movie list.
type IndexWriter interface {
	AddMovie(m *models.Movie)
	AddMovieRank(rank int, m *models.Movie)
	AddReleaseYear(year int)
	AddMovieWithReleaseYear(m *models.Movie, year int)
	AddMovieWithActors(m *models.Movie, actors []string)
	AddMovieWithDirector(m *models.Movie, director string)
	AddMovieWithGenres(m *models.Movie, genres []string)
}

// Repository is the authoritative store of catalog entities, their
// indices and the rules linking users, movies and reviews.
//
// Primary-key lookups (rank, username) return nil on a miss. Secondary
// lookups return (nil, false) for a key that was never registered and a
// possibly empty slice with true otherwise.
type Repository interface {
	IndexWriter

	// Batch runs fn with exclusive access so a group of registrations is
	// never observed half-applied.
	Batch(fn func(w IndexWriter))

	AddUser(u *models.User)
	GetUser(username string) *models.User
	GetUsers() []*models.User

	GetMovie(rank int) *models.Movie
	GetMovies() []*models.Movie
	GetRanks() []int
	GetMoviesByRank(ranks []int) ([]*models.Movie, error)
	GetNumberOfMovies() int
	GetFirstMovie() *models.Movie
	GetLastMovie() *models.Movie

	GetYearList() []int
	GetGenreList() []string

	GetMoviesWithYear(year int) ([]int, bool)
	GetMoviesWithActor(actor string) ([]int, bool)
	GetMoviesWithDirector(director string) ([]int, bool)
	GetMoviesWithGenre(genre string) ([]int, bool)

	AddReview(r *models.Review) error
	GetReviews() []*models.Review
	HasReview(r *models.Review) bool

	AddUserWatchedMovie(u *models.User, m *models.Movie)
	GetUserWatchedMovies(u *models.User) []*models.Movie

	AddUserWatchList(u *models.User, m *models.Movie)
	DeleteMovieFromWatchList(u *models.User, m *models.Movie)
	GetUserWatchList(u *models.User) *models.WatchList

	Stats() models.CatalogSize
}
