// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"fmt"

	"github.com/tomtom215/marquee/internal/models"
)

// userAndMovie resolves both sides of a per-user movie operation.
func (s *Service) userAndMovie(username string, rank int) (*models.User, *models.Movie, error) {
	user := s.repo.GetUser(username)
	if user == nil {
		return nil, nil, fmt.Errorf("user %q: %w", username, ErrUnknownUser)
	}
	movie := s.repo.GetMovie(rank)
	if movie == nil {
		return nil, nil, fmt.Errorf("rank %d: %w", rank, ErrNonExistentMovie)
	}
	return user, movie, nil
}

// GetWatchList returns the movies on username's watch list in the order
// they were added.
func (s *Service) GetWatchList(username string) ([]models.MovieSummary, error) {
	user := s.repo.GetUser(username)
	if user == nil {
		return nil, fmt.Errorf("watch list of %q: %w", username, ErrUnknownUser)
	}
	return models.MoviesToSummaries(s.repo.GetUserWatchList(user).Movies()), nil
}

// AddToWatchList appends the movie at rank to username's watch list.
// Adding a movie already on the list is a no-op.
func (s *Service) AddToWatchList(username string, rank int) error {
	user, movie, err := s.userAndMovie(username, rank)
	if err != nil {
		return fmt.Errorf("add to watch list: %w", err)
	}
	s.repo.AddUserWatchList(user, movie)
	return nil
}

// RemoveFromWatchList removes the movie at rank from username's watch
// list. Removing an absent movie is a no-op.
func (s *Service) RemoveFromWatchList(username string, rank int) error {
	user, movie, err := s.userAndMovie(username, rank)
	if err != nil {
		return fmt.Errorf("remove from watch list: %w", err)
	}
	s.repo.DeleteMovieFromWatchList(user, movie)
	return nil
}

// GetWatchedMovies returns the movies username has watched, oldest first.
func (s *Service) GetWatchedMovies(username string) ([]models.MovieSummary, error) {
	user := s.repo.GetUser(username)
	if user == nil {
		return nil, fmt.Errorf("watched movies of %q: %w", username, ErrUnknownUser)
	}
	return models.MoviesToSummaries(s.repo.GetUserWatchedMovies(user)), nil
}

// MarkWatched records that username watched the movie at rank and
// returns the user's updated profile.
func (s *Service) MarkWatched(username string, rank int) (models.UserDTO, error) {
	user, movie, err := s.userAndMovie(username, rank)
	if err != nil {
		return models.UserDTO{}, fmt.Errorf("mark watched: %w", err)
	}
	s.repo.AddUserWatchedMovie(user, movie)
	return user.ToDTO(), nil
}
