// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "time"

// MovieDTO is the flattened form of a Movie returned to callers.
type MovieDTO struct {
	Rank        int         `json:"rank"`
	Title       string      `json:"title"`
	ReleaseYear int         `json:"release_year,omitempty"`
	Description string      `json:"description,omitempty"`
	Director    string      `json:"director,omitempty"`
	Actors      []string    `json:"actors"`
	Genres      []string    `json:"genres"`
	Runtime     int         `json:"runtime,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	Votes       int         `json:"votes,omitempty"`
	Revenue     *float64    `json:"revenue_millions,omitempty"`
	Metascore   *int        `json:"metascore,omitempty"`
	Reviews     []ReviewDTO `json:"reviews"`
	PosterURL   string      `json:"poster_url,omitempty"`
}

// MovieSummary is the short form used in listings.
type MovieSummary struct {
	Rank        int    `json:"rank"`
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year,omitempty"`
}

// ReviewDTO is the flattened form of a Review.
type ReviewDTO struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	MovieRank  int       `json:"movie_rank"`
	ReviewText string    `json:"review_text"`
	Rating     *int      `json:"rating"`
	Timestamp  time.Time `json:"timestamp"`
}

// UserDTO is the public form of a User. The password hash never leaves
// the auth package.
type UserDTO struct {
	Username       string `json:"username"`
	MinutesWatched int    `json:"minutes_watched"`
	ReviewCount    int    `json:"review_count"`
	WatchedCount   int    `json:"watched_count"`
}

// ToDTO flattens m and its reviews.
func (m *Movie) ToDTO() MovieDTO {
	dto := MovieDTO{
		Rank:        m.Rank(),
		Title:       m.Title(),
		ReleaseYear: m.ReleaseYear(),
		Description: m.Description(),
		Director:    m.Director().Name(),
		Runtime:     m.RuntimeMinutes(),
		Rating:      m.Rating(),
		Votes:       m.Votes(),
	}
	if revenue, ok := m.Revenue(); ok {
		dto.Revenue = &revenue
	}
	if score, ok := m.Metascore(); ok {
		dto.Metascore = &score
	}

	actors := m.Actors()
	dto.Actors = make([]string, 0, len(actors))
	for _, a := range actors {
		dto.Actors = append(dto.Actors, a.Name())
	}
	genres := m.Genres()
	dto.Genres = make([]string, 0, len(genres))
	for _, g := range genres {
		dto.Genres = append(dto.Genres, g.Name())
	}
	dto.Reviews = ReviewsToDTO(m.Reviews())
	return dto
}

// ToSummary returns the listing form of m.
func (m *Movie) ToSummary() MovieSummary {
	return MovieSummary{Rank: m.Rank(), Title: m.Title(), ReleaseYear: m.ReleaseYear()}
}

// ToDTO flattens r.
func (r *Review) ToDTO() ReviewDTO {
	dto := ReviewDTO{
		ID:         r.id.String(),
		ReviewText: r.text,
		Timestamp:  r.timestamp,
	}
	if r.user != nil {
		dto.Username = r.user.Username()
	}
	if r.movie != nil {
		dto.MovieRank = r.movie.Rank()
	}
	if r.HasRating() {
		rating := r.rating
		dto.Rating = &rating
	}
	return dto
}

// ToDTO returns the public form of u.
func (u *User) ToDTO() UserDTO {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return UserDTO{
		Username:       u.username,
		MinutesWatched: u.minutesWatched,
		ReviewCount:    len(u.reviews),
		WatchedCount:   len(u.watched),
	}
}

// MoviesToDTO flattens a slice of movies.
func MoviesToDTO(movies []*Movie) []MovieDTO {
	out := make([]MovieDTO, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ToDTO())
	}
	return out
}

// MoviesToSummaries returns listing forms for a slice of movies.
func MoviesToSummaries(movies []*Movie) []MovieSummary {
	out := make([]MovieSummary, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ToSummary())
	}
	return out
}

// ReviewsToDTO flattens a slice of reviews.
func ReviewsToDTO(reviews []*Review) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.ToDTO())
	}
	return out
}
