// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds, inclusive.
const (
	MinReviewRating = 1
	MaxReviewRating = 10
)

// Review is one user's opinion of one movie. It references but does not
// own its user and movie, and never changes after construction.
type Review struct {
	id        uuid.UUID
	user      *User
	movie     *Movie
	text      string
	rating    int
	timestamp time.Time
}

// NewReview builds a review that is not attached to its user or movie.
// A rating outside [MinReviewRating, MaxReviewRating] is left unset.
//
// The repository rejects detached reviews; use MakeReview unless the
// review is meant to stay detached.
func NewReview(text string, user *User, movie *Movie, rating int) *Review {
	r := &Review{
		id:        uuid.New(),
		user:      user,
		movie:     movie,
		text:      text,
		timestamp: time.Now(),
	}
	if rating >= MinReviewRating && rating <= MaxReviewRating {
		r.rating = rating
	}
	return r
}

// MakeReview creates a review and attaches it to both user and movie.
func MakeReview(text string, user *User, movie *Movie, rating int) *Review {
	r := NewReview(text, user, movie, rating)
	if user != nil {
		user.addReview(r)
	}
	if movie != nil {
		movie.addReview(r)
	}
	return r
}

// ID returns the review identifier.
func (r *Review) ID() uuid.UUID { return r.id }

// User returns the author.
func (r *Review) User() *User { return r.user }

// Movie returns the reviewed movie.
func (r *Review) Movie() *Movie { return r.movie }

// Text returns the review text.
func (r *Review) Text() string { return r.text }

// Rating returns the rating, or 0 when it was out of range.
func (r *Review) Rating() int { return r.rating }

// HasRating reports whether the rating is set.
func (r *Review) HasRating() bool { return r.rating != 0 }

// Timestamp returns the creation time.
func (r *Review) Timestamp() time.Time { return r.timestamp }

// Equal compares reviews by author, movie, text, rating and timestamp.
func (r *Review) Equal(other *Review) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.user.Equal(other.user) &&
		r.movie.Equal(other.movie) &&
		r.text == other.text &&
		r.rating == other.rating &&
		r.timestamp.Equal(other.timestamp)
}

func (r *Review) String() string {
	return "<Review " + r.movie.String() + ", " + r.text + ">"
}
