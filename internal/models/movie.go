// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"fmt"
	"strings"
	"sync"
)

// MinReleaseYear is the earliest release year a Movie accepts.
const MinReleaseYear = 1900

// MovieKey is the identity of a Movie: its trimmed title and release year.
// A zero Year means the release year is unset.
type MovieKey struct {
	Title string
	Year  int
}

// Movie is a catalog entry.
//
// Title and release year are fixed at construction and form the identity
// returned by Key. Everything else is mutable through setters and guarded
// by mu.
type Movie struct {
	title       string
	releaseYear int

	mu             sync.RWMutex
	rank           int
	description    string
	director       *Director
	actors         []*Actor
	genres         []*Genre
	runtimeMinutes int
	rating         float64
	votes          int
	revenue        float64
	hasRevenue     bool
	metascore      int
	hasMetascore   bool
	reviews        []*Review
}

// NewMovie creates a movie. A blank title or a year before MinReleaseYear
// leaves the corresponding field unset instead of failing. The title is
// stored as given and trimmed on read.
func NewMovie(title string, releaseYear int) *Movie {
	m := &Movie{}
	if strings.TrimSpace(title) != "" {
		m.title = title
	}
	if releaseYear >= MinReleaseYear {
		m.releaseYear = releaseYear
	}
	return m
}

// Title returns the trimmed title, or "" when unset.
func (m *Movie) Title() string { return strings.TrimSpace(m.title) }

// HasTitle reports whether the movie has a title.
func (m *Movie) HasTitle() bool { return m.title != "" }

// ReleaseYear returns the release year, or 0 when unset.
func (m *Movie) ReleaseYear() int { return m.releaseYear }

// HasReleaseYear reports whether the release year is set.
func (m *Movie) HasReleaseYear() bool { return m.releaseYear != 0 }

// Key returns the identity of the movie.
func (m *Movie) Key() MovieKey {
	return MovieKey{Title: m.Title(), Year: m.releaseYear}
}

// Equal reports whether two movies share a title and release year.
// Rank, description and every other mutable field are ignored.
func (m *Movie) Equal(other *Movie) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Key() == other.Key()
}

// Less orders movies by rank.
func (m *Movie) Less(other *Movie) bool { return m.Rank() < other.Rank() }

func (m *Movie) String() string {
	return fmt.Sprintf("<Movie %s, %d>", m.Title(), m.releaseYear)
}

// Rank returns the dataset rank, or 0 when unassigned.
func (m *Movie) Rank() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rank
}

// SetRank assigns the dataset rank. Non-positive values clear it.
func (m *Movie) SetRank(rank int) {
	if rank < 0 {
		rank = 0
	}
	m.mu.Lock()
	m.rank = rank
	m.mu.Unlock()
}

// Description returns the trimmed description.
func (m *Movie) Description() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return strings.TrimSpace(m.description)
}

// SetDescription stores the description as given.
func (m *Movie) SetDescription(description string) {
	m.mu.Lock()
	m.description = description
	m.mu.Unlock()
}

// Director returns the director, or nil when unset.
func (m *Movie) Director() *Director {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.director
}

// SetDirector assigns the director.
func (m *Movie) SetDirector(d *Director) {
	m.mu.Lock()
	m.director = d
	m.mu.Unlock()
}

// Actors returns a copy of the cast in insertion order.
func (m *Movie) Actors() []*Actor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Actor, len(m.actors))
	copy(out, m.actors)
	return out
}

// AddActor appends an actor unless an equal one is already listed.
func (m *Movie) AddActor(a *Actor) {
	if a == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.actors {
		if existing.Equal(a) {
			return
		}
	}
	m.actors = append(m.actors, a)
}

// RemoveActor removes an equal actor. Absent actors are ignored.
func (m *Movie) RemoveActor(a *Actor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.actors {
		if existing.Equal(a) {
			m.actors = append(m.actors[:i], m.actors[i+1:]...)
			return
		}
	}
}

// Genres returns a copy of the genres in insertion order.
func (m *Movie) Genres() []*Genre {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Genre, len(m.genres))
	copy(out, m.genres)
	return out
}

// AddGenre appends a genre unless an equal one is already listed.
func (m *Movie) AddGenre(g *Genre) {
	if g == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.genres {
		if existing.Equal(g) {
			return
		}
	}
	m.genres = append(m.genres, g)
}

// RemoveGenre removes an equal genre. Absent genres are ignored.
func (m *Movie) RemoveGenre(g *Genre) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.genres {
		if existing.Equal(g) {
			m.genres = append(m.genres[:i], m.genres[i+1:]...)
			return
		}
	}
}

// RuntimeMinutes returns the runtime, or 0 when unset.
func (m *Movie) RuntimeMinutes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.runtimeMinutes
}

// SetRuntimeMinutes sets the runtime. It returns ErrInvalidRuntime and
// leaves the previous value in place when minutes is not positive.
func (m *Movie) SetRuntimeMinutes(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRuntime, minutes)
	}
	m.mu.Lock()
	m.runtimeMinutes = minutes
	m.mu.Unlock()
	return nil
}

// Rating returns the audience rating.
func (m *Movie) Rating() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rating
}

// SetRating sets the audience rating.
func (m *Movie) SetRating(rating float64) {
	m.mu.Lock()
	m.rating = rating
	m.mu.Unlock()
}

// Votes returns the number of audience votes.
func (m *Movie) Votes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.votes
}

// SetVotes sets the number of audience votes.
func (m *Movie) SetVotes(votes int) {
	m.mu.Lock()
	m.votes = votes
	m.mu.Unlock()
}

// Revenue returns the box office revenue in millions and whether it is known.
func (m *Movie) Revenue() (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revenue, m.hasRevenue
}

// SetRevenue sets the box office revenue in millions.
func (m *Movie) SetRevenue(millions float64) {
	m.mu.Lock()
	m.revenue = millions
	m.hasRevenue = true
	m.mu.Unlock()
}

// Metascore returns the critic score and whether it is known.
func (m *Movie) Metascore() (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metascore, m.hasMetascore
}

// SetMetascore sets the critic score.
func (m *Movie) SetMetascore(score int) {
	m.mu.Lock()
	m.metascore = score
	m.hasMetascore = true
	m.mu.Unlock()
}

// Reviews returns a copy of the reviews in the order they were attached.
func (m *Movie) Reviews() []*Review {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Review, len(m.reviews))
	copy(out, m.reviews)
	return out
}

// HasReview reports whether an equal review is attached to the movie.
func (m *Movie) HasReview(r *Review) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, existing := range m.reviews {
		if existing.Equal(r) {
			return true
		}
	}
	return false
}

// addReview appends without checks; MakeReview is the only caller.
func (m *Movie) addReview(r *Review) {
	m.mu.Lock()
	m.reviews = append(m.reviews, r)
	m.mu.Unlock()
}
