// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"strings"
	"sync"
)

// UserKey identifies a user for map lookups.
type UserKey struct {
	Username     string
	PasswordHash string
}

// User is a registered account.
type User struct {
	username     string
	passwordHash string

	mu             sync.RWMutex
	watched        []*Movie
	reviews        []*Review
	minutesWatched int
}

// NewUser creates a user. The username is trimmed and lower-cased; the
// password hash is stored as given.
func NewUser(username, passwordHash string) *User {
	return &User{
		username:     strings.ToLower(strings.TrimSpace(username)),
		passwordHash: passwordHash,
	}
}

// Username returns the normalized username.
func (u *User) Username() string { return u.username }

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Key returns the username and password hash pair.
func (u *User) Key() UserKey {
	return UserKey{Username: u.username, PasswordHash: u.passwordHash}
}

// Equal compares users by username.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.username == other.username
}

// Less orders users by username.
func (u *User) Less(other *User) bool { return u.username < other.username }

func (u *User) String() string { return "<User " + u.username + ">" }

// WatchMovie records that the user watched m and accrues its runtime.
func (u *User) WatchMovie(m *Movie) {
	if m == nil {
		return
	}
	u.mu.Lock()
	u.watched = append(u.watched, m)
	u.minutesWatched += m.RuntimeMinutes()
	u.mu.Unlock()
}

// WatchedMovies returns a copy of the watched list in viewing order.
func (u *User) WatchedMovies() []*Movie {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]*Movie, len(u.watched))
	copy(out, u.watched)
	return out
}

// MinutesWatched returns the total runtime of every watched movie.
func (u *User) MinutesWatched() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.minutesWatched
}

// Reviews returns a copy of the user's reviews in authoring order.
func (u *User) Reviews() []*Review {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]*Review, len(u.reviews))
	copy(out, u.reviews)
	return out
}

// HasReview reports whether an equal review is attached to the user.
func (u *User) HasReview(r *Review) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, existing := range u.reviews {
		if existing.Equal(r) {
			return true
		}
	}
	return false
}

func (u *User) addReview(r *Review) {
	u.mu.Lock()
	u.reviews = append(u.reviews, r)
	u.mu.Unlock()
}
