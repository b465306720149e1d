// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"iter"
	"sync"
)

// WatchList is an ordered set of movies a user intends to watch.
// Membership is by Movie.Key, so two equal movies occupy one slot.
type WatchList struct {
	mu     sync.RWMutex
	movies []*Movie
	keys   map[MovieKey]struct{}
}

// NewWatchList returns an empty watch list.
func NewWatchList() *WatchList {
	return &WatchList{keys: make(map[MovieKey]struct{})}
}

// Add appends m. It is a no-op when an equal movie is already present.
func (w *WatchList) Add(m *Movie) {
	if m == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	key := m.Key()
	if _, ok := w.keys[key]; ok {
		return
	}
	w.keys[key] = struct{}{}
	w.movies = append(w.movies, m)
}

// Remove deletes m. It is a no-op when m is absent.
func (w *WatchList) Remove(m *Movie) {
	if m == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	key := m.Key()
	if _, ok := w.keys[key]; !ok {
		return
	}
	delete(w.keys, key)
	for i, existing := range w.movies {
		if existing.Key() == key {
			w.movies = append(w.movies[:i], w.movies[i+1:]...)
			break
		}
	}
}

// Contains reports whether an equal movie is in the list.
func (w *WatchList) Contains(m *Movie) bool {
	if m == nil {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.keys[m.Key()]
	return ok
}

// Select returns the movie at index, or nil when index is out of range.
func (w *WatchList) Select(index int) *Movie {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if index < 0 || index >= len(w.movies) {
		return nil
	}
	return w.movies[index]
}

// Size returns the number of movies in the list.
func (w *WatchList) Size() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.movies)
}

// First returns the earliest added movie, or nil when the list is empty.
func (w *WatchList) First() *Movie {
	return w.Select(0)
}

// Movies returns a copy of the list in insertion order.
func (w *WatchList) Movies() []*Movie {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Movie, len(w.movies))
	copy(out, w.movies)
	return out
}

// All iterates over a snapshot of the list in insertion order.
func (w *WatchList) All() iter.Seq[*Movie] {
	snapshot := w.Movies()
	return func(yield func(*Movie) bool) {
		for _, m := range snapshot {
			if !yield(m) {
				return
			}
		}
	}
}
