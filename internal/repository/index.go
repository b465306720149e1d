// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package repository

import (
	"cmp"
	"slices"
)

// rankSet is an insertion-ordered set of ranks.
type rankSet struct {
	ranks []int
	seen  map[int]struct{}
}

func newRankSet() *rankSet {
	return &rankSet{seen: make(map[int]struct{})}
}

// add appends rank and reports whether it was new.
func (s *rankSet) add(rank int) bool {
	if _, ok := s.seen[rank]; ok {
		return false
	}
	s.seen[rank] = struct{}{}
	s.ranks = append(s.ranks, rank)
	return true
}

func (s *rankSet) list() []int {
	return slices.Clone(s.ranks)
}

// facetIndex maps a key to the ranks of movies carrying it. Buckets are
// created on first use and keep insertion order without duplicates.
type facetIndex[K cmp.Ordered] struct {
	buckets map[K]*rankSet
}

func newFacetIndex[K cmp.Ordered]() *facetIndex[K] {
	return &facetIndex[K]{buckets: make(map[K]*rankSet)}
}

func (f *facetIndex[K]) add(key K, rank int) bool {
	b, ok := f.buckets[key]
	if !ok {
		b = newRankSet()
		f.buckets[key] = b
	}
	return b.add(rank)
}

// lookup returns a copy of the bucket for key and whether the key exists.
func (f *facetIndex[K]) lookup(key K) ([]int, bool) {
	b, ok := f.buckets[key]
	if !ok {
		return nil, false
	}
	return b.list(), true
}

// keys returns every key in ascending order.
func (f *facetIndex[K]) keys() []K {
	out := make([]K, 0, len(f.buckets))
	for k := range f.buckets {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func (f *facetIndex[K]) size() int { return len(f.buckets) }
