// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"slices"
	"testing"
)

func newTitleTrie(t *testing.T) *Trie[int] {
	t.Helper()
	trie := NewTrie[int]()
	titles := []struct {
		title string
		rank  int
	}{
		{"Guardians of the Galaxy", 1},
		{"Prometheus", 2},
		{"Split", 3},
		{"Sing", 4},
		{"Suicide Squad", 5},
		{"Sing Street", 543},
		{"The Great Wall", 6},
		{"The Lost City of Z", 7},
		{"Passengers", 8},
		{"Fantastic Beasts and Where to Find Them", 9},
	}
	for _, tt := range titles {
		trie.Insert(tt.title, tt.rank)
	}
	return trie
}

func values[T any](results []TrieResult[T]) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Value)
	}
	return out
}

func TestTrie_Insert(t *testing.T) {
	t.Parallel()
	trie := NewTrie[int]()

	if !trie.Insert("Prometheus", 2) {
		t.Error("first insert should be new")
	}
	if trie.Insert("PROMETHEUS", 99) {
		t.Error("case-insensitive re-insert should not be new")
	}
	if trie.Insert("   ", 1) {
		t.Error("blank values should be ignored")
	}
	if trie.Size() != 1 {
		t.Errorf("Size() = %d, want 1", trie.Size())
	}

	data, ok := trie.Search("prometheus")
	if !ok || !slices.Equal(data, []int{2, 99}) {
		t.Errorf("Search() = %v, %v", data, ok)
	}
}

func TestTrie_Autocomplete(t *testing.T) {
	t.Parallel()
	trie := newTitleTrie(t)

	tests := []struct {
		name   string
		prefix string
		limit  int
		want   []string
	}{
		{"single match", "prom", 0, []string{"Prometheus"}},
		{"case insensitive", "SIN", 0, []string{"Sing", "Sing Street"}},
		{"alphabetical", "s", 0, []string{"Sing", "Sing Street", "Split", "Suicide Squad"}},
		{"limited", "s", 2, []string{"Sing", "Sing Street"}},
		{"multi word", "the l", 0, []string{"The Lost City of Z"}},
		{"no match", "xyz", 0, nil},
		{"empty prefix", "", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := values(trie.AutocompleteWithLimit(tt.prefix, tt.limit))
			if !slices.Equal(got, tt.want) {
				t.Errorf("AutocompleteWithLimit(%q, %d) = %v, want %v", tt.prefix, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTrie_AutocompleteOrdersByCount(t *testing.T) {
	t.Parallel()
	trie := NewTrie[int]()
	trie.Insert("The Host", 10)
	trie.Insert("The Hobbit", 11)
	trie.Insert("The Host", 12)

	results := trie.Autocomplete("the ho")
	if got := values(results); !slices.Equal(got, []string{"The Host", "The Hobbit"}) {
		t.Fatalf("Autocomplete() = %v", got)
	}
	if results[0].Count != 2 || !slices.Equal(results[0].Data, []int{10, 12}) {
		t.Errorf("first result = %+v", results[0])
	}
}

func TestTrie_MaxSuggestions(t *testing.T) {
	t.Parallel()
	trie := NewTrieWithOptions[int](false, 2)
	for i, title := range []string{"Sing", "Split", "Silence", "Sully"} {
		trie.Insert(title, i)
	}
	if got := len(trie.Autocomplete("s")); got != 2 {
		t.Errorf("Autocomplete returned %d results, want 2", got)
	}
}

func TestTrie_CaseSensitive(t *testing.T) {
	t.Parallel()
	trie := NewTrieWithOptions[int](true, 0)
	trie.Insert("Split", 3)

	if _, ok := trie.Search("split"); ok {
		t.Error("case-sensitive trie should not match lower case")
	}
	if !trie.HasPrefix("Sp") || trie.HasPrefix("sp") {
		t.Error("HasPrefix should respect case")
	}
}

func TestTrie_DeleteMultibyte(t *testing.T) {
	t.Parallel()
	trie := NewTrie[int]()
	trie.Insert("Amélie", 1)
	trie.Insert("Amélie 2", 2)

	if !trie.Delete("AMÉLIE") {
		t.Fatal("Delete should remove a multi-byte title")
	}
	if _, ok := trie.Search("amélie"); ok {
		t.Error("deleted title still found")
	}
	if _, ok := trie.Search("amélie 2"); !ok {
		t.Error("sibling title should survive")
	}
	if trie.Delete("amélie") {
		t.Error("second delete should report false")
	}
	if trie.Size() != 1 {
		t.Errorf("Size() = %d, want 1", trie.Size())
	}
}

func TestTrie_ClearAndGetAll(t *testing.T) {
	t.Parallel()
	trie := newTitleTrie(t)

	if got := len(trie.GetAll()); got != 10 {
		t.Errorf("GetAll() returned %d, want 10", got)
	}
	if !trie.HasPrefix("") {
		t.Error("non-empty trie should report an empty prefix")
	}

	trie.Clear()
	if trie.Size() != 0 || trie.HasPrefix("s") || len(trie.GetAll()) != 0 {
		t.Error("Clear should remove everything")
	}
}
