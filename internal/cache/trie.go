// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"sort"
	"strings"
	"sync"
)

// DefaultMaxSuggestions caps Autocomplete results when no limit is given.
const DefaultMaxSuggestions = 10

// TrieNode represents a node in the Trie.
type TrieNode[T any] struct {
	children map[rune]*TrieNode[T]
	isEnd    bool   // Marks end of a complete word
	value    string // Original string stored at this node (if isEnd is true)
	data     []T    // Values attached by every insert of this word
}

// Trie is a thread-safe prefix tree for autocomplete.
//
// Every insert of the same word appends its data, so a title shared by two
// movies keeps both ranks. Results are ordered by how many values a word
// carries, then alphabetically.
type Trie[T any] struct {
	mu             sync.RWMutex
	root           *TrieNode[T]
	size           int  // Number of complete words
	caseSensitive  bool // If false, all keys are lowercased
	maxSuggestions int
}

// TrieResult represents a match from the Trie with associated data.
type TrieResult[T any] struct {
	Value string // The matched string, as first inserted
	Data  []T
	Count int // Number of inserts of this word
}

// NewTrie creates a case-insensitive Trie returning at most
// DefaultMaxSuggestions results.
func NewTrie[T any]() *Trie[T] {
	return NewTrieWithOptions[T](false, DefaultMaxSuggestions)
}

// NewTrieWithOptions creates a new Trie with custom settings.
func NewTrieWithOptions[T any](caseSensitive bool, maxSuggestions int) *Trie[T] {
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	return &Trie[T]{
		root:           newTrieNode[T](),
		caseSensitive:  caseSensitive,
		maxSuggestions: maxSuggestions,
	}
}

func newTrieNode[T any]() *TrieNode[T] {
	return &TrieNode[T]{children: make(map[rune]*TrieNode[T])}
}

func (t *Trie[T]) normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if t.caseSensitive {
		return key
	}
	return strings.ToLower(key)
}

// Insert adds value with data attached. It reports whether value is new.
// Blank values are ignored.
func (t *Trie[T]) Insert(value string, data T) bool {
	key := t.normalizeKey(value)
	if key == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range key {
		if node.children[ch] == nil {
			node.children[ch] = newTrieNode[T]()
		}
		node = node.children[ch]
	}

	isNew := !node.isEnd
	if isNew {
		node.isEnd = true
		node.value = strings.TrimSpace(value)
		t.size++
	}
	node.data = append(node.data, data)
	return isNew
}

// find walks to the node for key, or returns nil.
func (t *Trie[T]) find(key string) *TrieNode[T] {
	node := t.root
	for _, ch := range key {
		if node = node.children[ch]; node == nil {
			return nil
		}
	}
	return node
}

// Search returns the data attached to an exact word.
func (t *Trie[T]) Search(value string) ([]T, bool) {
	key := t.normalizeKey(value)
	if key == "" {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(key)
	if node == nil || !node.isEnd {
		return nil, false
	}
	return append([]T(nil), node.data...), true
}

// HasPrefix checks if any string in the Trie starts with the given prefix.
func (t *Trie[T]) HasPrefix(prefix string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	key := t.normalizeKey(prefix)
	if key == "" {
		return t.size > 0
	}
	return t.find(key) != nil
}

// Autocomplete returns up to the configured maximum of words starting with
// prefix.
func (t *Trie[T]) Autocomplete(prefix string) []TrieResult[T] {
	return t.AutocompleteWithLimit(prefix, t.maxSuggestions)
}

// AutocompleteWithLimit returns words starting with prefix, limited to
// limit results. A non-positive limit uses the configured maximum. An
// empty prefix matches nothing.
func (t *Trie[T]) AutocompleteWithLimit(prefix string, limit int) []TrieResult[T] {
	if limit <= 0 {
		limit = t.maxSuggestions
	}
	key := t.normalizeKey(prefix)
	if key == "" {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(key)
	if node == nil {
		return nil
	}

	var results []TrieResult[T]
	collectWords(node, &results)
	sortResults(results)

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func collectWords[T any](node *TrieNode[T], results *[]TrieResult[T]) {
	if node.isEnd {
		*results = append(*results, TrieResult[T]{
			Value: node.value,
			Data:  append([]T(nil), node.data...),
			Count: len(node.data),
		})
	}
	for _, child := range node.children {
		collectWords(child, results)
	}
}

func sortResults[T any](results []TrieResult[T]) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Value < results[j].Value
	})
}

// Delete removes a word and prunes empty branches. It reports whether the
// word was present.
func (t *Trie[T]) Delete(value string) bool {
	key := t.normalizeKey(value)
	if key == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.deleteRecursive(t.root, []rune(key), 0) {
		t.size--
		return true
	}
	return false
}

func (t *Trie[T]) deleteRecursive(node *TrieNode[T], key []rune, depth int) bool {
	if depth == len(key) {
		if !node.isEnd {
			return false
		}
		node.isEnd = false
		node.value = ""
		node.data = nil
		return true
	}

	ch := key[depth]
	child := node.children[ch]
	if child == nil {
		return false
	}

	deleted := t.deleteRecursive(child, key, depth+1)
	if deleted && !child.isEnd && len(child.children) == 0 {
		delete(node.children, ch)
	}
	return deleted
}

// Size returns the number of distinct words in the Trie.
func (t *Trie[T]) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Clear removes all entries from the Trie.
func (t *Trie[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root = newTrieNode[T]()
	t.size = 0
}

// GetAll returns every word, ordered like Autocomplete.
func (t *Trie[T]) GetAll() []TrieResult[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var results []TrieResult[T]
	collectWords(t.root, &results)
	sortResults(results)
	return results
}
