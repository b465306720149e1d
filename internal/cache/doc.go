// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package cache provides the in-memory caches and the prefix tree used by
the catalog and the poster client.

# Overview

  - Cache[V]: thread-safe key-value store with per-entry TTL, lazy
    expiration on Get and a background sweep stopped by Close.
  - Trie[T]: case-insensitive prefix tree that attaches values to words,
    used for title suggestions.
  - GenerateKey: stable hashed keys from a method name and parameters.

Every Get records a hit or miss on the cache_hits_total and
cache_misses_total Prometheus counters, labelled by cache name.

# Usage Example

Facet lists:

	genres := cache.New[[]string]("genres", 10*time.Minute)
	defer genres.Close()

	list, err := genres.GetOrLoad("all", func() ([]string, error) {
	    return repo.GetGenreList(), nil
	})

Title suggestions:

	titles := cache.NewTrie[int]()
	titles.Insert("Prometheus", 2)
	for _, r := range titles.AutocompleteWithLimit("prom", 5) {
	    fmt.Println(r.Value, r.Data)
	}

# Cache Key Conventions

	genres:all            // Sorted genre list
	years:all             // Sorted release years
	poster:<title>|<year> // OMDb poster URL

# Thread Safety

All methods are safe for concurrent use. Get takes a read lock unless it
has to evict an expired entry.

# Limitations

  - No maximum size; entries leave only by TTL, Delete or Clear.
  - In-memory only.
*/
package cache
