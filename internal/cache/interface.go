// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import "time"

// Cacher is the key-value surface consumers depend on, so tests can
// substitute a map-backed fake.
//
// Usage:
//
//	var posters cache.Cacher[string] = cache.New[string]("poster", 24*time.Hour)
//	posters.Set("Prometheus|2012", url)
//	if url, ok := posters.Get("Prometheus|2012"); ok {
//	    return url
//	}
type Cacher[V any] interface {
	// Get returns the value and true if found and not expired.
	Get(key string) (V, bool)

	// Set stores a value with the default TTL.
	Set(key string, value V)

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value V, ttl time.Duration)

	Delete(key string)
	Clear()
	GetStats() Stats
	HitRate() float64
}

var _ Cacher[string] = (*Cache[string])(nil)
