// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package poster fetches movie poster URLs from the OMDb API.
//
// Client.Lookup issues GET <base>?t=<title>&y=<year>&apikey=<key> and
// returns the Poster field of the answer. "N/A" posters and unknown titles
// are treated as misses and cached like hits. Outbound calls are limited by
// golang.org/x/time/rate and wrapped in a sony/gobreaker circuit breaker
// that opens after OMDB_BREAKER_FAILURES consecutive upstream errors.
//
// The client satisfies catalog.PosterLookup. Without OMDB_API_KEY every
// lookup returns ErrDisabled and no request is made.
package poster
