// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"fmt"

	"github.com/tomtom215/marquee/internal/repository"
)

var (
	// ErrNonExistentMovie is returned when a rank does not resolve to a movie.
	ErrNonExistentMovie = fmt.Errorf("movie %w", repository.ErrNotFound)

	// ErrUnknownUser is returned when a username does not resolve to a user.
	ErrUnknownUser = fmt.Errorf("user %w", repository.ErrNotFound)

	// ErrUnknownKey is returned by the facet rank lookups for a year,
	// genre, actor or director that was never registered.
	ErrUnknownKey = fmt.Errorf("facet key %w", repository.ErrNotFound)
)
