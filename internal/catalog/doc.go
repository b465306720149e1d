// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package catalog is the service layer between the JSON API and the
repository.

Service turns repository misses into typed errors, flattens entities into
DTOs and adds the derived queries the repository does not answer itself:
exact-match search, title suggestions, the top-N ranking listing and the
per-user watch list and watched-movie operations.

Errors:

  - ErrNonExistentMovie: a rank did not resolve to a movie.
  - ErrUnknownUser: a username did not resolve to a user.
  - ErrUnknownKey: a facet lookup used a year, genre, actor or director
    that was never registered.

All three wrap repository.ErrNotFound.

Caching:

Year and genre lists are held in TTL caches and the title trie is rebuilt
on demand. Both are refreshed when the movie count changes, and
InvalidateCaches forces a refresh after an import.

Reviews:

AddReview holds a service-wide mutex across models.MakeReview and
Repository.AddReview so concurrent posts cannot interleave.
*/
package catalog
