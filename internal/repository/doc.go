// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package repository is the in-memory store behind the movie catalog.

MemoryRepository owns the movie list, the rank index, the set of release
years and four secondary indices mapping a year, actor, director or genre
to the ranks of matching movies. It also holds users, registered reviews
and per-user watch lists.

Registration:

Loading a movie is a sequence of calls: AddMovie, AddMovieRank,
AddReleaseYear, then the four AddMovieWith* calls. Indexer performs the
sequence inside Batch so concurrent readers never see a movie that is in
the rank index but missing from its facets.

	repo := repository.New()
	ix := repository.NewIndexer(repo)
	if err := ix.Index(movie); err != nil {
		return err
	}

Indexing is idempotent. AddMovie ignores a movie whose title and year are
already listed, and every index holds a rank once per key, so reloading a
record changes no counts.

Lookups:

  - GetMovie and GetUser return nil on a miss.
  - GetMoviesByRank fails with ErrRankNotFound if any rank is missing.
  - GetMoviesWith* return (nil, false) for keys never registered and a
    copy of the bucket with true otherwise. Buckets hold each rank once.
  - GetFirstMovie and GetLastMovie use WithRankBounds when configured and
    the lowest and highest registered ranks otherwise.

Reviews:

AddReview only registers reviews that models.MakeReview attached to both
their user and their movie. Anything else fails with a *ValidationError.
*/
package repository
