// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines the domain entities and API data structures for Marquee.

Entity Model:

  - Movie: identified by (title, release year); carries rank, description,
    director, actors, genres, runtime, rating figures and its reviews
  - Director, Actor, Genre: thin wrappers around a trimmed name
  - User: identified by a lower-cased username; tracks watched movies,
    authored reviews and cumulative minutes watched
  - Review: a rating and text linking one User to one Movie
  - WatchList: a per-user ordered set of movies

Identity and Equality:

Entities compare by value on their identity fields, never by pointer. Two
*Movie values with the same title and year are Equal even when their ranks
differ. Use Movie.Key and User.Key when an entity needs to be a map key.

Validation:

Constructors normalize rather than fail. An empty title, a year before
1900 or a review rating outside 1..10 leave the field unset, and callers
check HasTitle, HasReleaseYear or HasRating downstream. The one setter
that rejects input is Movie.SetRuntimeMinutes, which returns
ErrInvalidRuntime for non-positive values.

Reviews:

MakeReview is the only sanctioned way to create a Review. It attaches the
new review to both its user and its movie. The repository refuses to
register a review that is missing from either side.

Thread Safety:

Entities with mutable lists (Movie, User, Actor, WatchList) guard them with
their own mutex and must be passed by pointer.

API Models:

APIResponse, APIError and Metadata wrap every HTTP response. MovieDTO,
MovieSummary, ReviewDTO and UserDTO are the flattened forms returned by
the catalog and auth services.
*/
package models
