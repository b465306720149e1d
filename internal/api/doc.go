// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api exposes the movie catalog over a JSON HTTP API built on chi.

Every response is a models.APIResponse envelope:

	{"status":"success","data":{...},"metadata":{"timestamp":"...","query_time_ms":0}}
	{"status":"error","data":null,"metadata":{...},"error":{"code":"NOT_FOUND","message":"..."}}

Routes (all under /api/v1):

	GET    /health                      liveness, uptime, catalog sizes
	GET    /health/ready                503 until the dataset import completes
	GET    /movies?limit=               movies ranked 1..limit
	GET    /movies/first                first movie
	GET    /movies/last                 last movie
	GET    /movies/batch?ranks=1,2      several movies, all or nothing
	GET    /movies/{rank}               movie details with poster URL
	GET    /movies/{rank}/reviews       reviews of a movie
	POST   /movies/{rank}/reviews       add a review (bearer token)
	GET    /years                       known release years
	GET    /years/{year}/movies         movies of a year, paged
	GET    /genres                      known genres
	GET    /genres/{genre}/movies       movies of a genre, paged
	GET    /actors/{name}/movies        movies featuring an actor, paged
	GET    /directors/{name}/movies     movies by a director, paged
	GET    /search?q=                   exact match on title, person, genre or year
	GET    /suggest?prefix=&limit=      title autocomplete
	POST   /auth/register               create a user
	POST   /auth/login                  exchange credentials for a token
	GET    /me                          profile of the token holder
	GET    /me/watchlist                watch list
	POST   /me/watchlist                add {"rank":n}
	DELETE /me/watchlist/{rank}         remove
	GET    /me/watched                  watched movies
	POST   /me/watched                  mark {"rank":n} watched

Prometheus metrics are served at /metrics outside the versioned prefix.

Error codes map from package sentinels: repository.ErrNotFound to
NOT_FOUND, validation and repository.ErrValidation to VALIDATION_ERROR,
auth.ErrNameNotUnique to CONFLICT, auth.ErrAuthentication and invalid
tokens to UNAUTHORIZED, auth.ErrAccountLocked and httprate rejections to
RATE_LIMIT_EXCEEDED.
*/
package api
