// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

// Request bodies

// ReviewRequest is the body of POST /movies/{rank}/reviews.
type ReviewRequest struct {
	Text   string `json:"review_text" validate:"required,notblank,max=1000"`
	Rating int    `json:"rating" validate:"min=1,max=10"`
}

// RegisterRequest is the body of POST /auth/register. The password policy
// in the auth package applies on top of these bounds.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,username"`
	Password string `json:"password" validate:"required,min=7,max=128"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// WatchListRequest names a movie to add to or remove from a list.
type WatchListRequest struct {
	Rank int `json:"rank" validate:"min=1"`
}

// Query parameters

// MovieListQuery bounds GET /movies.
type MovieListQuery struct {
	Limit int `query:"limit" validate:"min=1,max=1000"`
}

// BatchQuery holds the ranks of GET /movies/batch.
type BatchQuery struct {
	Ranks []int `query:"ranks" validate:"required,min=1,max=100,dive,min=1"`
}

// PageQuery holds offset paging of the facet listings. The upper limit
// is further clamped to the configured page size.
type PageQuery struct {
	Offset int `query:"offset" validate:"min=0"`
	Limit  int `query:"limit" validate:"min=1,max=1000"`
}

// FacetQuery holds the path key of the facet routes.
type FacetQuery struct {
	Key string `query:"key" validate:"required,notblank,max=200"`
}

// SearchQuery holds GET /search?q=.
type SearchQuery struct {
	Q string `query:"q" validate:"required,notblank,max=200"`
}

// SuggestQuery holds GET /suggest?prefix=&limit=.
type SuggestQuery struct {
	Prefix string `query:"prefix" validate:"required,notblank,max=100"`
	Limit  int    `query:"limit" validate:"min=0,max=50"`
}
