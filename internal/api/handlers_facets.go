// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/tomtom215/marquee/internal/validation"
)

// Years returns the known release years, ascending.
func (h *Handler) Years(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, h.catalog.GetYears(), time.Now())
}

// Genres returns the known genre names, ascending.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, h.catalog.GetGenres(), time.Now())
}

// MoviesForYear pages through the movies released in {year}.
func (h *Handler) MoviesForYear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	year, ok := pathInt(r, "year")
	if !ok {
		respondError(w, http.StatusBadRequest, CodeValidation, "year must be an integer", nil)
		return
	}
	offset, limit, ok := h.pageParams(w, r)
	if !ok {
		return
	}

	ranks, err := h.catalog.GetMovieRanksForYear(year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondPage(w, r, ranks, offset, limit, start)
}

// MoviesForGenre pages through the movies tagged with {genre}.
func (h *Handler) MoviesForGenre(w http.ResponseWriter, r *http.Request) {
	h.serveFacet(w, r, "genre", h.catalog.GetMovieRanksForGenre)
}

// MoviesForActor pages through the movies featuring {name}.
func (h *Handler) MoviesForActor(w http.ResponseWriter, r *http.Request) {
	h.serveFacet(w, r, "name", h.catalog.GetMovieRanksForActor)
}

// MoviesForDirector pages through the movies directed by {name}.
func (h *Handler) MoviesForDirector(w http.ResponseWriter, r *http.Request) {
	h.serveFacet(w, r, "name", h.catalog.GetMovieRanksForDirector)
}

func (h *Handler) serveFacet(w http.ResponseWriter, r *http.Request, param string, lookup func(string) ([]int, error)) {
	start := time.Now()

	key := facetKey(r, param)
	if apiErr := validateRequest(&validation.FacetQuery{Key: key}); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	offset, limit, ok := h.pageParams(w, r)
	if !ok {
		return
	}

	ranks, err := lookup(key)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondPage(w, r, ranks, offset, limit, start)
}

// facetKey returns the decoded path parameter. Names with escaped
// slashes reach chi still encoded.
func facetKey(r *http.Request, param string) string {
	raw := pathString(r, param)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// pageParams reads offset and limit, clamping limit to MaxPageSize.
func (h *Handler) pageParams(w http.ResponseWriter, r *http.Request) (offset, limit int, ok bool) {
	offset, okOffset := getIntParam(r, "offset", 0)
	limit, okLimit := getIntParam(r, "limit", h.apiCfg.DefaultPageSize)
	if !okOffset || !okLimit {
		respondError(w, http.StatusBadRequest, CodeValidation, "offset and limit must be integers", nil)
		return 0, 0, false
	}
	if apiErr := validateRequest(&validation.PageQuery{Offset: offset, Limit: limit}); apiErr != nil {
		respondValidationError(w, apiErr)
		return 0, 0, false
	}
	return offset, min(limit, h.apiCfg.MaxPageSize), true
}

// respondPage resolves one window of ranks into movie details.
func (h *Handler) respondPage(w http.ResponseWriter, r *http.Request, ranks []int, offset, limit int, start time.Time) {
	lo, hi := pageBounds(len(ranks), offset, limit)
	movies, err := h.catalog.GetMoviesByRank(ranks[lo:hi])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, page{
		Items:  movies,
		Total:  len(ranks),
		Offset: lo,
		Limit:  limit,
	}, start)
}

// Search returns movies with a title, director, actor, genre or year
// exactly equal to q.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := validation.SearchQuery{Q: r.URL.Query().Get("q")}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	respondSuccess(w, http.StatusOK, h.catalog.Search(q.Q), start)
}

// Suggest autocompletes movie titles.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, ok := getIntParam(r, "limit", 0)
	if !ok {
		respondError(w, http.StatusBadRequest, CodeValidation, "limit must be an integer", nil)
		return
	}
	q := validation.SuggestQuery{Prefix: r.URL.Query().Get("prefix"), Limit: limit}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	respondSuccess(w, http.StatusOK, h.catalog.SuggestTitles(q.Prefix, q.Limit), start)
}
