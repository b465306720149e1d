// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// Movies returns the first limit movies in rank order.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, ok := getIntParam(r, "limit", h.apiCfg.DefaultPageSize)
	if !ok {
		respondError(w, http.StatusBadRequest, CodeValidation, "limit must be an integer", nil)
		return
	}
	if apiErr := validateRequest(&validation.MovieListQuery{Limit: limit}); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	movies, err := h.catalog.GetMoviesInRank(limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, movies, start)
}

// Movie returns the details of one movie.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	rank, ok := h.rankParam(w, r)
	if !ok {
		return
	}
	movie, err := h.catalog.GetMovie(r.Context(), rank)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, movie, start)
}

// FirstMovie returns the first movie of the catalog.
func (h *Handler) FirstMovie(w http.ResponseWriter, r *http.Request) {
	h.serveMovie(w, r, h.catalog.GetFirstMovie)
}

// LastMovie returns the last movie of the catalog.
func (h *Handler) LastMovie(w http.ResponseWriter, r *http.Request) {
	h.serveMovie(w, r, h.catalog.GetLastMovie)
}

func (h *Handler) serveMovie(w http.ResponseWriter, r *http.Request, get func() (models.MovieDTO, error)) {
	start := time.Now()
	movie, err := get()
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, movie, start)
}

// MoviesBatch returns the movies at a comma separated list of ranks, in
// request order. One unknown rank fails the whole request.
func (h *Handler) MoviesBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ranks, err := parseCommaSeparatedInts(r.URL.Query().Get("ranks"))
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&validation.BatchQuery{Ranks: ranks}); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	movies, err := h.catalog.GetMoviesByRank(ranks)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, movies, start)
}

// MovieReviews returns the reviews attached to a movie.
func (h *Handler) MovieReviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	rank, ok := h.rankParam(w, r)
	if !ok {
		return
	}
	reviews, err := h.catalog.GetReviewsForMovie(rank)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, reviews, start)
}

// AddReview adds a review by the authenticated user.
func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	username, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	rank, ok := h.rankParam(w, r)
	if !ok {
		return
	}

	var req validation.ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.catalog.AddReview(rank, req.Text, req.Rating, username)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusCreated, review, start)
}

// rankParam parses the {rank} path parameter, responding 400 on failure.
func (h *Handler) rankParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	rank, ok := pathInt(r, "rank")
	if !ok || rank < 1 {
		respondError(w, http.StatusBadRequest, CodeValidation, "rank must be a positive integer", nil)
		return 0, false
	}
	return rank, true
}
