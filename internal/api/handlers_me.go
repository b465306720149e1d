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

// Me returns the profile of the authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	username, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	user, err := h.auth.GetUser(username)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, user, start)
}

// WatchList returns the authenticated user's watch list.
func (h *Handler) WatchList(w http.ResponseWriter, r *http.Request) {
	h.serveUserList(w, r, h.catalog.GetWatchList)
}

// Watched returns the movies the authenticated user has watched.
func (h *Handler) Watched(w http.ResponseWriter, r *http.Request) {
	h.serveUserList(w, r, h.catalog.GetWatchedMovies)
}

func (h *Handler) serveUserList(w http.ResponseWriter, r *http.Request, list func(string) ([]models.MovieSummary, error)) {
	start := time.Now()

	username, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	movies, err := list(username)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, movies, start)
}

// AddToWatchList adds {"rank":n} to the watch list. Adding a movie that
// is already listed succeeds without duplicating it.
func (h *Handler) AddToWatchList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	username, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req validation.WatchListRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.catalog.AddToWatchList(username, req.Rank); err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondWatchList(w, r, username, start)
}

// RemoveFromWatchList removes {rank} from the watch list.
func (h *Handler) RemoveFromWatchList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	username, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	rank, ok := h.rankParam(w, r)
	if !ok {
		return
	}

	if err := h.catalog.RemoveFromWatchList(username, rank); err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondWatchList(w, r, username, start)
}

func (h *Handler) respondWatchList(w http.ResponseWriter, r *http.Request, username string, start time.Time) {
	movies, err := h.catalog.GetWatchList(username)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, movies, start)
}

// MarkWatched records {"rank":n} as watched and returns the updated
// profile with the runtime added to minutes watched.
func (h *Handler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	username, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req validation.WatchListRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.catalog.MarkWatched(username, req.Rank)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, user, start)
}
