// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/validation"
)

// Register creates a user account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req validation.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.auth.Register(req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusCreated, user, start)
}

// Login exchanges credentials for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req validation.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.auth.Login(req.Username, req.Password, r.RemoteAddr)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, token, start)
}

// requireUser returns the username set by auth.Middleware.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		respondServiceError(w, r, errUnauthenticated)
		return "", false
	}
	return username, true
}
