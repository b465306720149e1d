// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/repository"
)

// Error codes carried in models.APIError.Code.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeConflict         = "CONFLICT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeNotReady         = "NOT_READY"
	CodeInternal         = "INTERNAL_ERROR"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// errUnauthenticated is returned when a protected handler runs without
// claims, which means it was mounted outside RequireAuth.
var errUnauthenticated = errors.New("request is not authenticated")

// classifyError maps a service error to an HTTP status, error code and
// client-facing message. Internal errors get a generic message.
func classifyError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, auth.ErrAccountLocked):
		return http.StatusTooManyRequests, CodeRateLimited, err.Error()
	case errors.Is(err, auth.ErrAuthentication), errors.Is(err, auth.ErrInvalidToken), errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized, CodeUnauthorized, "Invalid username or password"
	case errors.Is(err, auth.ErrNameNotUnique):
		return http.StatusConflict, CodeConflict, "Username is already taken"
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, repository.ErrValidation):
		return http.StatusBadRequest, CodeValidation, err.Error()
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, err.Error()
	default:
		return http.StatusInternalServerError, CodeInternal, "Internal server error"
	}
}
