// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation validates API request bodies and query parameters
// with go-playground/validator v10.
//
// A single validator is built on first use. Fields are reported by their
// json or query tag name, and two custom tags are registered:
//
//   - username: ASCII letters, digits and underscores only
//   - notblank: rejects strings made only of whitespace
//
// Usage:
//
//	var req validation.ReviewRequest
//	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	    // 400
//	}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// ValidateStruct returns *RequestValidationError, whose ToAPIError method
// produces the VALIDATION_ERROR payload used by the api package. A single
// failure carries field, tag and value details; several failures are
// listed under "fields".
package validation
