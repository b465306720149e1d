// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 64 * 1024

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "no-store")
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if status == http.StatusOK {
		w.Header().Set("ETag", generateETag(data))
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondSuccess wraps data in a success envelope. Slices report their
// length in metadata.count.
func respondSuccess(w http.ResponseWriter, status int, data interface{}, start time.Time) {
	meta := models.Metadata{
		Timestamp:   time.Now(),
		QueryTimeMS: time.Since(start).Milliseconds(),
	}
	if n, ok := lengthOf(data); ok {
		meta.Count = &n
	}
	respondJSON(w, status, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	})
}

func lengthOf(data interface{}) (int, bool) {
	switch v := data.(type) {
	case []models.MovieDTO:
		return len(v), true
	case []models.MovieSummary:
		return len(v), true
	case []models.ReviewDTO:
		return len(v), true
	case []int:
		return len(v), true
	case []string:
		return len(v), true
	case page:
		return len(v.Items), true
	default:
		return 0, false
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondServiceError maps err with classifyError. Only internal errors
// are logged at error level.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := classifyError(err)
	if status == http.StatusInternalServerError {
		respondError(w, status, code, message, err)
		return
	}
	logging.Ctx(r.Context()).Debug().Str("code", code).Str("error", sanitizeLogValue(err.Error())).Msg("Request rejected")
	respondError(w, status, code, message, nil)
}

// respondValidationError sends a VALIDATION_ERROR carrying field details.
func respondValidationError(w http.ResponseWriter, apiErr *models.APIError) {
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeJSON decodes a bounded JSON body into v and validates it. It
// writes the error response itself and reports whether to continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		msg := "Invalid JSON body"
		if err == io.EOF {
			msg = "Request body is required"
		}
		respondError(w, http.StatusBadRequest, CodeValidation, msg, nil)
		return false
	}
	if apiErr := validateRequest(v); apiErr != nil {
		respondValidationError(w, apiErr)
		return false
	}
	return true
}

// getIntParam extracts an integer query parameter with a default value.
// A malformed value reports ok=false.
func getIntParam(r *http.Request, key string, defaultValue int) (int, bool) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, true
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, false
	}

	return intValue, true
}

// pathInt parses the chi URL parameter key as an integer.
func pathInt(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, key))
	return n, err == nil
}

// pathString returns the unescaped chi URL parameter key.
func pathString(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// parseCommaSeparatedInts parses a comma-separated string into a slice of
// integers. Any malformed element fails the whole parse.
func parseCommaSeparatedInts(value string) ([]int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		num, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid rank %q", trimmed)
		}
		result = append(result, num)
	}
	return result, nil
}

// page is one window of a ranked listing.
type page struct {
	Items  []models.MovieDTO `json:"items"`
	Total  int               `json:"total"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
}

// pageBounds clamps offset and limit to a slice of length total and
// returns the [lo, hi) window.
func pageBounds(total, offset, limit int) (lo, hi int) {
	lo = min(max(offset, 0), total)
	hi = min(lo+max(limit, 0), total)
	return lo, hi
}
