// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the base error for lookups that found nothing.
	ErrNotFound = errors.New("not found")

	// ErrRankNotFound is returned by batch rank lookups when any rank is absent.
	ErrRankNotFound = fmt.Errorf("rank %w", ErrNotFound)

	// ErrValidation is the base error for consistency violations.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a review that breaks the dual-attachment rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }
