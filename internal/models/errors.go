// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "errors"

// ErrInvalidRuntime is returned when a movie runtime is set to a non-positive value.
var ErrInvalidRuntime = errors.New("runtime must be a positive number of minutes")
