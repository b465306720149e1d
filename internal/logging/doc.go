// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging provides the zerolog-based global logger used across Marquee.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("movies", 1000).Msg("Dataset loaded")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Poster lookup failed")
//
// # Configuration
//
// Level, format and caller come from the logging section of the config
// (LOG_LEVEL, LOG_FORMAT, LOG_CALLER in the environment).
//
// # Context
//
// The API middleware stores a request ID, and the auth middleware the
// username, in the request context. Ctx copies both onto every entry.
//
// # slog
//
// NewSlogLogger adapts the global logger to *slog.Logger for sutureslog.
//
// Always terminate event chains with Msg or Send, or nothing is written.
package logging
