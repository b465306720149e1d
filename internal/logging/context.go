// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	usernameKey  contextKey = "username"
)

// GenerateRequestID returns a new UUID string.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a context carrying id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithUsername returns a context carrying the authenticated username.
func ContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromContext returns the authenticated username, or "" when absent.
func UsernameFromContext(ctx context.Context) string {
	if u, ok := ctx.Value(usernameKey).(string); ok {
		return u
	}
	return ""
}

// Ctx returns the global logger enriched with request_id and username
// from ctx when present.
//
//	logging.Ctx(r.Context()).Info().Int("rank", rank).Msg("Review added")
func Ctx(ctx context.Context) *zerolog.Logger {
	logCtx := Logger().With()
	if id := RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if u := UsernameFromContext(ctx); u != "" {
		logCtx = logCtx.Str("username", u)
	}
	l := logCtx.Logger()
	return &l
}

// WithComponent creates a child logger tagged with a component field.
//
//	ingestLogger := logging.WithComponent("ingest")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
