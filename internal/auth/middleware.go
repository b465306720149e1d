// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

type contextKey string

// ClaimsContextKey holds the *Claims of an authenticated request.
const ClaimsContextKey contextKey = "claims"

// Middleware enforces bearer-token authentication.
type Middleware struct {
	tokens   *JWTManager
	security *logging.SecurityLogger
}

// NewMiddleware returns middleware validating tokens with tokens.
func NewMiddleware(tokens *JWTManager) *Middleware {
	return &Middleware{tokens: tokens, security: logging.NewSecurityLogger()}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token claims and username in the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r)
		if !ok {
			writeUnauthorized(w, "missing or malformed authorization header")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			m.security.LogEvent(logging.AuthEvent{
				Event:     "token_rejected",
				Token:     token,
				IPAddress: r.RemoteAddr,
				Reason:    err.Error(),
			})
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		ctx = logging.ContextWithUsername(ctx, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken reads the token from "Authorization: Bearer <token>".
func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// ClaimsFromContext returns the claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// UsernameFromContext returns the authenticated username.
func UsernameFromContext(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return claims.Username, true
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="marquee"`)
	w.WriteHeader(http.StatusUnauthorized)
	resp := models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    &models.APIError{Code: "UNAUTHORIZED", Message: message},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("Failed to encode unauthorized response")
	}
}
