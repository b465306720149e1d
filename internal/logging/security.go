// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"github.com/rs/zerolog"
)

// AuthEvent is an account event written to the audit log.
type AuthEvent struct {
	Event     string // "register", "login", "token_rejected"
	Username  string
	Token     string
	IPAddress string
	Success   bool
	Reason    string
}

// SecurityLogger writes account events with usernames and tokens masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger returns a SecurityLogger on the global logger.
func NewSecurityLogger() *SecurityLogger {
	return NewSecurityLoggerWithLogger(Logger())
}

// NewSecurityLoggerWithLogger returns a SecurityLogger on logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{logger: logger.With().Str("component", "auth").Logger()}
}

// LogEvent writes event. Failed events are logged at warn level.
func (l *SecurityLogger) LogEvent(event AuthEvent) {
	e := l.logger.Info()
	status := "success"
	if !event.Success {
		e = l.logger.Warn()
		status = "failed"
	}
	e = e.Str("event", event.Event).Str("status", status)
	if event.Username != "" {
		e = e.Str("username", SanitizeUsername(event.Username))
	}
	if event.Token != "" {
		e = e.Str("token", SanitizeToken(event.Token))
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.Reason != "" && !event.Success {
		e = e.Str("reason", truncateString(event.Reason, 200))
	}
	e.Msg("auth event")
}

// SanitizeToken keeps the first and last four characters of a token.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeUsername keeps the first two characters of a username.
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
