// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package poster

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

const breakerName = "omdb-api"

// newBreaker builds the circuit breaker guarding OMDb calls. It opens after
// failures consecutive failures and probes again after timeout. Misses and
// cancelled requests do not count against the upstream.
//
// DETERMINISM NOTE: gobreaker uses real time for its interval and timeout.
// Tests drive state through failures and use a short timeout.
func newBreaker(failures uint32, timeout time.Duration) *gobreaker.CircuitBreaker[string] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,           // One probe in half-open state
		Interval:    time.Minute, // Reset counts after 1 minute in closed state
		Timeout:     timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= failures
			if shouldTrip {
				logging.Warn().
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})
}

// recordBreakerResult updates the breaker request counter for err.
func recordBreakerResult(err error) {
	switch {
	case err == nil, errors.Is(err, ErrNotFound):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	case isRejected(err):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
	}
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
