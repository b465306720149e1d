// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"sync"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
)

// maxLockoutDuration caps exponential backoff.
const maxLockoutDuration = 24 * time.Hour

// LockoutEntry tracks failed login attempts for one username.
type LockoutEntry struct {
	FailedAttempts int
	LastAttempt    time.Time
	LockoutCount   int // Times locked out so far, for backoff
	LockedUntil    time.Time
}

// LockoutManager locks a username out after repeated failed logins. Each
// repeat lockout doubles the previous duration up to 24 hours.
type LockoutManager struct {
	maxAttempts int
	duration    time.Duration
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*LockoutEntry
}

// NewLockoutManager returns a manager locking after maxAttempts failures.
// A non-positive maxAttempts disables lockout.
func NewLockoutManager(maxAttempts int, duration time.Duration) *LockoutManager {
	return &LockoutManager{
		maxAttempts: maxAttempts,
		duration:    duration,
		now:         time.Now,
		entries:     make(map[string]*LockoutEntry),
	}
}

func (m *LockoutManager) enabled() bool {
	return m != nil && m.maxAttempts > 0
}

// CheckLocked reports whether username is locked and for how long.
func (m *LockoutManager) CheckLocked(username string) (bool, time.Duration) {
	if !m.enabled() {
		return false, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[username]
	if !ok {
		return false, 0
	}
	now := m.now()
	if !now.Before(entry.LockedUntil) {
		return false, 0
	}
	return true, entry.LockedUntil.Sub(now)
}

// RecordFailedAttempt counts a failed login and reports whether the
// account is now locked.
func (m *LockoutManager) RecordFailedAttempt(username string) (bool, time.Duration) {
	if !m.enabled() {
		return false, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	entry, ok := m.entries[username]
	if !ok {
		entry = &LockoutEntry{}
		m.entries[username] = entry
	}
	if now.Before(entry.LockedUntil) {
		return true, entry.LockedUntil.Sub(now)
	}

	entry.FailedAttempts++
	entry.LastAttempt = now
	if entry.FailedAttempts < m.maxAttempts {
		return false, 0
	}

	d := m.lockoutDuration(entry.LockoutCount)
	entry.LockedUntil = now.Add(d)
	entry.LockoutCount++
	entry.FailedAttempts = 0

	logging.Warn().
		Str("username", logging.SanitizeUsername(username)).
		Dur("duration", d).
		Int("lockout_count", entry.LockoutCount).
		Msg("Account locked")
	return true, d
}

func (m *LockoutManager) lockoutDuration(lockoutCount int) time.Duration {
	d := m.duration
	for i := 0; i < lockoutCount && d < maxLockoutDuration; i++ {
		d *= 2
	}
	return min(d, maxLockoutDuration)
}

// RecordSuccessfulLogin clears the failure history of username.
func (m *LockoutManager) RecordSuccessfulLogin(username string) {
	if !m.enabled() {
		return
	}
	m.mu.Lock()
	delete(m.entries, username)
	m.mu.Unlock()
}
