// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLockout(maxAttempts int, d time.Duration) (*LockoutManager, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := NewLockoutManager(maxAttempts, d)
	m.now = clock.Now
	return m, clock
}

func TestLockoutManager_LocksAfterMaxAttempts(t *testing.T) {
	m, clock := newTestLockout(3, time.Minute)

	for i := range 2 {
		if locked, _ := m.RecordFailedAttempt("thorke"); locked {
			t.Fatalf("locked after %d attempts", i+1)
		}
	}
	locked, d := m.RecordFailedAttempt("thorke")
	if !locked || d != time.Minute {
		t.Fatalf("third failure = (%v, %v), want (true, 1m)", locked, d)
	}

	if locked, remaining := m.CheckLocked("thorke"); !locked || remaining != time.Minute {
		t.Errorf("CheckLocked = (%v, %v)", locked, remaining)
	}
	if locked, _ := m.CheckLocked("fmercury"); locked {
		t.Error("unrelated user should not be locked")
	}

	clock.Advance(time.Minute)
	if locked, _ := m.CheckLocked("thorke"); locked {
		t.Error("lock should expire")
	}
}

func TestLockoutManager_ExponentialBackoff(t *testing.T) {
	m, clock := newTestLockout(1, time.Hour)

	want := []time.Duration{time.Hour, 2 * time.Hour, 4 * time.Hour, 8 * time.Hour, 16 * time.Hour, 24 * time.Hour, 24 * time.Hour}
	for i, w := range want {
		locked, d := m.RecordFailedAttempt("thorke")
		if !locked || d != w {
			t.Fatalf("lockout %d = (%v, %v), want (true, %v)", i, locked, d, w)
		}
		clock.Advance(d)
	}
}

func TestLockoutManager_FailureWhileLocked(t *testing.T) {
	m, clock := newTestLockout(2, time.Minute)
	m.RecordFailedAttempt("thorke")
	m.RecordFailedAttempt("thorke")

	clock.Advance(20 * time.Second)
	locked, remaining := m.RecordFailedAttempt("thorke")
	if !locked || remaining != 40*time.Second {
		t.Errorf("failure while locked = (%v, %v), want (true, 40s)", locked, remaining)
	}
}

func TestLockoutManager_SuccessResets(t *testing.T) {
	m, _ := newTestLockout(3, time.Minute)
	m.RecordFailedAttempt("thorke")
	m.RecordFailedAttempt("thorke")
	m.RecordSuccessfulLogin("thorke")

	if locked, _ := m.RecordFailedAttempt("thorke"); locked {
		t.Error("success should reset the failure count")
	}
}

func TestLockoutManager_Disabled(t *testing.T) {
	m := NewLockoutManager(0, time.Minute)
	for range 10 {
		if locked, _ := m.RecordFailedAttempt("thorke"); locked {
			t.Fatal("disabled manager should never lock")
		}
	}

	var nilManager *LockoutManager
	if locked, _ := nilManager.CheckLocked("thorke"); locked {
		t.Error("nil manager should never lock")
	}
	nilManager.RecordSuccessfulLogin("thorke")
}
