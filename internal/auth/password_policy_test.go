// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"errors"
	"testing"
)

func TestPasswordPolicy_Validate(t *testing.T) {
	t.Parallel()
	policy := DefaultPasswordPolicy()

	tests := []struct {
		name     string
		password string
		username string
		wantErr  bool
	}{
		{"valid", "abcd1A23", "pmccartney", false},
		{"valid long", "Movie-Night-2026", "fmercury", false},
		{"too short", "aA1", "pmccartney", true},
		{"no uppercase", "abcd1234", "pmccartney", true},
		{"no lowercase", "ABCD1234", "pmccartney", true},
		{"no digit", "abcdEFGH", "pmccartney", true},
		{"repeated characters", "Aaaaaa1bc", "pmccartney", true},
		{"common", "Password1", "pmccartney", true},
		{"contains username", "xFmercury9", "fmercury", true},
		{"reversed username", "Yrucremf9", "fmercury", true},
		{"substituted username", "X7h0rk3zz1", "thorke", true},
		{"short username ignored", "Jzabcde12", "jz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password, tt.username)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrWeakPassword) {
				t.Errorf("error %v does not wrap ErrWeakPassword", err)
			}
		})
	}
}

func TestPasswordPolicy_Violations(t *testing.T) {
	t.Parallel()
	got := DefaultPasswordPolicy().Violations("abc", "")
	// Too short, no uppercase, no digit.
	if len(got) != 3 {
		t.Errorf("Violations = %v, want 3 entries", got)
	}
	if v := DefaultPasswordPolicy().Violations("abcd1A23", "thorke"); v != nil {
		t.Errorf("Violations = %v, want nil", v)
	}
}

func TestMaxConsecutiveRepeats(t *testing.T) {
	t.Parallel()
	tests := map[string]int{
		"":        0,
		"a":       1,
		"abc":     1,
		"aabbb":   3,
		"xééééy":  4,
		"11a1111": 4,
	}
	for in, want := range tests {
		if got := maxConsecutiveRepeats(in); got != want {
			t.Errorf("maxConsecutiveRepeats(%q) = %d, want %d", in, got, want)
		}
	}
}
