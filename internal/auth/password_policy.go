// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PasswordPolicy defines requirements for password strength.
type PasswordPolicy struct {
	// MinLength is the minimum password length in characters.
	MinLength int

	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool

	// MaxConsecutiveRepeats is the maximum allowed run of one character (0 = disabled).
	MaxConsecutiveRepeats int

	// ForbidCommonPasswords blocks well-known breached passwords.
	ForbidCommonPasswords bool

	// ForbidUsernameSimilarity rejects passwords containing the username.
	ForbidUsernameSimilarity bool
}

// DefaultPasswordPolicy returns the policy applied to self-registration:
// at least eight characters with an upper case letter, a lower case
// letter and a digit.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:                8,
		RequireUppercase:         true,
		RequireLowercase:         true,
		RequireDigit:             true,
		MaxConsecutiveRepeats:    4,
		ForbidCommonPasswords:    true,
		ForbidUsernameSimilarity: true,
	}
}

// charClasses holds the results of character class analysis.
type charClasses struct {
	hasUpper bool
	hasLower bool
	hasDigit bool
}

func analyzeCharClasses(password string) charClasses {
	var cc charClasses
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			cc.hasUpper = true
		case unicode.IsLower(r):
			cc.hasLower = true
		case unicode.IsDigit(r):
			cc.hasDigit = true
		}
	}
	return cc
}

// maxConsecutiveRepeats returns the longest run of one repeated character.
func maxConsecutiveRepeats(password string) int {
	maxRepeats, current := 0, 0
	var last rune
	for i, r := range []rune(password) {
		if i > 0 && r == last {
			current++
		} else {
			current = 1
		}
		maxRepeats = max(maxRepeats, current)
		last = r
	}
	return maxRepeats
}

// Violations returns every rule password breaks, or nil.
func (p PasswordPolicy) Violations(password, username string) []string {
	var errs []string

	if n := utf8.RuneCountInString(password); n < p.MinLength {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters (got %d)", p.MinLength, n))
	}

	cc := analyzeCharClasses(password)
	if p.RequireUppercase && !cc.hasUpper {
		errs = append(errs, "password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !cc.hasLower {
		errs = append(errs, "password must contain at least one lowercase letter")
	}
	if p.RequireDigit && !cc.hasDigit {
		errs = append(errs, "password must contain at least one digit")
	}

	if p.MaxConsecutiveRepeats > 0 && maxConsecutiveRepeats(password) > p.MaxConsecutiveRepeats {
		errs = append(errs, fmt.Sprintf("password cannot have more than %d consecutive repeated characters", p.MaxConsecutiveRepeats))
	}
	if p.ForbidCommonPasswords && isCommonPassword(password) {
		errs = append(errs, "password is too common and easily guessable")
	}
	if p.ForbidUsernameSimilarity && isSimilarToUsername(password, username) {
		errs = append(errs, "password is too similar to username")
	}
	return errs
}

// Validate returns an error wrapping ErrWeakPassword listing every
// violated rule.
func (p PasswordPolicy) Validate(password, username string) error {
	if errs := p.Violations(password, username); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrWeakPassword, strings.Join(errs, "; "))
	}
	return nil
}

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"12345678": {}, "123456789": {}, "1234567890": {}, "qwerty123": {},
	"qwertyuiop": {}, "iloveyou": {}, "letmein1": {}, "welcome1": {},
	"welcome123": {}, "admin123": {}, "abc12345": {}, "football1": {},
	"baseball1": {}, "sunshine1": {}, "princess1": {}, "trustno1": {},
	"starwars1": {}, "monkey123": {}, "dragon123": {}, "master123": {},
	"changeme1": {}, "superman1": {}, "batman123": {}, "movies123": {},
}

func isCommonPassword(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]
	return ok
}

// isSimilarToUsername reports whether password contains the username, its
// reverse or its common character substitutions.
func isSimilarToUsername(password, username string) bool {
	lowerUser := strings.ToLower(strings.TrimSpace(username))
	if len(lowerUser) < 3 {
		return false
	}
	lowerPass := strings.ToLower(password)

	if strings.Contains(lowerPass, lowerUser) || strings.Contains(lowerPass, reverseString(lowerUser)) {
		return true
	}

	substitutions := map[rune]rune{
		'a': '@', 'e': '3', 'i': '1', 'o': '0', 's': '$', 't': '7',
	}
	substituted := strings.Map(func(r rune) rune {
		if sub, ok := substitutions[r]; ok {
			return sub
		}
		return r
	}, lowerUser)
	return strings.Contains(lowerPass, substituted)
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
