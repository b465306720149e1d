// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"errors"
	"fmt"

	"github.com/tomtom215/marquee/internal/repository"
)

var (
	// ErrNameNotUnique is returned when registering a username that exists.
	ErrNameNotUnique = errors.New("username already taken")

	// ErrAuthentication is returned for an unknown user or a wrong password.
	// The two cases are deliberately indistinguishable.
	ErrAuthentication = errors.New("invalid username or password")

	// ErrAccountLocked is returned while an account is locked out after
	// repeated failed logins.
	ErrAccountLocked = errors.New("account temporarily locked")

	// ErrWeakPassword is returned when a password fails the password policy.
	ErrWeakPassword = errors.New("password does not meet policy")

	// ErrUserNotFound is returned by GetUser for an unknown username.
	ErrUserNotFound = fmt.Errorf("user %w", repository.ErrNotFound)

	// ErrInvalidToken is returned for a malformed, expired or forged token.
	ErrInvalidToken = errors.New("invalid token")
)
