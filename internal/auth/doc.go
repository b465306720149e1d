// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package auth registers and authenticates catalog users and guards the
write endpoints of the API.

# Components

  - BcryptHasher: password hashing, shared with the dataset loader.
  - PasswordPolicy: registration rules (eight characters, mixed case, a
    digit, not common, not derived from the username).
  - LockoutManager: locks a username after repeated failed logins, with
    exponential backoff.
  - JWTManager: HS256 session tokens carrying the username.
  - Service: Register, GetUser, Authenticate and Login.
  - Middleware: RequireAuth for bearer-token routes.

# Errors

  - ErrNameNotUnique: the username is taken.
  - ErrAuthentication: unknown user or wrong password, never distinguished.
  - ErrAccountLocked: too many failed logins.
  - ErrWeakPassword: the password breaks the policy.
  - ErrInvalidToken: the token is malformed, forged or expired.

# Usage

	tokens, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	svc, err := auth.NewService(repo, &cfg.Security, tokens)
	if err != nil {
	    return err
	}
	r.With(auth.NewMiddleware(tokens).RequireAuth).Post("/movies/{rank}/reviews", h.AddReview)

Account events go through logging.SecurityLogger with usernames masked.
*/
package auth
