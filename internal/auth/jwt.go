// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/marquee/internal/config"
)

const tokenIssuer = "marquee"

// Claims represents JWT claims
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTManager handles JWT token creation and validation
type JWTManager struct {
	secret  []byte
	timeout time.Duration
	now     func() time.Time
}

// NewJWTManager creates a JWT manager signing with HS256.
//
// Example:
//
//	jwtManager, err := auth.NewJWTManager(&cfg.Security)
//	if err != nil {
//	    return fmt.Errorf("jwt: %w", err)
//	}
func NewJWTManager(cfg *config.SecurityConfig) (*JWTManager, error) {
	if cfg == nil || cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}
	timeout := cfg.SessionTimeout
	if timeout <= 0 {
		timeout = 24 * time.Hour
	}

	return &JWTManager{
		secret:  []byte(cfg.JWTSecret),
		timeout: timeout,
		now:     time.Now,
	}, nil
}

// GenerateToken creates a signed token for username and returns it with
// its expiry.
func (m *JWTManager) GenerateToken(username string) (string, time.Time, error) {
	now := m.now()
	expires := now.Add(m.timeout)
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, expires, nil
}

// ValidateToken checks the signature, algorithm, issuer and time claims of
// tokenString and returns its claims. Every failure wraps ErrInvalidToken.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, fmt.Errorf("%w: invalid token claims", ErrInvalidToken)
	}

	return claims, nil
}
