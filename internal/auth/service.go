// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/repository"
)

// Service registers and authenticates users against the repository and
// issues session tokens.
type Service struct {
	repo     repository.Repository
	hasher   *BcryptHasher
	tokens   *JWTManager
	policy   PasswordPolicy
	lockout  *LockoutManager
	security *logging.SecurityLogger

	// dummyHash is compared against when the username is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash string

	// registerMu makes the uniqueness check and AddUser one step.
	registerMu sync.Mutex
}

// NewService wires the auth service. tokens may be nil when only
// registration and password checks are needed.
func NewService(repo repository.Repository, cfg *config.SecurityConfig, tokens *JWTManager) (*Service, error) {
	var (
		cost        int
		maxAttempts int
		lockFor     time.Duration
	)
	if cfg != nil {
		cost, maxAttempts, lockFor = cfg.BcryptCost, cfg.LockoutMaxAttempts, cfg.LockoutDuration
	}

	hasher := NewBcryptHasher(cost)
	dummy, err := hasher.Hash("marquee-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("init auth service: %w", err)
	}

	return &Service{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		policy:    DefaultPasswordPolicy(),
		lockout:   NewLockoutManager(maxAttempts, lockFor),
		security:  logging.NewSecurityLogger(),
		dummyHash: dummy,
	}, nil
}

// Hasher returns the bcrypt hasher, shared with the dataset loader.
func (s *Service) Hasher() *BcryptHasher { return s.hasher }

// normalizeUsername applies the same folding as models.NewUser.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(username, password string) (models.UserDTO, error) {
	name := normalizeUsername(username)
	if err := s.policy.Validate(password, name); err != nil {
		s.security.LogEvent(logging.AuthEvent{Event: "register", Username: name, Reason: err.Error()})
		return models.UserDTO{}, err
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	if s.repo.GetUser(name) != nil {
		s.security.LogEvent(logging.AuthEvent{Event: "register", Username: name, Reason: "name taken"})
		return models.UserDTO{}, fmt.Errorf("register %q: %w", name, ErrNameNotUnique)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.UserDTO{}, fmt.Errorf("register %q: %w", name, err)
	}
	user := models.NewUser(name, hash)
	s.repo.AddUser(user)

	stats := s.repo.Stats()
	metrics.UpdateCatalogSize(stats.Movies, stats.Users, stats.Reviews)
	s.security.LogEvent(logging.AuthEvent{Event: "register", Username: name, Success: true})
	return user.ToDTO(), nil
}

// GetUser returns the public profile of username.
func (s *Service) GetUser(username string) (models.UserDTO, error) {
	user := s.repo.GetUser(normalizeUsername(username))
	if user == nil {
		return models.UserDTO{}, fmt.Errorf("get user %q: %w", username, ErrUserNotFound)
	}
	return user.ToDTO(), nil
}

// Authenticate checks password against the stored hash for username.
// Unknown users and wrong passwords both return ErrAuthentication; a
// locked account returns ErrAccountLocked without checking the password.
func (s *Service) Authenticate(username, password string) error {
	name := normalizeUsername(username)

	if locked, remaining := s.lockout.CheckLocked(name); locked {
		s.security.LogEvent(logging.AuthEvent{Event: "login", Username: name, Reason: "locked"})
		return fmt.Errorf("%w: retry in %s", ErrAccountLocked, remaining.Round(time.Second))
	}

	user := s.repo.GetUser(name)
	hash := s.dummyHash
	if user != nil {
		hash = user.PasswordHash()
	}
	if !s.hasher.Verify(hash, password) || user == nil {
		locked, _ := s.lockout.RecordFailedAttempt(name)
		reason := "bad credentials"
		if locked {
			reason = "bad credentials, account locked"
		}
		s.security.LogEvent(logging.AuthEvent{Event: "login", Username: name, Reason: reason})
		return ErrAuthentication
	}

	s.lockout.RecordSuccessfulLogin(name)
	return nil
}

// Login authenticates username and returns a signed session token.
func (s *Service) Login(username, password, ip string) (models.TokenResponse, error) {
	if s.tokens == nil {
		return models.TokenResponse{}, fmt.Errorf("login: token issuing is not configured")
	}
	if err := s.Authenticate(username, password); err != nil {
		return models.TokenResponse{}, err
	}

	name := normalizeUsername(username)
	token, expires, err := s.tokens.GenerateToken(name)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login: %w", err)
	}
	s.security.LogEvent(logging.AuthEvent{Event: "login", Username: name, IPAddress: ip, Success: true})
	return models.TokenResponse{Token: token, ExpiresAt: expires, Username: name}, nil
}
