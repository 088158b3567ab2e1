// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storm-lzy/oxex-horses/internal/logger"
	"github.com/storm-lzy/oxex-horses/models"
)

// Session is the authority over the authenticated state of one
// deployment. It is constructed once per application start and lives for
// the process lifetime. Safe for concurrent use.
//
// State machine: Anonymous (no credential, no user) or Authenticated
// (credential present). Only a successful Login sets a credential; only
// Logout and the invalidation paths clear one.
type Session struct {
	transport Transport
	logger    *logger.Logger

	mu   sync.RWMutex
	user *models.User
}

// New constructs a Session over transport and subscribes to its
// invalidation signal so the current-user projection is dropped whenever
// the transport clears the credential.
func New(transport Transport, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}

	s := &Session{transport: transport, logger: log}
	transport.OnInvalidate(s.clearUser)
	return s
}

// IsLoggedIn reports whether a credential is currently held. It is
// exactly "credential present"; the user projection may still be empty
// until the first profile fetch.
func (s *Session) IsLoggedIn() bool {
	return s.transport.Token() != ""
}

// CurrentUser returns the current-user projection and whether one is
// set.
func (s *Session) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// LevelName returns the display label for the current user's level,
// falling back to the level-1 label when no user is set.
func (s *Session) LevelName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.GetLevelName(1)
	}
	return s.user.LevelName()
}

// Login authenticates with the backend. On success the returned token is
// persisted, the user projection stored, and the session becomes
// Authenticated. On failure the session stays Anonymous and the failure
// is surfaced unchanged.
func (s *Session) Login(ctx context.Context, username, password string) (models.User, error) {
	var resp models.LoginResponse
	err := s.transport.Post(ctx, "/auth/login", models.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return models.User{}, err
	}

	if err = s.transport.SetToken(resp.Token); err != nil {
		// SetToken placed the token in memory before the store failed;
		// a failing login must leave the session Anonymous.
		s.transport.ClearToken()
		return models.User{}, fmt.Errorf("persist token: %w", err)
	}

	s.mu.Lock()
	u := resp.User
	s.user = &u
	s.mu.Unlock()

	s.logger.Info().Str("username", resp.User.Username).Msg("logged in")
	return resp.User, nil
}

// Register creates a new account. Registration is not auto-login: the
// session state is never changed, and the caller is expected to Login
// afterwards.
func (s *Session) Register(ctx context.Context, username, password string, occupationID int64) (models.User, error) {
	var u models.User
	err := s.transport.Post(ctx, "/auth/register",
		models.RegisterRequest{Username: username, Password: password, OccupationID: occupationID}, &u)
	return u, err
}

// FetchProfile refreshes the current-user projection in place. Without a
// credential it is a no-op performing no network call. A failing
// authenticated fetch is treated as session invalidation: the credential
// is assumed dead and the session returns to Anonymous.
func (s *Session) FetchProfile(ctx context.Context) error {
	if !s.IsLoggedIn() {
		return nil
	}

	var u models.User
	if err := s.transport.Get(ctx, "/user/profile", nil, &u); err != nil {
		s.Logout()
		return err
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

// UpdateProfile pushes mutable profile fields and refreshes the local
// projection on success.
func (s *Session) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	if err := s.transport.Put(ctx, "/user/profile", req, nil); err != nil {
		return err
	}
	return s.FetchProfile(ctx)
}

// Logout unconditionally clears the credential and the user projection,
// returning the session to Anonymous. Idempotent.
func (s *Session) Logout() {
	s.transport.ClearToken()
	s.clearUser()
}

// Restore inspects any persisted credential at startup. A stored token
// whose exp claim is already past is discarded rather than starting a
// doomed session. Reports whether a usable credential remains.
func (s *Session) Restore() bool {
	token := s.transport.Token()
	if token == "" {
		return false
	}

	if tokenExpired(token) {
		s.logger.Info().Msg("stored token expired, discarding")
		s.Logout()
		return false
	}
	return true
}

// tokenExpired parses the token without verification and checks its exp
// claim. Tokens that do not parse or carry no exp claim are kept; the
// backend remains the authority and will reject them if truly invalid.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (s *Session) clearUser() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}
