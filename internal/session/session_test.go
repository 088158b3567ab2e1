// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storm-lzy/oxex-horses/internal/adapter"
	"github.com/storm-lzy/oxex-horses/internal/store"
	"github.com/storm-lzy/oxex-horses/models"
)

func newTestSession(t *testing.T, serverURL string) (*Session, *adapter.Client, store.TokenStore) {
	t.Helper()

	tokens := store.NewMemoryTokenStore()
	c, err := adapter.NewClient(adapter.Config{BaseURL: serverURL, Store: tokens})
	require.NoError(t, err)

	return New(c, nil), c, tokens
}

func writeEnvelope(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			assert.Equal(t, http.MethodPost, r.Method)

			var req models.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "p1", req.Password)

			writeEnvelope(w, 0, "success", models.LoginResponse{
				Token: "tok-123",
				User:  models.User{ID: 1, Username: "alice", Level: 2},
			})
		case "/user/profile":
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			writeEnvelope(w, 0, "success", models.User{ID: 1, Username: "alice", Level: 2})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	s, _, tokens := newTestSession(t, srv.URL)

	user, err := s.Login(context.Background(), "alice", "p1")
	require.NoError(t, err)

	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Grinding Workhorse", s.LevelName())

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", stored)

	// subsequent authenticated calls carry the bearer token
	require.NoError(t, s.FetchProfile(context.Background()))
}

func TestLogin_Failure_StaysAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, adapter.CodeWrongPassword, "wrong password", nil)
	}))
	defer srv.Close()

	s, _, tokens := newTestSession(t, srv.URL)

	_, err := s.Login(context.Background(), "alice", "bad")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrServer)
	assert.False(t, s.IsLoggedIn())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
	_, loadErr := tokens.Load()
	assert.ErrorIs(t, loadErr, store.ErrTokenNotFound)
}

// brokenStore fails every Save so persisting a fresh token errors out.
type brokenStore struct {
	saveErr error
}

func (s *brokenStore) Load() (string, error) { return "", store.ErrTokenNotFound }
func (s *brokenStore) Save(string) error     { return s.saveErr }
func (s *brokenStore) Clear() error          { return nil }

func TestLogin_PersistFailure_StaysAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 0, "success", models.LoginResponse{
			Token: "tok-123",
			User:  models.User{ID: 1, Username: "alice", Level: 2},
		})
	}))
	defer srv.Close()

	c, err := adapter.NewClient(adapter.Config{
		BaseURL: srv.URL,
		Store:   &brokenStore{saveErr: errors.New("disk full")},
	})
	require.NoError(t, err)
	s := New(c, nil)

	_, err = s.Login(context.Background(), "alice", "p1")

	require.Error(t, err)
	assert.False(t, s.IsLoggedIn(), "a login that fails to persist must not hold a credential")
	assert.Empty(t, c.Token())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		writeEnvelope(w, 0, "success", models.User{ID: 2, Username: "bob", Level: 1})
	}))
	defer srv.Close()

	s, _, _ := newTestSession(t, srv.URL)

	user, err := s.Register(context.Background(), "bob", "p2", 3)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	assert.False(t, s.IsLoggedIn())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

// ── FetchProfile ─────────────────────────────────────────────────────────────

func TestFetchProfile_WithoutCredential_NoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeEnvelope(w, 0, "success", nil)
	}))
	defer srv.Close()

	s, _, _ := newTestSession(t, srv.URL)

	require.NoError(t, s.FetchProfile(context.Background()))
	assert.Zero(t, calls.Load())
}

func TestFetchProfile_Failure_InvalidatesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, adapter.CodeServerError, "boom", nil)
	}))
	defer srv.Close()

	s, c, _ := newTestSession(t, srv.URL)
	require.NoError(t, c.SetToken("tok-stale"))

	err := s.FetchProfile(context.Background())

	require.Error(t, err)
	assert.False(t, s.IsLoggedIn())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

// ── Invalidation via transport ───────────────────────────────────────────────

func TestUnauthorizedCall_ClearsCurrentUser(t *testing.T) {
	var unauthorized atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if unauthorized.Load() {
			writeEnvelope(w, adapter.CodeTokenExpired, "token expired", nil)
			return
		}
		writeEnvelope(w, 0, "success", models.LoginResponse{
			Token: "tok-123",
			User:  models.User{ID: 1, Username: "alice", Level: 2},
		})
	}))
	defer srv.Close()

	s, c, _ := newTestSession(t, srv.URL)
	_, err := s.Login(context.Background(), "alice", "p1")
	require.NoError(t, err)
	require.True(t, s.IsLoggedIn())

	unauthorized.Store(true)
	err = c.Get(context.Background(), "/posts", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, s.IsLoggedIn())
	_, ok := s.CurrentUser()
	assert.False(t, ok, "current user must be dropped on invalidation")
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_Idempotent(t *testing.T) {
	s, c, _ := newTestSession(t, "http://localhost:8080/api")
	require.NoError(t, c.SetToken("tok-123"))

	s.Logout()
	assert.False(t, s.IsLoggedIn())

	s.Logout()
	assert.False(t, s.IsLoggedIn())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

// ── Restore ──────────────────────────────────────────────────────────────────

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": expiresAt.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestRestore_NoToken(t *testing.T) {
	s, _, _ := newTestSession(t, "http://localhost:8080/api")
	assert.False(t, s.Restore())
}

func TestRestore_ExpiredTokenDiscarded(t *testing.T) {
	tokens := store.NewMemoryTokenStore()
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(-time.Hour))))

	c, err := adapter.NewClient(adapter.Config{BaseURL: "http://localhost:8080/api", Store: tokens})
	require.NoError(t, err)
	s := New(c, nil)

	assert.False(t, s.Restore())
	assert.Empty(t, c.Token())
	_, loadErr := tokens.Load()
	assert.ErrorIs(t, loadErr, store.ErrTokenNotFound)
}

func TestRestore_ValidTokenKept(t *testing.T) {
	tokens := store.NewMemoryTokenStore()
	require.NoError(t, tokens.Save(signedToken(t, time.Now().Add(time.Hour))))

	c, err := adapter.NewClient(adapter.Config{BaseURL: "http://localhost:8080/api", Store: tokens})
	require.NoError(t, err)
	s := New(c, nil)

	assert.True(t, s.Restore())
	assert.True(t, s.IsLoggedIn())
}

func TestRestore_OpaqueTokenKept(t *testing.T) {
	tokens := store.NewMemoryTokenStore()
	require.NoError(t, tokens.Save("opaque-not-a-jwt"))

	c, err := adapter.NewClient(adapter.Config{BaseURL: "http://localhost:8080/api", Store: tokens})
	require.NoError(t, err)
	s := New(c, nil)

	assert.True(t, s.Restore(), "non-JWT tokens are left for the backend to judge")
}

// ── Level names ──────────────────────────────────────────────────────────────

func TestLevelName_DefaultsWithoutUser(t *testing.T) {
	s, _, _ := newTestSession(t, "http://localhost:8080/api")
	assert.Equal(t, "Workhorse", s.LevelName())
}
