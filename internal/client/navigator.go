// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package client

import (
	"sync"

	"github.com/storm-lzy/oxex-horses/internal/logger"
)

// LoginRedirector is the console rendition of the login-surface redirect.
// It remembers the path the failing call originated on so a subsequent
// successful login can return there, and it is idempotent: concurrent
// unauthorized failures produce a single pending redirect and a single
// log line.
type LoginRedirector struct {
	logger *logger.Logger

	mu      sync.Mutex
	pending bool
	from    string
}

// NewLoginRedirector constructs a redirector logging through log.
func NewLoginRedirector(log *logger.Logger) *LoginRedirector {
	if log == nil {
		log = logger.Nop()
	}
	return &LoginRedirector{logger: log}
}

// RedirectToLogin implements [adapter.Navigator]. The first call arms
// the pending redirect and records from; further calls while armed are
// no-ops.
func (r *LoginRedirector) RedirectToLogin(from string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending {
		return
	}
	r.pending = true
	r.from = from
	r.logger.Warn().Str("from", from).Msg("session invalid, login required")
}

// Pending reports whether a redirect is armed and the origin path to
// return to after login.
func (r *LoginRedirector) Pending() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.from, r.pending
}

// Reset disarms the redirect. Called after a successful login.
func (r *LoginRedirector) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = false
	r.from = ""
}
