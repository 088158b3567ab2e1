// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

// Package store provides the durable credential slot backing the session
// layer. Each deployment (end-user client, admin console) gets its own
// slot; the slots never share state.
package store

import "errors"

// ErrTokenNotFound is returned by [TokenStore.Load] when the slot is
// empty, which is the persisted representation of "logged out".
var ErrTokenNotFound = errors.New("token not found")

// TokenStore is a single-value durable slot holding the current bearer
// token. Implementations must be safe for concurrent use.
type TokenStore interface {
	// Load returns the stored token, or [ErrTokenNotFound] if the slot
	// is empty or was cleared.
	Load() (string, error)

	// Save overwrites the slot with token. At most one live credential
	// exists per deployment; saving replaces any previous value.
	Save(token string) error

	// Clear empties the slot. Clearing an already-empty slot is a no-op.
	Clear() error
}
