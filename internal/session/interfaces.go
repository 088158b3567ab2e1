// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

// Package session owns the authenticated-session state machine: the
// bearer credential (held by the transport, persisted by the store) and
// the current-user projection. It is the single place allowed to set a
// credential, and, together with transport-level invalidation, the
// single place allowed to clear one.
package session

import (
	"context"
	"net/url"

	"github.com/storm-lzy/oxex-horses/internal/adapter"
)

// Transport is the slice of the request facade the session layer needs.
// Implemented by [adapter.Client].
type Transport interface {
	Get(ctx context.Context, path string, query url.Values, out any, opts ...adapter.RequestOption) error
	Post(ctx context.Context, path string, body, out any, opts ...adapter.RequestOption) error
	Put(ctx context.Context, path string, body, out any, opts ...adapter.RequestOption) error

	Token() string
	SetToken(token string) error
	ClearToken()
	OnInvalidate(fn func())
}
