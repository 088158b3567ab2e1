// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

// Package adapter implements the HTTP transport layer shared by the
// end-user client and the admin console.
//
// The primary type is [Client], a request facade exposing one method per
// HTTP verb. Every call flows through the same pipeline: the current
// bearer token is attached (if one is held), the request is executed via
// resty, and the response body is interpreted as the backend's
// {code, message, data} envelope. A zero code resolves to the unwrapped
// data payload; any other code is mapped to one of the sentinel errors in
// errors.go so that callers can use [errors.Is] for transport-agnostic
// error handling. The envelope codes 401, 10005 and 10006 (and a bare
// HTTP 401) are contractually "session invalid": the facade clears the
// credential, notifies invalidation subscribers and signals the
// [Navigator] before propagating the failure.
package adapter

// Notifier receives exactly one human-readable message per failing call.
// The facade never swallows the failure afterwards; the notifier exists
// only so the hosting application can surface it to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to the [Notifier] interface.
type NotifierFunc func(message string)

// Notify implements [Notifier].
func (f NotifierFunc) Notify(message string) { f(message) }

// Navigator is signalled when a call classifies as unauthorized and the
// user must be sent to the login surface. from is the request path the
// failing call originated on, so the login surface can return there after
// a successful login.
//
// Implementations must be idempotent: several in-flight calls may fail
// with unauthorized at once, and redirecting to an already-current login
// surface has to be a no-op.
type Navigator interface {
	RedirectToLogin(from string)
}

// NavigatorFunc adapts a plain function to the [Navigator] interface.
type NavigatorFunc func(from string)

// RedirectToLogin implements [Navigator].
func (f NavigatorFunc) RedirectToLogin(from string) { f(from) }

// NopNotifier discards all messages. Intended for tests.
func NopNotifier() Notifier { return NotifierFunc(func(string) {}) }

// NopNavigator ignores all redirects. Intended for tests.
func NopNavigator() Navigator { return NavigatorFunc(func(string) {}) }
