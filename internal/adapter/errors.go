// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package adapter

import "errors"

// Sentinel errors wrapped by the envelope codec. Match with [errors.Is].
var (
	// ErrNetwork indicates the transport itself failed: the host was
	// unreachable, the connection dropped, or the request timed out.
	// No envelope reached the client.
	ErrNetwork = errors.New("network failure")

	// ErrServer indicates the backend reported a non-zero envelope code
	// other than the session-invalidating ones.
	ErrServer = errors.New("server failure")

	// ErrUnauthorized indicates the credential is missing, expired or
	// invalid, signalled either by an envelope code (401, 10005, 10006)
	// or by a bare HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")
)

// Envelope codes fixed by the backend contract.
const (
	CodeSuccess        = 0
	CodeInvalidParams  = 10001
	CodeUserExists     = 10002
	CodeUserNotFound   = 10003
	CodeWrongPassword  = 10004
	CodeTokenInvalid   = 10005
	CodeTokenExpired   = 10006
	CodePermissionDeny = 10007
	CodeNotFound       = 10008
	CodeServerError    = 50000
)

// FailureKind returns a short label for the classification of err,
// used as a metrics dimension and in logs.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrServer):
		return "server"
	default:
		return "unknown"
	}
}
