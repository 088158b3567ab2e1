// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Envelope is the uniform response body of every backend endpoint.
// Code zero means success and Data is the authoritative payload; any
// other code is a failure and Data carries no contractual meaning.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// isSessionCode reports whether code contractually means the credential
// is missing, expired or invalid. The three values are defined by the
// backend and must be treated identically.
func isSessionCode(code int) bool {
	return code == http.StatusUnauthorized || code == CodeTokenInvalid || code == CodeTokenExpired
}

// decodeEnvelope turns a raw transport result into either the unwrapped
// data payload (decoded into out when non-nil) or a classified error.
// It is a pure classification step: it never touches session state.
//
// transportErr is the error returned by the transport itself; when set,
// no envelope inspection is attempted and the result is [ErrNetwork].
// When the body does not parse as an envelope, the HTTP status decides:
// 401 maps to [ErrUnauthorized], anything else non-2xx to [ErrServer].
func decodeEnvelope(resp *resty.Response, transportErr error, out any) error {
	if transportErr != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, transportErr)
	}

	var env Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return classifyStatus(resp)
	}

	if env.Code != CodeSuccess {
		msg := strings.TrimSpace(env.Message)
		if msg == "" {
			msg = "request failed"
		}
		if isSessionCode(env.Code) {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return fmt.Errorf("%w: %s", ErrServer, msg)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode response payload: %v", ErrServer, err)
	}
	return nil
}

// classifyStatus handles responses whose body is not a usable envelope.
// The HTTP status takes over: 401 still invalidates the session.
func classifyStatus(resp *resty.Response) error {
	status := resp.StatusCode()

	if status == http.StatusUnauthorized {
		return fmt.Errorf("%w: http 401", ErrUnauthorized)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("%w: http %d: %s", ErrServer, status, body)
}
