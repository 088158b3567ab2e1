// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/storm-lzy/oxex-horses/internal/logger"
	"github.com/storm-lzy/oxex-horses/internal/store"
)

// DefaultTimeout bounds every request unless overridden per call.
const DefaultTimeout = 15 * time.Second

// Config carries the per-deployment wiring of a [Client]. The end-user
// client and the admin console differ only in BaseURL and Store; they
// must not share a Store.
type Config struct {
	// BaseURL is the backend root including any base path,
	// e.g. "https://host/api" for the client, "https://host" for admin.
	BaseURL string
	// Timeout is the default per-request timeout; zero means
	// [DefaultTimeout].
	Timeout time.Duration
	// Store is the durable credential slot for this deployment.
	Store store.TokenStore
	// Notifier receives one message per failing call. Nil means discard.
	Notifier Notifier
	// Navigator is signalled on session invalidation. Nil means ignore.
	Navigator Navigator
	// Logger is the structured logger. Nil means no output.
	Logger *logger.Logger
}

// Client is the request facade every API call flows through. It owns the
// in-memory bearer token (mirrored to the durable store), attaches it to
// outgoing requests, classifies failures via the envelope codec, and
// drives session invalidation side effects.
type Client struct {
	http      *resty.Client
	timeout   time.Duration
	store     store.TokenStore
	notifier  Notifier
	navigator Navigator
	logger    *logger.Logger

	mu           sync.RWMutex
	token        string
	onInvalidate []func()
}

// NewClient constructs a [Client] from cfg. The base URL is normalised
// and validated, the default timeout applied, and any previously
// persisted token restored from the store so an existing session
// survives process restarts.
func NewClient(cfg Config) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryTokenStore()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = NopNotifier()
	}
	if cfg.Navigator == nil {
		cfg.Navigator = NopNavigator()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL)

	c := &Client{
		http:      httpClient,
		timeout:   cfg.Timeout,
		store:     cfg.Store,
		notifier:  cfg.Notifier,
		navigator: cfg.Navigator,
		logger:    cfg.Logger,
	}

	token, err := cfg.Store.Load()
	if err != nil && !errors.Is(err, store.ErrTokenNotFound) {
		return nil, fmt.Errorf("restore token: %w", err)
	}
	c.token = token

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) in memory and in the
// durable slot. All subsequent requests carry it as a bearer credential.
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = strings.TrimSpace(token)
	return c.store.Save(c.token)
}

// Token returns the bearer token currently held, or an empty string.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ClearToken empties the in-memory token and the durable slot.
// Idempotent.
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		c.logger.Error().Err(err).Msg("clear token store")
	}
}

// OnInvalidate registers fn to run whenever a call classifies as
// unauthorized and the credential is cleared. The session layer uses
// this to drop its current-user state. Not safe to call concurrently
// with in-flight requests; register during wiring.
func (c *Client) OnInvalidate(fn func()) {
	c.onInvalidate = append(c.onInvalidate, fn)
}

// requestOptions is the per-call configuration of a facade operation.
type requestOptions struct {
	timeout time.Duration
}

// RequestOption customises a single facade call.
type RequestOption func(*requestOptions)

// WithTimeout replaces the default timeout for one call.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) { o.timeout = d }
}

// Get performs a GET request and decodes the envelope payload into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, opts...)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, opts...)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, opts...)
}

// Patch performs a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, opts...)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out, opts...)
}

// do runs the shared pipeline: build request, inject auth, execute,
// classify, act on the classification, propagate. The token is read at
// send time, so a logout that lands before transmission is observed by
// not-yet-sent requests.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, opts ...RequestOption) error {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}
	// The timeout is enforced through the request context only, so a
	// per-call override can both shorten and extend the default window.
	timeout := o.timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	err = decodeEnvelope(resp, err, out)
	observeRequest(method, err, time.Since(start))

	if err != nil {
		c.reportFailure(method, path, err)
		return err
	}
	return nil
}

// reportFailure performs the side effects of a failing call exactly once:
// one notification per failure, plus credential clearing and a redirect
// when the failure is an unauthorized classification. The failure is
// never swallowed; do still returns it to the caller.
func (c *Client) reportFailure(method, path string, err error) {
	c.notifier.Notify(failureMessage(err))
	c.logger.Warn().
		Err(err).
		Str("method", method).
		Str("path", path).
		Str("kind", FailureKind(err)).
		Msg("api request failed")

	if errors.Is(err, ErrUnauthorized) {
		c.invalidate()
		c.navigator.RedirectToLogin(path)
	}
}

// invalidate clears the credential and informs subscribers. A second
// invalidation while already logged out is a safe no-op, which makes
// late-arriving unauthorized completions harmless.
func (c *Client) invalidate() {
	c.ClearToken()
	for _, fn := range c.onInvalidate {
		fn()
	}
}

// failureMessage strips the sentinel prefix so notifications carry the
// human-readable part only.
func failureMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrUnauthorized, ErrServer, ErrNetwork} {
		if prefix := sentinel.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
