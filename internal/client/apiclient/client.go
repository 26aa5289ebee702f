// Package apiclient is the authenticated HTTP client every back-office call
// goes through.
//
// Client attaches the stored bearer token, refreshes an expired session on
// 401 (at most one refresh in flight per Client) and retries the request
// once with the new token. Non-2xx responses become *APIError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/credentials"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
	"github.com/dmitrijs2005/wevraa-admin/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	// RefreshPath is the backend endpoint that exchanges a refresh token.
	RefreshPath = "/auth/refresh"

	// RequestIDHeader carries a per-call id, identical on the retry.
	RequestIDHeader = "X-Request-ID"

	refreshKey = "refresh"
)

// Request describes one logical API call.
type Request struct {
	Method string
	// Path is relative to the client prefix, or an absolute http(s) URL.
	Path   string
	Query  url.Values
	Header http.Header
	// Body is nil, *Form, *Binary, raw JSON ([]byte or json.RawMessage) or
	// any value encoding/json can marshal.
	Body any
	// SkipAuth omits the Authorization header.
	SkipAuth bool
	// SkipRefresh returns a 401 as is instead of refreshing.
	SkipRefresh bool
}

// Doer is implemented by *Client and by test fakes.
type Doer interface {
	Do(ctx context.Context, req Request, out any) error
}

// Call runs req and decodes the response into a new T.
func Call[T any](ctx context.Context, d Doer, req Request) (T, error) {
	var out T
	err := d.Do(ctx, req, &out)
	return out, err
}

// Client is the authenticated HTTP client for the back-office API.
// It is safe for concurrent use.
type Client struct {
	prefix  string
	store   credentials.Store
	http    *http.Client
	timeout time.Duration
	log     logging.Logger
	metrics *Metrics
	flight  singleflight.Group
}

// Option configures a Client in New.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger for attempt and refresh events.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records request and refresh metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTimeout sets the per-attempt timeout. It applies to the HTTP client
// in effect after all options, whatever their order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New returns a Client that resolves relative paths against prefix
// (see Prefix) and keeps the session in store.
func New(prefix string, store credentials.Store, opts ...Option) *Client {
	c := &Client{
		prefix: prefix,
		store:  store,
		http:   &http.Client{Timeout: 30 * time.Second},
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// Store returns the credential store the client reads tokens from.
func (c *Client) Store() credentials.Store {
	return c.store
}

// Do executes req and decodes a successful JSON response into out (which
// may be nil). A 401 triggers one refresh and one retry unless
// req.SkipRefresh is set.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	target := withQuery(BuildURL(c.prefix, req.Path), req.Query)

	body, err := encodeBody(req.Body)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()

	res, err := c.attempt(ctx, req, target, body, requestID)
	if err != nil {
		return err
	}

	if res.status == http.StatusUnauthorized && !req.SkipRefresh {
		if _, err := c.refresh(ctx, res.token); err != nil {
			return err
		}
		if res, err = c.attempt(ctx, req, target, body, requestID); err != nil {
			return err
		}
	}

	return decodeResponse(res, out)
}

// Refresh exchanges the stored refresh token for a new session, joining a
// refresh already in flight if there is one.
func (c *Client) Refresh(ctx context.Context) (*models.Session, error) {
	return c.refresh(ctx, "")
}

type attemptResult struct {
	status int
	body   []byte
	// token is the access token the attempt was sent with.
	token string
}

func (c *Client) attempt(ctx context.Context, req Request, target string, body encodedBody, requestID string) (attemptResult, error) {
	header, token, err := c.headers(ctx, req, body, requestID)
	if err != nil {
		return attemptResult{}, err
	}

	var r io.Reader
	if body.data != nil {
		r = bytes.NewReader(body.data)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, r)
	if err != nil {
		return attemptResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header = header

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.observeAttempt(req.Method, "error", time.Since(start))
		c.log.Debug(ctx, "request failed", "method", req.Method, "url", target, "request_id", requestID, "error", err)
		return attemptResult{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Debug(ctx, "unreadable response body", "url", target, "request_id", requestID, "error", err)
		data = nil
	}

	c.metrics.observeAttempt(req.Method, strconv.Itoa(resp.StatusCode), time.Since(start))
	c.log.Debug(ctx, "request done",
		"method", req.Method,
		"url", target,
		"status", resp.StatusCode,
		"request_id", requestID,
	)

	return attemptResult{status: resp.StatusCode, body: data, token: token}, nil
}

// headers is recomputed for every attempt so a retry carries the token
// stored by the refresh.
func (c *Client) headers(ctx context.Context, req Request, body encodedBody, requestID string) (http.Header, string, error) {
	h := make(http.Header)
	h.Set("Content-Type", body.contentType)
	h.Set("Accept", contentTypeJSON)
	h.Set(RequestIDHeader, requestID)

	for k, vs := range req.Header {
		h[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	if !body.json {
		h.Set("Content-Type", body.contentType)
	}

	if req.SkipAuth {
		return h, "", nil
	}
	token, err := c.store.AccessToken(ctx)
	if err != nil {
		return nil, "", err
	}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h, token, nil
}

// refresh runs the shared refresh. stale is the access token that was
// rejected; when the store already holds a different one another caller
// has refreshed in the meantime and no new refresh call is made. An empty
// stale forces a refresh.
func (c *Client) refresh(ctx context.Context, stale string) (*models.Session, error) {
	ch := c.flight.DoChan(refreshKey, func() (any, error) {
		return c.doRefresh(context.WithoutCancel(ctx), stale)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		s, _ := r.Val.(*models.Session)
		return s, nil
	}
}

func (c *Client) doRefresh(ctx context.Context, stale string) (*models.Session, error) {
	if stale != "" {
		current, err := c.store.AccessToken(ctx)
		if err == nil && current != "" && current != stale {
			return nil, nil
		}
	}

	refreshToken, err := c.store.RefreshToken(ctx)
	if err != nil {
		c.metrics.observeRefresh(refreshFailure)
		c.log.Warn(ctx, "refresh token unavailable", "error", err)
		return nil, sessionExpiredError()
	}
	if refreshToken == "" {
		c.metrics.observeRefresh(refreshNoToken)
		return nil, noRefreshTokenError()
	}

	var session models.Session
	err = c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        RefreshPath,
		Body:        models.RefreshRequest{RefreshToken: refreshToken},
		SkipAuth:    true,
		SkipRefresh: true,
	}, &session)
	if err == nil {
		err = credentials.SaveSession(ctx, c.store, &session)
	}
	if err != nil {
		c.metrics.observeRefresh(refreshFailure)
		c.log.Warn(ctx, "session refresh failed", "error", err)
		return nil, sessionExpiredError()
	}

	c.metrics.observeRefresh(refreshSuccess)
	c.log.Info(ctx, "session refreshed", "user", session.User.Email)
	return &session, nil
}

func decodeResponse(res attemptResult, out any) error {
	parsed, ok := parseBody(res.body)
	if res.status < 200 || res.status > 299 {
		return requestFailedError(res.status, parsed)
	}
	if out == nil || !ok {
		return nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// parseBody returns the JSON value of data. Empty, null or malformed bodies
// become an empty object and ok is false.
func parseBody(data []byte) (any, bool) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, false
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil || v == nil {
		return map[string]any{}, false
	}
	return v, true
}
