// Package api is the HTTP client for the remote helpdesk service. It owns
// the request/response contracts: bearer authentication, the JSON data
// envelope, multipart submissions, error-message extraction, and the
// single automatic retry for read queries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"deskline/internal/shared/constants"
	apperrors "deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

// TokenSource supplies the current bearer token, empty when logged out.
type TokenSource func() string

// Client is the helpdesk API client.
type Client struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
	logger     logger.Interface
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log logger.Interface) Option {
	return func(client *Client) {
		client.logger = log
	}
}

// NewClient creates a new helpdesk API client. token supplies the bearer
// token per request so a login during the process lifetime takes effect
// immediately.
func NewClient(baseURL string, token TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.NewLogger()
	}
	if c.token == nil {
		c.token = func() string { return "" }
	}
	return c
}

// noAuthPaths are the routes served without a bearer token.
var noAuthPaths = map[string]struct{}{
	"/login":           {},
	"/forgot-password": {},
	"/reset-password":  {},
}

type requestSpec struct {
	method string
	path   string
	body   any
	// readQuery requests get one transparent retry on transport failure.
	// Mutations never do, to avoid duplicate creates and deletes.
	readQuery bool
}

func (c *Client) doRequest(ctx context.Context, spec requestSpec, result any) error {
	var payload []byte
	if spec.body != nil {
		data, err := json.Marshal(spec.body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = data
	}

	attempts := 1
	if spec.readQuery {
		attempts = 2
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			c.logger.Debugw("retrying read query",
				"method", spec.method,
				"path", spec.path)
		}
		lastErr = c.attempt(ctx, spec, payload, result)
		if lastErr == nil || !apperrors.IsRetryable(lastErr) {
			return lastErr
		}
		if ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) attempt(ctx context.Context, spec requestSpec, payload []byte, result any) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, c.baseURL+spec.path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}
	req.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	c.authorize(req, spec.path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError(constants.ErrMsgTransportFailure, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewTransportError(constants.ErrMsgTransportFailure, err.Error())
	}

	return c.decode(spec, resp.StatusCode, respBody, result)
}

func (c *Client) authorize(req *http.Request, path string) {
	if _, open := noAuthPaths[path]; open {
		return
	}
	if token := c.token(); token != "" {
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
}

// envelope is the common shape of every response body. Individual
// endpoints decode their own data payload from Data.
type envelope struct {
	Status  *int            `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) decode(spec requestSpec, statusCode int, body []byte, result any) error {
	var env envelope
	// Bodies are not guaranteed to be JSON on errors; the fallback chain
	// below covers that.
	_ = json.Unmarshal(body, &env)

	if statusCode == http.StatusUnauthorized {
		c.logger.Warnw("request rejected as unauthorized",
			"method", spec.method,
			"path", spec.path)
		return apperrors.NewUnauthorizedError(constants.ErrMsgUnauthorized, serverMessage(env))
	}
	if statusCode == http.StatusNotFound {
		return apperrors.NewNotFoundError(serverMessage(env))
	}
	if statusCode < 200 || statusCode >= 300 {
		return apperrors.NewServerError(serverMessage(env),
			fmt.Sprintf("http status %d", statusCode))
	}
	// The API sometimes reports failure in a 2xx body through its status
	// field. A present status other than 200 is a failure.
	if env.Status != nil && *env.Status != http.StatusOK {
		return apperrors.NewServerError(serverMessage(env),
			fmt.Sprintf("body status %d", *env.Status))
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return apperrors.NewServerError(constants.ErrMsgServerFailure,
			"malformed response body")
	}
	return nil
}

// serverMessage extracts a display message from a response envelope:
// message field, then error field, then the fixed default.
func serverMessage(env envelope) string {
	if env.Message != "" {
		return env.Message
	}
	if env.Error != "" {
		return env.Error
	}
	return constants.ErrMsgServerFailure
}
