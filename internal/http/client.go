// Package http implements the request executor for the Robot webservice.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/hrobot-io/hrobot/internal/auth"
	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

const defaultUserAgent = "hrobot-go/1.0"

// Client executes HTTP requests against the Robot webservice. It attaches
// Basic authentication, form-encodes no bodies itself (callers pass
// pre-encoded form strings), and maps responses onto the typed error set.
// It is safe for concurrent use.
type Client struct {
	baseURL     string
	credentials auth.Credentials
	httpClient  *retryablehttp.Client
	userAgent   string
	logger      hrobot.Logger
	debug       bool
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger hrobot.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig opts in to transport-level retries. The zero default never
// retries: several Robot mutations carry billing consequences, so retry
// policy stays with the caller.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying transport, e.g. for proxies or TLS
// pinning.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a request executor for the given endpoint.
func NewClient(baseURL string, credentials auth.Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		httpClient:  retryClient,
		userAgent:   defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request represents an HTTP request. Path segments holding identifiers must
// be escaped by the caller (url.PathEscape); Body is a pre-encoded
// application/x-www-form-urlencoded string.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    string
	Headers map[string]string
}

// Response represents an HTTP response with the body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do executes the request. Non-2xx responses are returned together with the
// typed error parsed from the body: *hrobot.APIError for structured Robot
// errors, *hrobot.RawError otherwise. Exchange failures yield a
// *hrobot.TransportError and no response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", c.credentials.HeaderValue())
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != "" {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &hrobot.TransportError{Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &hrobot.TransportError{Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"bytes":  len(resp.Body),
		})
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	apiErr, parseErr := hrobot.ParseAPIError(resp.Body)
	if parseErr != nil {
		return resp, &hrobot.RawError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	return resp, apiErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a pre-encoded form body.
func (c *Client) Post(ctx context.Context, path, body string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a pre-encoded form body.
func (c *Client) Put(ctx context.Context, path, body string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request. Some Robot endpoints take a form body on
// DELETE (vSwitch cancellation, server detach); pass "" when there is none.
func (c *Client) Delete(ctx context.Context, path, body string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Body: body})
}
