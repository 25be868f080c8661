// Package http provides the transport layer for the SiamPay API: it builds
// authenticated requests against one endpoint, performs the call, and
// translates error payloads into the public error taxonomy.
package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/siampay/siampay-go/internal/constants"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP requestor bound to a single endpoint and API key.
type Client struct {
	baseURL    string
	apiKey     string
	missingKey error
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Request represents one API request.
type Request struct {
	Method  string
	Path    string
	Payload url.Values
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug additionally logs response bodies.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent appends extra to the baseline User-Agent.
func WithUserAgent(extra string) Option {
	return func(c *Client) {
		if extra != "" {
			c.userAgent = c.userAgent + " " + extra
		}
	}
}

// WithMissingKeyError sets the error returned when the API key is unset.
func WithMissingKeyError(err error) Option {
	return func(c *Client) {
		c.missingKey = err
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates an HTTP client for the given endpoint and API key.
//
// Server certificates are validated against the bundled trust store, not
// the platform store, so validation behaves identically across
// environments. The underlying client performs no retries; transient
// failures propagate to the caller.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.HTTPClient.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{
			RootCAs:    trustedRoots(),
			MinVersion: tls.VersionTLS12,
		},
	}

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		missingKey: siampay.ErrSecretKeyRequired,
		httpClient: retryClient,
		userAgent: fmt.Sprintf("SiamPayGo/%s SiamPayAPI/%s",
			constants.ClientVersion, constants.APICompatVersion),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// JoinURL joins base and path segments with single slashes. Segments are
// trimmed so a base with a trailing slash or a segment with a leading one
// never produces a doubled or dropped separator.
func JoinURL(base string, segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.Trim(segment, "/"); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.TrimSuffix(base, "/") + "/" + strings.Join(parts, "/")
}

// Do performs the request and returns the response.
//
// The baseline Accept and User-Agent headers are authoritative: headers
// supplied on the request merge in first and cannot override them. When
// the decoded body carries the "error" discriminator, Do returns the
// corresponding *siampay.APIError instead of usable data, whatever the
// HTTP status code was.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, c.missingKey
	}

	fullURL := JoinURL(c.baseURL, req.Path)

	payload := req.Payload
	if payload == nil {
		payload = url.Values{}
	}

	encoded := payload.Encode()

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, strings.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if encoded != "" {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.SetBasicAuth(c.apiKey, "")

	if c.logger != nil {
		c.logger.Info("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
		c.logger.Debug("HTTP Request Details", map[string]interface{}{
			"authorization": c.apiKey,
			"payload":       encoded,
			"headers":       httpReq.Header,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"body":   string(body),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	apiErr, err := translateError(body, httpResp.StatusCode)
	if err != nil {
		return resp, err
	}

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

// translateError decodes the response envelope and maps an error payload
// to the public error type. A body that is not valid JSON is a decoding
// error, not an API error.
func translateError(body []byte, statusCode int) (*siampay.APIError, error) {
	var envelope struct {
		Object  string `json:"object"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if envelope.Object != "error" {
		return nil, nil
	}

	return &siampay.APIError{
		Code:       envelope.Code,
		Message:    envelope.Message,
		StatusCode: statusCode,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path})
}

// Post performs a POST request with a form-encoded payload.
func (c *Client) Post(ctx context.Context, path string, payload url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Payload: payload})
}

// Patch performs a PATCH request with a form-encoded payload.
func (c *Client) Patch(ctx context.Context, path string, payload url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Payload: payload})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
