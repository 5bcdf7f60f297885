// Package api provides the HTTP client for the remote Job-Description Service.
// All lifecycle workflows go through this single request/response surface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "jobdesc-cli/1.0"

// sessionHeader carries the caller credential on mutating requests. The
// server tolerates its absence; attaching it is client-side courtesy only.
const sessionHeader = "x-session-secret"

// requestIDHeader carries a per-request UUID for server-side correlation.
const requestIDHeader = "X-Request-ID"

// Options configures the client.
type Options struct {
	Timeout       time.Duration
	UserAgent     string
	SessionSecret string
}

// DefaultOptions returns sensible defaults for talking to the service.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client talks to the Job-Description Service over REST/JSON.
type Client struct {
	baseURL   string
	secret    string
	userAgent string
	http      *http.Client
}

// New creates a Client for the service rooted at baseURL (including the /api
// prefix, e.g. "https://jobdesc.example.com/api").
func New(baseURL string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &RemoteError{
			Message: fmt.Sprintf("invalid base URL %q", baseURL),
			Cause:   err,
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secret:    opts.SessionSecret,
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}, nil
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// isReadOnly reports whether a method never mutates server state. Only
// mutating requests carry the session credential.
func isReadOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// newRequest builds a request with the standard headers applied.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &RemoteError{Message: "failed to create request", Cause: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, uuid.NewString())
	if !isReadOnly(method) && c.secret != "" {
		req.Header.Set(sessionHeader, c.secret)
	}
	return req, nil
}

// doJSON executes a JSON request. A non-nil body is marshalled as the JSON
// payload; a non-nil out receives the decoded response body. Non-2xx
// responses become a RemoteError with the server's message when present.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Message: "failed to encode request body", Cause: err}
		}
		payload = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Message: fmt.Sprintf("%s %s failed", method, path), Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{StatusCode: resp.StatusCode, Message: extractMessage(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &RemoteError{StatusCode: resp.StatusCode, Message: "failed to decode response body", Cause: err}
		}
	}
	return nil
}

// doStream executes a request and copies the raw response body to w. Used
// for binary document exports.
func (c *Client) doStream(ctx context.Context, method, path string, w io.Writer) error {
	req, err := c.newRequest(ctx, method, path, nil, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Message: fmt.Sprintf("%s %s failed", method, path), Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RemoteError{StatusCode: resp.StatusCode, Message: extractMessage(respBody)}
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return &RemoteError{StatusCode: resp.StatusCode, Message: "failed to stream response body", Cause: err}
	}
	return nil
}
