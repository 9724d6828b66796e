// Package transport provides the shared HTTP plumbing for the YouTube and
// Notion API clients: authentication, default headers, and JSON
// request/response handling.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/clipnote/clipnote/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = 30 * time.Second

// Client provides HTTP client functionality with authentication.
type Client struct {
	http    *http.Client
	auth    Authenticator
	apiKey  string
	service string            // service name used in error reporting
	headers map[string]string // extra headers applied to every request
}

// New creates a new transport client for the named service.
func New(service string, auth Authenticator, apiKey string) *Client {
	return &Client{
		http:    &http.Client{Timeout: DefaultHTTPTimeout},
		auth:    auth,
		apiKey:  apiKey,
		service: service,
	}
}

// WithHeader sets a header applied to every request and returns the client.
func (c *Client) WithHeader(key, value string) *Client {
	if c.headers == nil {
		c.headers = make(map[string]string)
	}
	c.headers[key] = value
	return c
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests to point
// at httptest servers.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.http = httpClient
	return c
}

// Do performs an HTTP request with authentication and default headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.auth != nil && c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPatch || req.Method == http.MethodPut {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// GetJSON performs a GET request and decodes the JSON response into target.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WrapAPI(c.service, 0, err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return errors.WrapAPI(c.service, 0, err)
	}
	return c.decode(resp, target)
}

// PostJSON performs a POST request with a JSON body and decodes the JSON
// response into target. A nil target discards the response body.
func (c *Client) PostJSON(ctx context.Context, url string, body, target any) error {
	return c.sendJSON(ctx, http.MethodPost, url, body, target)
}

// PatchJSON performs a PATCH request with a JSON body and decodes the JSON
// response into target. A nil target discards the response body.
func (c *Client) PatchJSON(ctx context.Context, url string, body, target any) error {
	return c.sendJSON(ctx, http.MethodPatch, url, body, target)
}

func (c *Client) sendJSON(ctx context.Context, method, url string, body, target any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.WrapParse("json", "request body", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.WrapAPI(c.service, 0, err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return errors.WrapAPI(c.service, 0, err)
	}
	return c.decode(resp, target)
}
