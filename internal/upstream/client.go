// Package upstream talks to the external REST services the reader depends on.
// A Client is bound to one base URL and one bearer token; it never retries,
// rate limits or caches.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	maxErrorBody    = 4 << 10
	maxResponseBody = 8 << 20
)

type Config struct {
	Name       string
	BaseURL    string
	Token      string
	Timeout    time.Duration // 0 means no client-side timeout
	HTTPClient *http.Client
}

type Client struct {
	name       string
	baseURL    string
	token      string
	httpClient *http.Client
}

// Request describes one call. Header values override the client defaults,
// which lets a caller forward an end user's own bearer token.
type Request struct {
	Method string
	Path   string
	Body   any
	Header http.Header
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("upstream: base URL is required")
	}

	name := cfg.Name
	if name == "" {
		name = "upstream"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		name:       name,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
	}, nil
}

func (c *Client) Name() string { return c.name }

// Do performs the request and returns the raw response body of a 2xx answer.
func (c *Client) Do(ctx context.Context, r Request) ([]byte, error) {
	op := r.Method + " " + r.Path
	start := time.Now()

	body, err := c.do(ctx, op, r)

	observe(c.name, r.Method, start, err)

	return body, err
}

func (c *Client) do(ctx context.Context, op string, r Request) ([]byte, error) {
	var bodyReader io.Reader
	if r.Body != nil {
		js, err := json.Marshal(r.Body)
		if err != nil {
			return nil, &Error{Code: ErrCodeEncodeFailure, Client: c.name, Op: op, Err: err}
		}
		bodyReader = bytes.NewReader(js)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.baseURL+r.Path, bodyReader)
	if err != nil {
		return nil, &Error{Code: ErrCodeEncodeFailure, Client: c.name, Op: op, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for key, values := range r.Header {
		req.Header[key] = values
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newNetworkError(c.name, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newStatusError(c.name, op, resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &Error{Code: ErrCodeReadFailure, Client: c.name, Op: op, Err: err}
	}

	return body, nil
}

func (c *Client) Get(ctx context.Context, path string, header http.Header) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Header: header})
}

func (c *Client) Post(ctx context.Context, path string, body any, header http.Header) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body, Header: header})
}

func (c *Client) Put(ctx context.Context, path string, body any, header http.Header) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body, Header: header})
}

// Delete may carry a body; the identity endpoints expect credentials there.
func (c *Client) Delete(ctx context.Context, path string, body any, header http.Header) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Body: body, Header: header})
}

// BearerHeader builds an Authorization header for a caller-supplied token.
func BearerHeader(token string) http.Header {
	h := make(http.Header)
	h.Set("Authorization", "Bearer "+token)
	return h
}
