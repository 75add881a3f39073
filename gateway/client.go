// Package gateway is the typed client for the gym-management REST backend.
// Every backend endpoint gets one method; every failure is normalized into a
// single *APIError shape the pages can render directly.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseBytes = 4 << 20

type Client struct {
	baseURL  string
	docqaURL string
	http     *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (primarily for testing).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithDocQABaseURL points the Ask call at a separate document-QA service.
// Defaults to the main backend base URL.
func WithDocQABaseURL(u string) Option {
	return func(c *Client) {
		c.docqaURL = normalizeBaseURL(u)
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: normalizeBaseURL(baseURL),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	c.docqaURL = c.baseURL

	for _, opt := range opts {
		opt(c)
	}
	return c
}

func normalizeBaseURL(u string) string {
	return strings.TrimSuffix(u, "/") + "/"
}

// do sends one request and decodes a 2xx JSON body into out when out is
// non-nil. Authenticated calls always carry the access token as a bearer
// header; there is no unauthenticated variant of a protected call.
func (c *Client) do(ctx context.Context, method, url, accessToken string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("[gateway do] marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("[gateway do] build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: TransportErrorMessage}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &APIError{Message: TransportErrorMessage}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Message: TransportErrorMessage}
	}
	return nil
}

// list fetches a collection endpoint. The backend is inconsistent about list
// shapes: some endpoints return a bare JSON array, others a {count, items}
// envelope. Both decode to the same slice.
func list[T any](ctx context.Context, c *Client, path, accessToken string) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, c.baseURL+path, accessToken, nil, &raw); err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var envelope struct {
		Count int `json:"count"`
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &APIError{Message: TransportErrorMessage}
	}
	return envelope.Items, nil
}
