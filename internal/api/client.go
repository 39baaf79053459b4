// Package api is a thin JSON client for the agency backend REST API. It keeps
// the admin bearer token in durable storage and attaches it to every request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"agencysite/internal/core"
	"agencysite/internal/store"
)

// Error is a non-2xx backend response.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnavailable reports whether err means the backend could not serve the call:
// a transport failure or a 5xx response.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

// Client issues JSON requests against the backend base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     store.KV
	logger     *zap.Logger
}

func NewClient(config *core.BackendConfig, tokens store.KV, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{Timeout: config.BackendTimeout()},
		tokens:     tokens,
		logger:     logger,
	}
}

// Token returns the stored admin token, or "" when none is stored.
func (c *Client) Token(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}
	token, ok, err := c.tokens.Get(ctx, store.KeyAdminToken)
	if err != nil {
		c.logger.Warn("Failed to read admin token", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

// HasToken is the auth check used to choose between public and admin reads.
func (c *Client) HasToken(ctx context.Context) bool {
	return c.Token(ctx) != ""
}

func (c *Client) SetToken(ctx context.Context, token string) error {
	if c.tokens == nil {
		return errors.New("no token storage configured")
	}
	return c.tokens.Set(ctx, store.KeyAdminToken, token)
}

func (c *Client) ClearToken(ctx context.Context) error {
	if c.tokens == nil {
		return nil
	}
	return c.tokens.Delete(ctx, store.KeyAdminToken)
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do sends one request. A non-nil body is JSON encoded; a non-nil out receives
// the decoded response (a top-level {"data": ...} envelope is unwrapped).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.clientFor(ctx).Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
		c.logger.Debug("Backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := decodeBody(data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) clientFor(ctx context.Context) *http.Client {
	token := c.Token(ctx)
	if token == "" {
		return c.httpClient
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	authed := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient), src)
	authed.Timeout = c.httpClient.Timeout
	return authed
}

func decodeBody(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 {
			return json.Unmarshal(envelope.Data, out)
		}
	}
	return json.Unmarshal(trimmed, out)
}

func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(data))
}
