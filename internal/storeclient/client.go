// Package storeclient talks to the record store over HTTP. Every response
// travels in the store envelope; the client validates the envelope before
// handing data to callers so malformed payloads never leak upward.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/spec-kit/training-service/pkg/util"
)

const defaultTimeout = 15 * time.Second

// envelope mirrors the wire contract. Data stays raw until the caller
// supplies a destination type.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
}

// Client is the shared HTTP plumbing for the typed store clients.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option tweaks client construction.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a store client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest issues one HTTP call and decodes the envelope. A success=false
// envelope or an undecodable body is a store error carrying the server's
// message when one exists; 404 resolves to NOT_FOUND so callers can branch.
func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewStoreError("record store unreachable", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("store request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, apperrors.NewStoreError("malformed record store response", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		if env.Message != "" {
			return nil, apperrors.NewDomainError("NOT_FOUND", env.Message, http.StatusNotFound, nil)
		}
		return nil, apperrors.NewNotFound("record", nil)
	}
	if !env.Success {
		return nil, apperrors.NewStoreError(env.Message, fmt.Errorf("store responded %d", resp.StatusCode))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewStoreError(env.Message, fmt.Errorf("store responded %d", resp.StatusCode))
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, apperrors.NewStoreError("malformed record store payload", err)
		}
	}
	return &env, nil
}
