// Package client is the typed Go client for the OpenShop backend. It covers
// the REST surface (auth, users, products, cart, orders, payments, inventory,
// shipping) and the product GraphQL endpoint.
//
// All business logic lives in the backend; this package only translates typed
// calls into HTTP requests and typed responses back. Retry policy, bearer
// token injection and global 401 handling are transport concerns and live in
// Transport, never in the per-endpoint methods.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/archie46/OpenShop/pkg/errors"
)

// Client is the typed OpenShop API client. All methods issue exactly one
// logical request and return either the decoded response or a typed error.
type Client struct {
	baseURL string
	doer    Doer
	logger  *slog.Logger
}

// New creates a client from the given configuration. tokens supplies the
// session bearer token; onUnauthorized is invoked when the backend answers
// 401 anywhere (it should invalidate the session) and may be nil.
func New(cfg Config, tokens TokenSource, onUnauthorized func(), logger *slog.Logger) *Client {
	transport := NewTransport(cfg, tokens, onUnauthorized, logger)

	var doer Doer = transport
	if cfg.BreakerEnabled {
		doer = NewBreakerTransport(transport, cfg, logger)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		doer:    doer,
		logger:  logger,
	}
}

// NewWithDoer creates a client over a caller-supplied Doer. Used by tests and
// by callers that need custom transport stacking.
func NewWithDoer(baseURL string, doer Doer, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		logger:  logger,
	}
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out (skipped when out is nil). Non-2xx responses become typed
// AppErrors; requests that never reach the backend become ErrUnreachable.
func (c *Client) doJSON(ctx context.Context, method, path string, headers http.Header, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.doer.Do(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.logger.WarnContext(ctx, "request did not reach backend",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return apperrors.Unreachable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseResponseError(resp)
	}

	defer func() { _ = resp.Body.Close() }()
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperrors.AppError{
			Code:    "MALFORMED_RESPONSE",
			Message: "the server returned an unexpected response",
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("decode response body: %w", err),
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, out)
}
