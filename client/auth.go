package client

import (
	"context"
	"fmt"

	"github.com/archie46/OpenShop/pkg/validator"
)

// Login authenticates with a username (or email) and password. The returned
// token is not stored here: the session store owns credential persistence.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &resp, nil
}
