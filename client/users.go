package client

import (
	"context"
	"fmt"

	"github.com/archie46/OpenShop/pkg/validator"
)

// MyProfile returns the authenticated user's profile.
func (c *Client) MyProfile(ctx context.Context) (*UserDTO, error) {
	var user UserDTO
	if err := c.get(ctx, "/api/users/me", &user); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &user, nil
}

// UpdateMyProfile applies a partial update to the authenticated user's profile.
func (c *Client) UpdateMyProfile(ctx context.Context, req UpdateProfileRequest) (*UserDTO, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	var user UserDTO
	if err := c.put(ctx, "/api/users/me", req, &user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &user, nil
}
