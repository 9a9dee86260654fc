package client

import (
	"context"
	"fmt"
)

// GetCart returns the authenticated user's cart. An empty cart has a
// zero-length items slice, never a missing one.
func (c *Client) GetCart(ctx context.Context) (*CartDTO, error) {
	var cart CartDTO
	if err := c.get(ctx, "/api/cart", &cart); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []CartItemDTO{}
	}
	return &cart, nil
}

// UpdateCartItem applies a signed quantity delta to one product line. The
// backend is the sole clamping authority: a delta that drives the quantity to
// zero or below removes the line server-side. No local validation of the
// resulting quantity happens here.
func (c *Client) UpdateCartItem(ctx context.Context, req CartUpdateRequest) (*CartDTO, error) {
	var cart CartDTO
	if err := c.post(ctx, "/api/cart/items", req, &cart); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []CartItemDTO{}
	}
	return &cart, nil
}

// ClearCart removes all lines from the authenticated user's cart and returns
// the now-empty cart representation.
func (c *Client) ClearCart(ctx context.Context) (*CartDTO, error) {
	var cart CartDTO
	if err := c.delete(ctx, "/api/cart/items", &cart); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []CartItemDTO{}
	}
	return &cart, nil
}
