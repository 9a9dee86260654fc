package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// idempotencyKeyHeader deduplicates order creation on the backend.
const idempotencyKeyHeader = "X-Idempotency-Key"

// CreateOrder checks out the current cart into an order. idempotencyKey
// deduplicates retried submissions; pass an empty string to omit it.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest, idempotencyKey string) (*Order, error) {
	var headers http.Header
	if idempotencyKey != "" {
		headers = http.Header{idempotencyKeyHeader: []string{idempotencyKey}}
	}

	var order Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", headers, req, &order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

// UserOrders returns all orders belonging to the authenticated user.
func (c *Client) UserOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.get(ctx, "/api/orders/user", &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// OrderByID returns a single order.
func (c *Client) OrderByID(ctx context.Context, orderID string) (*Order, error) {
	var order Order
	if err := c.get(ctx, "/api/orders/"+url.PathEscape(orderID), &order); err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return &order, nil
}

// CancelOrder requests cancellation of an order. The backend decides whether
// the current status permits it.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*Order, error) {
	var order Order
	if err := c.post(ctx, "/api/orders/"+url.PathEscape(orderID)+"/cancel", nil, &order); err != nil {
		return nil, fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return &order, nil
}
