package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/archie46/OpenShop/pkg/validator"
)

// InitiatePayment starts payment processing for an order. idempotencyKey
// deduplicates retried submissions; pass an empty string to omit it.
func (c *Client) InitiatePayment(ctx context.Context, req InitiatePaymentRequest, idempotencyKey string) (*PaymentAck, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	var headers http.Header
	if idempotencyKey != "" {
		headers = http.Header{"Idempotency-Key": []string{idempotencyKey}}
	}

	var ack PaymentAck
	if err := c.doJSON(ctx, http.MethodPost, "/api/payments", headers, req, &ack); err != nil {
		return nil, fmt.Errorf("initiate payment: %w", err)
	}
	return &ack, nil
}

// PaymentStatusByOrder returns the payment record for an order.
func (c *Client) PaymentStatusByOrder(ctx context.Context, orderID string) (*Payment, error) {
	var payment Payment
	if err := c.get(ctx, "/api/payments/"+url.PathEscape(orderID), &payment); err != nil {
		return nil, fmt.Errorf("get payment for order %s: %w", orderID, err)
	}
	return &payment, nil
}
