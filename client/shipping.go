package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateShipment creates a shipment for an order. The backend expects the
// order and address as query parameters on this endpoint.
func (c *Client) CreateShipment(ctx context.Context, orderID, address string) (*Shipment, error) {
	params := url.Values{}
	params.Set("orderId", orderID)
	params.Set("address", address)

	var shipment Shipment
	if err := c.doJSON(ctx, http.MethodPost, "/api/shipping?"+params.Encode(), nil, nil, &shipment); err != nil {
		return nil, fmt.Errorf("create shipment for order %s: %w", orderID, err)
	}
	return &shipment, nil
}

// ShipmentByOrder returns the shipment attached to an order.
func (c *Client) ShipmentByOrder(ctx context.Context, orderID string) (*Shipment, error) {
	var shipment Shipment
	if err := c.get(ctx, "/api/shipping/"+url.PathEscape(orderID), &shipment); err != nil {
		return nil, fmt.Errorf("get shipment for order %s: %w", orderID, err)
	}
	return &shipment, nil
}

// UpdateShipmentStatus transitions a shipment's status. Requires the SELLER
// or ADMIN role.
func (c *Client) UpdateShipmentStatus(ctx context.Context, shipmentID string, status ShipmentStatus) (*Shipment, error) {
	params := url.Values{}
	params.Set("status", string(status))

	path := "/api/shipping/" + url.PathEscape(shipmentID) + "/status?" + params.Encode()

	var shipment Shipment
	if err := c.doJSON(ctx, http.MethodPut, path, nil, nil, &shipment); err != nil {
		return nil, fmt.Errorf("update shipment %s status: %w", shipmentID, err)
	}
	return &shipment, nil
}
