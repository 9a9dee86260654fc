package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/archie46/OpenShop/pkg/validator"
)

// UpsertInventory creates or updates stock for a product. Requires the
// SELLER role.
func (c *Client) UpsertInventory(ctx context.Context, req InventoryRequest) (*Inventory, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	var inv Inventory
	if err := c.post(ctx, "/api/inventory", req, &inv); err != nil {
		return nil, fmt.Errorf("upsert inventory: %w", err)
	}
	return &inv, nil
}

// InventoryByProduct returns public stock information for a product.
func (c *Client) InventoryByProduct(ctx context.Context, productID string) (*Inventory, error) {
	var inv Inventory
	if err := c.get(ctx, "/api/inventory/"+url.PathEscape(productID), &inv); err != nil {
		return nil, fmt.Errorf("get inventory for product %s: %w", productID, err)
	}
	return &inv, nil
}
