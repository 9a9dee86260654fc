package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/archie46/OpenShop/pkg/validator"
)

// ListProducts returns the full public catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.get(ctx, "/api/products", &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(id), &product); err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &product, nil
}

// CreateProduct creates a product over REST. Requires the SELLER role.
func (c *Client) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	var product Product
	if err := c.post(ctx, "/api/products", input, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct applies a partial update over REST. Requires the SELLER role.
func (c *Client) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	var product Product
	if err := c.put(ctx, "/api/products/"+url.PathEscape(id), input, &product); err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return &product, nil
}
