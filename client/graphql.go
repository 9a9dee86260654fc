package client

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/archie46/OpenShop/pkg/errors"
	"github.com/archie46/OpenShop/pkg/validator"
)

// graphqlPath is the backend's product GraphQL endpoint.
const graphqlPath = "/graphql/products"

// GraphQLRequest is a raw GraphQL query or mutation.
type GraphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

// GraphQLError is one error entry of a GraphQL response.
type GraphQLError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// GraphQLResponse is the raw envelope of a GraphQL response. Data is decoded
// by the typed helpers.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// FieldError is a per-field validation error returned by product mutations.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProductMutationResult is the payload of product create/update mutations.
type ProductMutationResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Product *Product     `json:"product,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// DeleteResult is the payload of the delete mutation.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ProductEdge is one edge of the products connection.
type ProductEdge struct {
	Node   Product `json:"node"`
	Cursor string  `json:"cursor"`
}

// PageInfo carries cursor pagination state.
type PageInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor"`
	EndCursor       string `json:"endCursor"`
}

// ProductsConnection is a paginated product listing.
type ProductsConnection struct {
	Edges      []ProductEdge `json:"edges"`
	PageInfo   PageInfo      `json:"pageInfo"`
	TotalCount int           `json:"totalCount"`
}

// ExecuteGraphQL runs a raw GraphQL request against the product endpoint.
// Transport-level failures and HTTP errors are returned as usual; GraphQL
// errors are left in the response for the caller.
func (c *Client) ExecuteGraphQL(ctx context.Context, req GraphQLRequest) (*GraphQLResponse, error) {
	var resp GraphQLResponse
	if err := c.post(ctx, graphqlPath, req, &resp); err != nil {
		return nil, fmt.Errorf("graphql request: %w", err)
	}
	return &resp, nil
}

// queryGraphQL executes a request and decodes the data payload into out,
// surfacing the first GraphQL error as an InvalidInput AppError.
func (c *Client) queryGraphQL(ctx context.Context, req GraphQLRequest, out any) error {
	resp, err := c.ExecuteGraphQL(ctx, req)
	if err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return apperrors.InvalidInput(resp.Errors[0].Message)
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return &apperrors.AppError{
			Code:    "MALFORMED_RESPONSE",
			Message: "the server returned an unexpected response",
			Err:     fmt.Errorf("decode graphql data: %w", err),
		}
	}
	return nil
}

const productFields = `
  id
  name
  description
  price
  currency
  category
  imageUrl
  status
  sku
  sellerId
  createdAt
  updatedAt`

// ProductByID fetches a single product through GraphQL.
func (c *Client) ProductByID(ctx context.Context, id string) (*Product, error) {
	req := GraphQLRequest{
		Query: `query GetProduct($id: ID!) {
  product(id: $id) {` + productFields + `
  }
}`,
		Variables: map[string]any{"id": id},
	}

	var data struct {
		Product *Product `json:"product"`
	}
	if err := c.queryGraphQL(ctx, req, &data); err != nil {
		return nil, fmt.Errorf("graphql product %s: %w", id, err)
	}
	if data.Product == nil {
		return nil, apperrors.NotFound("product", id)
	}
	return data.Product, nil
}

// Products fetches a page of the catalog. first limits page size; after is
// the cursor to continue from. Zero values request the backend defaults.
func (c *Client) Products(ctx context.Context, first int, after string) (*ProductsConnection, error) {
	variables := map[string]any{}
	if first > 0 {
		variables["first"] = first
	}
	if after != "" {
		variables["after"] = after
	}

	req := GraphQLRequest{
		Query: `query GetProducts($first: Int, $after: String) {
  products(first: $first, after: $after) {
    edges {
      node {` + productFields + `
      }
      cursor
    }
    pageInfo {
      hasNextPage
      hasPreviousPage
      startCursor
      endCursor
    }
    totalCount
  }
}`,
		Variables: variables,
	}

	var data struct {
		Products ProductsConnection `json:"products"`
	}
	if err := c.queryGraphQL(ctx, req, &data); err != nil {
		return nil, fmt.Errorf("graphql products: %w", err)
	}
	return &data.Products, nil
}

// SearchProducts runs a text search over the catalog, optionally filtered by
// category.
func (c *Client) SearchProducts(ctx context.Context, query, category string, first int) (*ProductsConnection, error) {
	variables := map[string]any{"query": query}
	if category != "" {
		variables["category"] = category
	}
	if first > 0 {
		variables["first"] = first
	}

	req := GraphQLRequest{
		Query: `query SearchProducts($query: String!, $category: String, $first: Int) {
  searchProducts(query: $query, category: $category, first: $first) {
    edges {
      node {` + productFields + `
      }
    }
    totalCount
  }
}`,
		Variables: variables,
	}

	var data struct {
		SearchProducts ProductsConnection `json:"searchProducts"`
	}
	if err := c.queryGraphQL(ctx, req, &data); err != nil {
		return nil, fmt.Errorf("graphql search products: %w", err)
	}
	return &data.SearchProducts, nil
}

// MyProducts lists the authenticated seller's products.
func (c *Client) MyProducts(ctx context.Context) ([]Product, error) {
	req := GraphQLRequest{
		Query: `query MyProducts {
  myProducts {` + productFields + `
  }
}`,
	}

	var data struct {
		MyProducts []Product `json:"myProducts"`
	}
	if err := c.queryGraphQL(ctx, req, &data); err != nil {
		return nil, fmt.Errorf("graphql my products: %w", err)
	}
	return data.MyProducts, nil
}

// CreateProductGraphQL creates a product through the GraphQL mutation.
// Field-level validation failures come back in the result, not as an error.
func (c *Client) CreateProductGraphQL(ctx context.Context, input CreateProductInput) (*ProductMutationResult, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	req := GraphQLRequest{
		Query: `mutation CreateProduct($input: CreateProductInput!) {
  createProduct(input: $input) {
    success
    message
    product {` + productFields + `
    }
    errors {
      field
      message
    }
  }
}`,
		Variables: map[string]any{"input": input},
	}

	var data struct {
		CreateProduct ProductMutationResult `json:"createProduct"`
	}
	if err := c.queryGraphQL(ctx, req, &data); err != nil {
		return nil, fmt.Errorf("graphql create product: %w", err)
	}
	return &data.CreateProduct, nil
}

// UpdateProductGraphQL updates a product through the GraphQL mutation.
func (c *Client) UpdateProductGraphQL(ctx context.Context, id string, input UpdateProductInput) (*ProductMutationResult, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	req := GraphQLRequest{
		Query: `mutation UpdateProduct($id: ID!, $input: UpdateProductInput!) {
  updateProduct(id: $id, input: $input) {
    success
    message
    product {` + productFields + `
    }
    errors {
      field
      message
    }
  }
}`,
		Variables: map[string]any{"id": id, "input": input},
	}

	var data struct {
		UpdateProduct ProductMutationResult `json:"updateProduct"`
	}
	if err := c.queryGraphQL(ctx, req, &data); err != nil {
		return nil, fmt.Errorf("graphql update product %s: %w", id, err)
	}
	return &data.UpdateProduct, nil
}

// DeleteProductGraphQL deletes a product through the GraphQL mutation.
func (c *Client) DeleteProductGraphQL(ctx context.Context, id string) (*DeleteResult, error) {
	req := GraphQLRequest{
		Query: `mutation DeleteProduct($id: ID!) {
  deleteProduct(id: $id) {
    success
    message
  }
}`,
		Variables: map[string]any{"id": id},
	}

	var data struct {
		DeleteProduct DeleteResult `json:"deleteProduct"`
	}
	if err := c.queryGraphQL(ctx, req, &data); err != nil {
		return nil, fmt.Errorf("graphql delete product %s: %w", id, err)
	}
	return &data.DeleteProduct, nil
}
