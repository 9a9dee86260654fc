package cart

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/archie46/OpenShop/client"
)

// CartAPI is the slice of the backend client the adapter consumes.
type CartAPI interface {
	GetCart(ctx context.Context) (*client.CartDTO, error)
	UpdateCartItem(ctx context.Context, req client.CartUpdateRequest) (*client.CartDTO, error)
	ClearCart(ctx context.Context) (*client.CartDTO, error)
}

// Adapter translates cart intents into single HTTP calls and normalizes the
// backend's response shapes into the local Cart model. It performs no retries
// and no local clamping; both belong elsewhere (transport and backend
// respectively).
type Adapter struct {
	api CartAPI

	// lineSeq feeds synthetic line keys. Monotonic per adapter so keys are
	// unique within a session even across fetches.
	lineSeq atomic.Uint64
}

// NewAdapter creates an adapter over the given backend client.
func NewAdapter(api CartAPI) *Adapter {
	return &Adapter{api: api}
}

// Fetch retrieves the current cart for the authenticated user. An empty cart
// has zero lines.
func (a *Adapter) Fetch(ctx context.Context) (*Cart, error) {
	dto, err := a.api.GetCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	return a.normalize(dto), nil
}

// ApplyDelta sends one signed quantity update for one product and returns the
// new authoritative cart. The backend removes the line when the resulting
// quantity is zero or below; no pre-validation happens here.
func (a *Adapter) ApplyDelta(ctx context.Context, productID string, delta int) (*Cart, error) {
	dto, err := a.api.UpdateCartItem(ctx, client.CartUpdateRequest{
		ProductID: productID,
		Quantity:  delta,
	})
	if err != nil {
		return nil, fmt.Errorf("apply cart delta: %w", err)
	}
	return a.normalize(dto), nil
}

// Clear deletes all lines and returns the now-empty cart.
func (a *Adapter) Clear(ctx context.Context) (*Cart, error) {
	dto, err := a.api.ClearCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return a.normalize(dto), nil
}

// normalize converts a backend cart response into the local model, assigning
// each line a fresh synthetic key. Backend line IDs and timestamps, when
// present, are deliberately discarded.
func (a *Adapter) normalize(dto *client.CartDTO) *Cart {
	cart := &Cart{
		OwnerID: dto.UserID,
		Lines:   make([]Line, 0, len(dto.Items)),
	}
	for _, item := range dto.Items {
		cart.Lines = append(cart.Lines, Line{
			Key:       fmt.Sprintf("line-%d", a.lineSeq.Add(1)),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}
	return cart
}
