package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archie46/OpenShop/client"
	apperrors "github.com/archie46/OpenShop/pkg/errors"
)

// --- Mock Backend Client ---

type mockCartAPI struct {
	mock.Mock
}

func (m *mockCartAPI) GetCart(ctx context.Context) (*client.CartDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.CartDTO), args.Error(1)
}

func (m *mockCartAPI) UpdateCartItem(ctx context.Context, req client.CartUpdateRequest) (*client.CartDTO, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.CartDTO), args.Error(1)
}

func (m *mockCartAPI) ClearCart(ctx context.Context) (*client.CartDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.CartDTO), args.Error(1)
}

// --- Tests ---

func TestAdapterFetch_Normalizes(t *testing.T) {
	api := new(mockCartAPI)
	a := NewAdapter(api)
	ctx := context.Background()

	backendID := int64(42)
	api.On("GetCart", ctx).Return(&client.CartDTO{
		ID:     &backendID,
		UserID: 1,
		Items: []client.CartItemDTO{
			{ProductID: "sku-1", Quantity: 3, Price: 9.99},
			{ProductID: "sku-2", Quantity: 1, Price: 4.50},
		},
	}, nil)

	cart, err := a.Fetch(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), cart.OwnerID)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "sku-1", cart.Lines[0].ProductID)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.InDelta(t, 9.99, cart.Lines[0].UnitPrice, 1e-9)
	assert.Equal(t, "sku-2", cart.Lines[1].ProductID)

	api.AssertExpectations(t)
}

func TestAdapterFetch_EmptyCartHasEmptyLines(t *testing.T) {
	api := new(mockCartAPI)
	a := NewAdapter(api)
	ctx := context.Background()

	api.On("GetCart", ctx).Return(&client.CartDTO{UserID: 1, Items: []client.CartItemDTO{}}, nil)

	cart, err := a.Fetch(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cart.Lines)
	assert.Empty(t, cart.Lines)
}

func TestAdapter_SyntheticKeysUniqueAcrossFetches(t *testing.T) {
	api := new(mockCartAPI)
	a := NewAdapter(api)
	ctx := context.Background()

	dto := &client.CartDTO{
		UserID: 1,
		Items:  []client.CartItemDTO{{ProductID: "sku-1", Quantity: 1, Price: 1.00}},
	}
	api.On("GetCart", ctx).Return(dto, nil).Twice()

	first, err := a.Fetch(ctx)
	require.NoError(t, err)
	second, err := a.Fetch(ctx)
	require.NoError(t, err)

	// The same backend line gets a fresh key each fetch; keys must never
	// correlate lines across fetches.
	assert.NotEqual(t, first.Lines[0].Key, second.Lines[0].Key)
	assert.NotEmpty(t, first.Lines[0].Key)
}

func TestAdapterApplyDelta_PassesSignThrough(t *testing.T) {
	api := new(mockCartAPI)
	a := NewAdapter(api)
	ctx := context.Background()

	api.On("UpdateCartItem", ctx, client.CartUpdateRequest{ProductID: "sku-1", Quantity: -4}).
		Return(&client.CartDTO{UserID: 1, Items: []client.CartItemDTO{}}, nil)

	cart, err := a.ApplyDelta(ctx, "sku-1", -4)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	api.AssertExpectations(t)
}

func TestAdapterClear(t *testing.T) {
	api := new(mockCartAPI)
	a := NewAdapter(api)
	ctx := context.Background()

	api.On("ClearCart", ctx).Return(&client.CartDTO{UserID: 1, Items: []client.CartItemDTO{}}, nil)

	cart, err := a.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart.OwnerID)
	assert.Empty(t, cart.Lines)
}

func TestAdapter_PropagatesErrors(t *testing.T) {
	api := new(mockCartAPI)
	a := NewAdapter(api)
	ctx := context.Background()

	api.On("GetCart", ctx).Return(nil, apperrors.Unreachable(assert.AnError))

	_, err := a.Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnreachable)
}
