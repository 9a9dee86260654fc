package orders

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archie46/OpenShop/client"
	apperrors "github.com/archie46/OpenShop/pkg/errors"
)

type mockOrdersAPI struct {
	mock.Mock
}

func (m *mockOrdersAPI) UserOrders(ctx context.Context) ([]client.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.Order), args.Error(1)
}

func (m *mockOrdersAPI) OrderByID(ctx context.Context, orderID string) (*client.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Order), args.Error(1)
}

func (m *mockOrdersAPI) CancelOrder(ctx context.Context, orderID string) (*client.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Order), args.Error(1)
}

func newTestStore(t *testing.T) (*Store, *mockOrdersAPI) {
	t.Helper()
	api := new(mockOrdersAPI)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewStore(api, filepath.Join(t.TempDir(), "orders.json"), logger), api
}

func order(id string, status client.OrderStatus) client.Order {
	return client.Order{ID: id, UserID: 42, Status: status, TotalPrice: 29.97}
}

func TestRefresh_ReplacesList(t *testing.T) {
	s, api := newTestStore(t)
	s.Add(order("stale", client.OrderPending))
	api.On("UserOrders", mock.Anything).
		Return([]client.Order{order("ord-2", client.OrderConfirmed), order("ord-1", client.OrderDelivered)}, nil)

	require.NoError(t, s.Refresh(context.Background()))

	got := s.Orders()
	require.Len(t, got, 2)
	assert.Equal(t, "ord-2", got[0].ID)
	api.AssertExpectations(t)
}

func TestRefresh_FailureKeepsCache(t *testing.T) {
	s, api := newTestStore(t)
	s.Add(order("ord-1", client.OrderPending))
	api.On("UserOrders", mock.Anything).Return(nil, apperrors.Unreachable(assert.AnError))

	err := s.Refresh(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnreachable)
	assert.Len(t, s.Orders(), 1)
}

func TestAdd_PrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add(order("ord-1", client.OrderPending))
	s.Add(order("ord-2", client.OrderPending))

	got := s.Orders()
	require.Len(t, got, 2)
	assert.Equal(t, "ord-2", got[0].ID)
	assert.Equal(t, "ord-1", got[1].ID)
}

func TestCancel_UpdatesCachedCopy(t *testing.T) {
	s, api := newTestStore(t)
	s.Add(order("ord-1", client.OrderPending))
	cancelled := order("ord-1", client.OrderCancelled)
	api.On("CancelOrder", mock.Anything, "ord-1").Return(&cancelled, nil)

	got, err := s.Cancel(context.Background(), "ord-1")

	require.NoError(t, err)
	assert.Equal(t, client.OrderCancelled, got.Status)
	assert.Equal(t, client.OrderCancelled, s.Orders()[0].Status)
}

func TestFetch_MarksCurrent(t *testing.T) {
	s, api := newTestStore(t)
	o := order("ord-1", client.OrderShipped)
	api.On("OrderByID", mock.Anything, "ord-1").Return(&o, nil)

	_, err := s.Fetch(context.Background(), "ord-1")

	require.NoError(t, err)
	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, "ord-1", current.ID)
	assert.Equal(t, client.OrderShipped, current.Status)
}

func TestFetch_PersistsCacheAndCurrentTogether(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	api := new(mockOrdersAPI)
	s := NewStore(api, path, logger)

	s.Add(order("ord-1", client.OrderPending))
	shipped := order("ord-1", client.OrderShipped)
	api.On("OrderByID", mock.Anything, "ord-1").Return(&shipped, nil)

	_, err := s.Fetch(context.Background(), "ord-1")
	require.NoError(t, err)

	reopened := NewStore(new(mockOrdersAPI), path, logger)
	require.Len(t, reopened.Orders(), 1)
	assert.Equal(t, client.OrderShipped, reopened.Orders()[0].Status)
	current := reopened.Current()
	require.NotNil(t, current)
	assert.Equal(t, "ord-1", current.ID)
}

func TestCancel_UpdatesCurrentWhenShowing(t *testing.T) {
	s, api := newTestStore(t)
	pending := order("ord-1", client.OrderPending)
	s.Add(pending)
	s.SetCurrent(&pending)
	cancelled := order("ord-1", client.OrderCancelled)
	api.On("CancelOrder", mock.Anything, "ord-1").Return(&cancelled, nil)

	_, err := s.Cancel(context.Background(), "ord-1")
	require.NoError(t, err)

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, client.OrderCancelled, current.Status)
}

func TestSetCurrent_NilClears(t *testing.T) {
	s, _ := newTestStore(t)
	o := order("ord-1", client.OrderPending)
	s.SetCurrent(&o)
	require.NotNil(t, s.Current())

	s.SetCurrent(nil)
	assert.Nil(t, s.Current())
}

func TestClear_DropsEverything(t *testing.T) {
	s, _ := newTestStore(t)
	o := order("ord-1", client.OrderPending)
	s.Add(o)
	s.SetCurrent(&o)

	s.Clear()

	assert.Empty(t, s.Orders())
	assert.Nil(t, s.Current())
}

func TestStore_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s := NewStore(new(mockOrdersAPI), path, logger)
	s.Add(order("ord-1", client.OrderDelivered))

	reopened := NewStore(new(mockOrdersAPI), path, logger)
	got := reopened.Orders()
	require.Len(t, got, 1)
	assert.Equal(t, "ord-1", got[0].ID)
	assert.Equal(t, client.OrderDelivered, got[0].Status)
}
