// Package orders keeps a client-local mirror of the user's orders. The
// backend owns the order lifecycle; this store holds the responses it has
// returned so order history renders without refetching, and refreshes the
// whole list from the backend on demand.
package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/archie46/OpenShop/client"
	"github.com/archie46/OpenShop/pkg/statefile"
)

// OrdersAPI is the slice of the backend client the store consumes.
type OrdersAPI interface {
	UserOrders(ctx context.Context) ([]client.Order, error)
	OrderByID(ctx context.Context, orderID string) (*client.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*client.Order, error)
}

// state is the persisted payload.
type state struct {
	Orders  []client.Order `json:"orders"`
	Current *client.Order  `json:"current,omitempty"`
}

// Store mirrors server order responses. All methods are safe for concurrent
// use.
type Store struct {
	api    OrdersAPI
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	state state
}

// NewStore creates an order store persisted at path, loading any cached
// orders. A missing or unreadable state file starts empty.
func NewStore(api OrdersAPI, path string, logger *slog.Logger) *Store {
	s := &Store{api: api, path: path, logger: logger}

	var loaded state
	if err := statefile.Load(path, &loaded); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("discarding unreadable order state",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
		return s
	}
	s.state = loaded
	return s
}

// Refresh replaces the cached list with the backend's current view.
func (s *Store) Refresh(ctx context.Context) error {
	orders, err := s.api.UserOrders(ctx)
	if err != nil {
		return fmt.Errorf("refresh orders: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Orders = orders
	s.persistLocked()
	return nil
}

// Add records a freshly placed order at the head of the list.
func (s *Store) Add(order client.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Orders = append([]client.Order{order}, s.state.Orders...)
	s.persistLocked()
}

// SetCurrent marks the order a detail view is showing. Pass nil to clear.
func (s *Store) SetCurrent(order *client.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order != nil {
		o := *order
		s.state.Current = &o
	} else {
		s.state.Current = nil
	}
	s.persistLocked()
}

// Current returns a copy of the order under detail view, or nil.
func (s *Store) Current() *client.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Current == nil {
		return nil
	}
	o := *s.state.Current
	return &o
}

// Orders returns a copy of the cached order list, newest first.
func (s *Store) Orders() []client.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]client.Order, len(s.state.Orders))
	copy(orders, s.state.Orders)
	return orders
}

// Cancel requests cancellation from the backend and, on success, updates the
// cached copy with the returned order.
func (s *Store) Cancel(ctx context.Context, orderID string) (*client.Order, error) {
	order, err := s.api.CancelOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	s.applyUpdate(*order, false)
	return order, nil
}

// Fetch pulls one order from the backend, updates the cache and marks it
// current.
func (s *Store) Fetch(ctx context.Context, orderID string) (*client.Order, error) {
	order, err := s.api.OrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("fetch order: %w", err)
	}

	s.applyUpdate(*order, true)
	return order, nil
}

// Clear drops all cached orders. Called on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{}
	if err := statefile.Remove(s.path); err != nil {
		s.logger.Warn("failed to remove order state",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}
}

// applyUpdate replaces the cached copy of the given order wherever it
// appears, marking it current when asked, and persists once.
func (s *Store) applyUpdate(order client.Order, markCurrent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Orders {
		if s.state.Orders[i].ID == order.ID {
			s.state.Orders[i] = order
			break
		}
	}
	if markCurrent || (s.state.Current != nil && s.state.Current.ID == order.ID) {
		o := order
		s.state.Current = &o
	}
	s.persistLocked()
}

func (s *Store) persistLocked() {
	if err := statefile.Save(s.path, s.state); err != nil {
		s.logger.Warn("failed to persist order state",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}
}
