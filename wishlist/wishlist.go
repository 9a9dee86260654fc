// Package wishlist is a purely client-local store of products the user has
// saved for later. Unlike the cart it has no backend counterpart; it persists
// to a local state file and survives restarts.
package wishlist

import (
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/archie46/OpenShop/pkg/statefile"
)

// Item is one saved product.
type Item struct {
	ProductID string    `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

// Store holds the wishlist. All methods are safe for concurrent use.
type Store struct {
	path   string
	logger *slog.Logger
	now    func() time.Time

	mu    sync.RWMutex
	items []Item
}

// NewStore creates a wishlist store persisted at path, loading any existing
// items. A missing or unreadable state file starts an empty wishlist.
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{path: path, logger: logger, now: time.Now}

	var loaded []Item
	if err := statefile.Load(path, &loaded); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("discarding unreadable wishlist state",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
		return s
	}
	s.items = loaded
	return s
}

// Add saves a product. Adding a product already on the list is a no-op.
func (s *Store) Add(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ProductID == productID {
			return
		}
	}
	s.items = append(s.items, Item{ProductID: productID, AddedAt: s.now().UTC()})
	s.persistLocked()
}

// Remove drops a product from the list. Removing an absent product is a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Clear removes all items.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked()
}

// Contains reports whether a product is on the list.
func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Count returns the number of saved products.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns a copy of the saved products in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) persistLocked() {
	if err := statefile.Save(s.path, s.items); err != nil {
		s.logger.Warn("failed to persist wishlist state",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}
}
