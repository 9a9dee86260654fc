package cart

import (
	"context"
	"log/slog"
	"sync"

	apperrors "github.com/archie46/OpenShop/pkg/errors"
)

// Phase describes where the synchronizer is in its lifecycle.
type Phase string

const (
	// PhaseIdle means no cart has been loaded yet.
	PhaseIdle Phase = "idle"
	// PhaseLoading means the first fetch is in flight.
	PhaseLoading Phase = "loading"
	// PhaseReady means a cart is loaded and no request is outstanding.
	PhaseReady Phase = "ready"
	// PhaseMutating means a cart is loaded and a mutation is in flight; the
	// previous cart stays visible until the backend answers.
	PhaseMutating Phase = "mutating"
)

// Snapshot is a point-in-time view of the synchronizer state. Cart is a deep
// copy (nil when never fetched or reset); LastError is empty when the most
// recent operation succeeded.
type Snapshot struct {
	Cart      *Cart
	Pending   bool
	LastError string
}

// Phase derives the lifecycle phase from the snapshot. PhaseLoading only
// occurs before the first cart arrives; a re-fetch of an already loaded cart
// reports PhaseMutating like any other in-flight intent, since the last
// known-good cart stays visible throughout.
func (s Snapshot) Phase() Phase {
	switch {
	case s.Pending && s.Cart == nil:
		return PhaseLoading
	case s.Pending:
		return PhaseMutating
	case s.Cart != nil:
		return PhaseReady
	default:
		return PhaseIdle
	}
}

// ops is the adapter surface the synchronizer drives. Satisfied by *Adapter.
type ops interface {
	Fetch(ctx context.Context) (*Cart, error)
	ApplyDelta(ctx context.Context, productID string, delta int) (*Cart, error)
	Clear(ctx context.Context) (*Cart, error)
}

// Synchronizer serializes cart intents into the adapter and owns the local
// read-model. Views hold an explicit reference to one instance and mutate
// cart state only through the named operations.
//
// Intents are serialized through a single mutex so two requests are never in
// flight at once; an older response can therefore never overwrite a newer
// one. On failure the cart keeps its last known-good value and only the error
// is recorded, so a rendering view never flickers to an incorrect state.
type Synchronizer struct {
	adapter ops
	logger  *slog.Logger

	// intentMu serializes intents end to end, including the backend call.
	intentMu sync.Mutex

	// stateMu guards the fields below for snapshot readers.
	stateMu sync.RWMutex
	cart    *Cart
	pending bool
	lastErr error
}

// NewSynchronizer creates a synchronizer over the given adapter.
func NewSynchronizer(adapter ops, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{
		adapter: adapter,
		logger:  logger,
	}
}

// Load fetches the authoritative cart. Safe to call repeatedly; every call
// re-fetches. On failure the previously loaded cart, if any, is kept.
func (s *Synchronizer) Load(ctx context.Context) error {
	return s.run(ctx, "load", s.adapter.Fetch)
}

// Add increases the quantity of productID by quantity, adding the line if
// absent. quantity must be positive.
func (s *Synchronizer) Add(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return apperrors.InvalidInput("product id is required")
	}
	if quantity <= 0 {
		return apperrors.InvalidInput("quantity must be greater than 0")
	}
	return s.run(ctx, "add", func(ctx context.Context) (*Cart, error) {
		return s.adapter.ApplyDelta(ctx, productID, quantity)
	})
}

// Remove decreases the quantity of productID by quantity. quantity is the
// positive magnitude to remove; the backend drops the line when the result
// reaches zero or below.
func (s *Synchronizer) Remove(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return apperrors.InvalidInput("product id is required")
	}
	if quantity <= 0 {
		return apperrors.InvalidInput("quantity must be greater than 0")
	}
	return s.run(ctx, "remove", func(ctx context.Context) (*Cart, error) {
		return s.adapter.ApplyDelta(ctx, productID, -quantity)
	})
}

// Clear empties the cart on the backend and replaces the local model with the
// returned empty cart.
func (s *Synchronizer) Clear(ctx context.Context) error {
	return s.run(ctx, "clear", s.adapter.Clear)
}

// Reset drops all local state back to idle. Called on logout; it performs no
// backend call.
func (s *Synchronizer) Reset() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.cart = nil
	s.pending = false
	s.lastErr = nil
}

// Snapshot returns a consistent copy of the current state for views.
func (s *Synchronizer) Snapshot() Snapshot {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	snap := Snapshot{
		Cart:    s.cart.clone(),
		Pending: s.pending,
	}
	if s.lastErr != nil {
		snap.LastError = apperrors.Message(s.lastErr)
	}
	return snap
}

// ItemCount returns the item count of the current cart, zero when none is
// loaded.
func (s *Synchronizer) ItemCount() int {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.ItemCount()
}

// Subtotal returns the subtotal of the current cart, zero when none is
// loaded.
func (s *Synchronizer) Subtotal() float64 {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.Subtotal()
}

// run executes one intent under the intent lock: mark pending, call the
// adapter, then either replace the cart wholesale (success) or keep it
// untouched and record the error (failure). The returned error lets
// fire-and-forget callers observe the outcome directly; reactive callers read
// Snapshot instead.
func (s *Synchronizer) run(ctx context.Context, intent string, call func(ctx context.Context) (*Cart, error)) error {
	s.intentMu.Lock()
	defer s.intentMu.Unlock()

	s.stateMu.Lock()
	s.pending = true
	s.lastErr = nil
	s.stateMu.Unlock()

	result, err := call(ctx)

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.pending = false

	if err != nil {
		s.lastErr = err
		s.logger.WarnContext(ctx, "cart intent failed",
			slog.String("intent", intent),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.cart = result
	s.lastErr = nil
	s.logger.DebugContext(ctx, "cart synchronized",
		slog.String("intent", intent),
		slog.Int("lines", len(result.Lines)),
		slog.Int("items", result.ItemCount()),
	)
	return nil
}
