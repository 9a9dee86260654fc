// Package checkout drives the three-step checkout flow: shipping address,
// payment details, review. Form validation happens locally; the order itself
// is created by the backend from the server-side cart, so the wizard ends by
// submitting the shipping details and clearing the local cart model.
//
// Card details are validated locally for immediate form feedback but are
// never transmitted; payment capture is owned by the backend's payment
// pipeline.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/archie46/OpenShop/cart"
	"github.com/archie46/OpenShop/client"
	apperrors "github.com/archie46/OpenShop/pkg/errors"
	"github.com/archie46/OpenShop/pkg/validator"
)

// Step identifies the wizard position.
type Step string

const (
	StepAddress Step = "address"
	StepPayment Step = "payment"
	StepReview  Step = "review"
	// StepDone is reached after a successful order placement.
	StepDone Step = "done"
)

// Address is the shipping address form.
type Address struct {
	FullName     string `validate:"required"`
	PhoneNumber  string `validate:"required"`
	AddressLine1 string `validate:"required"`
	AddressLine2 string
	City         string `validate:"required"`
	State        string `validate:"required"`
	PostalCode   string `validate:"required"`
	Country      string `validate:"required"`
}

// ShippingAddress renders the address as the single line the backend expects.
func (a Address) ShippingAddress() string {
	var b strings.Builder
	b.WriteString(a.AddressLine1)
	if a.AddressLine2 != "" {
		b.WriteString(", ")
		b.WriteString(a.AddressLine2)
	}
	fmt.Fprintf(&b, ", %s, %s %s, %s", a.City, a.State, a.PostalCode, a.Country)
	return b.String()
}

// CardDetails is the payment form. Validated locally, never transmitted.
type CardDetails struct {
	CardNumber string `validate:"required,len=16,credit_card"`
	CardHolder string `validate:"required"`
	ExpiryDate string `validate:"required,card_expiry"`
	CVV        string `validate:"required,number,min=3,max=4"`
}

// Cart is the synchronizer surface the wizard depends on.
type Cart interface {
	Load(ctx context.Context) error
	Snapshot() cart.Snapshot
	Clear(ctx context.Context) error
}

// OrdersAPI creates the order on the backend.
type OrdersAPI interface {
	CreateOrder(ctx context.Context, req client.CreateOrderRequest, idempotencyKey string) (*client.Order, error)
}

// OrderRecorder receives the placed order. Satisfied by *orders.Store.
type OrderRecorder interface {
	Add(order client.Order)
}

// Notifier emits the one-off success/failure notices of the flow. Satisfied
// by *notify.Center.
type Notifier interface {
	Success(message string) string
	Error(message string) string
}

// Wizard holds the checkout state. One wizard serves one checkout attempt at
// a time; all methods are safe for concurrent use.
type Wizard struct {
	cart     Cart
	api      OrdersAPI
	orders   OrderRecorder
	notifier Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	step    Step
	address *Address
	card    *CardDetails
}

// NewWizard creates a wizard positioned at the address step.
func NewWizard(cartSync Cart, api OrdersAPI, orders OrderRecorder, notifier Notifier, logger *slog.Logger) *Wizard {
	return &Wizard{
		cart:     cartSync,
		api:      api,
		orders:   orders,
		notifier: notifier,
		logger:   logger,
		step:     StepAddress,
	}
}

// Begin refreshes the cart and verifies checkout can start. An empty cart
// cannot be checked out.
func (w *Wizard) Begin(ctx context.Context) error {
	if err := w.cart.Load(ctx); err != nil {
		return fmt.Errorf("load cart for checkout: %w", err)
	}

	snap := w.cart.Snapshot()
	if snap.Cart == nil || snap.Cart.ItemCount() == 0 {
		return apperrors.InvalidInput("cart is empty")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = StepAddress
	w.address = nil
	w.card = nil
	return nil
}

// Step returns the current wizard position.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// SubmitAddress validates the shipping address and advances to the payment
// step. Resubmitting from a later step rewinds to payment with the new
// address.
func (w *Wizard) SubmitAddress(addr Address) error {
	if err := validator.Validate(addr); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepDone {
		return apperrors.InvalidInput("checkout already completed")
	}
	w.address = &addr
	w.step = StepPayment
	return nil
}

// SubmitPayment validates the card details and advances to review. Requires
// a submitted address.
func (w *Wizard) SubmitPayment(card CardDetails) error {
	if err := validator.Validate(card); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepDone {
		return apperrors.InvalidInput("checkout already completed")
	}
	if w.address == nil {
		return apperrors.InvalidInput("shipping address must be submitted first")
	}
	w.card = &card
	w.step = StepReview
	return nil
}

// Back rewinds one step. At the address step it is a no-op.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case StepPayment:
		w.step = StepAddress
	case StepReview:
		w.step = StepPayment
	}
}

// PlaceOrder submits the order from the review step. On success the order is
// recorded, the cart is cleared, and a success notice is emitted; the wizard
// moves to done. On failure the wizard stays at review so the user can retry.
func (w *Wizard) PlaceOrder(ctx context.Context) (*client.Order, error) {
	w.mu.Lock()
	if w.step != StepReview || w.address == nil || w.card == nil {
		w.mu.Unlock()
		return nil, apperrors.InvalidInput("checkout is not ready for order placement")
	}
	addr := *w.address
	w.mu.Unlock()

	req := client.CreateOrderRequest{
		ShippingAddress: addr.ShippingAddress(),
		City:            addr.City,
		State:           addr.State,
		ZipCode:         addr.PostalCode,
		Country:         addr.Country,
		PhoneNumber:     addr.PhoneNumber,
	}

	// One key per placement attempt; the backend deduplicates retried
	// submissions of the same attempt at the transport level.
	idempotencyKey := uuid.New().String()

	order, err := w.api.CreateOrder(ctx, req, idempotencyKey)
	if err != nil {
		w.notifier.Error("Failed to place order. Please try again.")
		return nil, fmt.Errorf("place order: %w", err)
	}

	w.orders.Add(*order)

	// The backend empties the cart as part of checkout; clearing here only
	// refreshes the local model. The order already exists, so a failure is
	// not fatal.
	if err := w.cart.Clear(ctx); err != nil {
		w.logger.WarnContext(ctx, "cart clear after checkout failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	w.notifier.Success("Order placed successfully!")
	w.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.Float64("total", order.TotalPrice),
	)

	w.mu.Lock()
	w.step = StepDone
	w.mu.Unlock()

	return order, nil
}
