// Package checkout orchestrates submission of a finalized cart to the ledger.
package checkout

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/Shyam-2315/Grocery-Store/internal/domain"
)

// Ledger records completed sales on the backend.
type Ledger interface {
	CreateTransaction(ctx context.Context, credential string, checkout domain.CheckoutRequest) (*domain.Transaction, error)
}

// Cart is the slice of the cart store the coordinator needs.
type Cart interface {
	Snapshot() []domain.CartLine
	Clear()
}

// Catalog is refreshed after a successful sale; stock levels change
// server-side when a transaction commits.
type Catalog interface {
	Refresh(ctx context.Context, credential string) error
}

// Coordinator drives the checkout protocol. The call is atomic from the
// terminal's perspective: either the whole cart becomes a recorded
// transaction and is cleared, or nothing changes locally and the operator
// can retry with the intact cart.
type Coordinator struct {
	ledger   Ledger
	cart     Cart
	catalog  Catalog
	logger   *slog.Logger
	inFlight atomic.Bool
}

// NewCoordinator wires a coordinator over the cart store, catalog cache and
// ledger client.
func NewCoordinator(ledger Ledger, cart Cart, catalog Catalog, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		ledger:  ledger,
		cart:    cart,
		catalog: catalog,
		logger:  logger,
	}
}

// InFlight reports whether a submission is currently running. The UI uses
// this to disable the pay buttons instead of relying on debouncing alone.
func (c *Coordinator) InFlight() bool {
	return c.inFlight.Load()
}

// Checkout submits the current cart to the ledger.
//
// An empty cart and an invalid payment method are rejected locally without
// any network call. While a submission is in flight a second one is refused,
// preventing a duplicate ledger entry for the same cart. On success the cart
// is cleared and the catalog refreshed exactly once; a refresh failure is
// logged as a warning and does not undo the completed sale. On rejection or
// transport failure the cart is left untouched.
func (c *Coordinator) Checkout(ctx context.Context, credential string, method domain.PaymentMethod) (*domain.Transaction, error) {
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrCheckoutInFlight
	}
	defer c.inFlight.Store(false)

	lines := c.cart.Snapshot()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	tx, err := c.ledger.CreateTransaction(ctx, credential, domain.CheckoutRequest{
		Items:         lines,
		PaymentMethod: method,
	})
	if err != nil {
		return nil, err
	}

	c.cart.Clear()
	c.logger.Info("sale recorded", "transaction_id", tx.ID, "lines", len(lines), "payment_method", method)

	if err := c.catalog.Refresh(ctx, credential); err != nil {
		c.logger.Warn("catalog refresh after sale failed", "error", err)
	}

	return tx, nil
}
