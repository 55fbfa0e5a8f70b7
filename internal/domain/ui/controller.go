// internal/domain/ui/controller.go
package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// State identifies which dialog surface is visible. Exactly one state is
// active per session; opening a new surface implicitly closes the current
// one.
type State string

const (
	StateClosed       State = "closed"
	StateProductOpen  State = "product"
	StateCartOpen     State = "cart"
	StateCheckoutOpen State = "checkout"
)

// AckState models the add-to-cart acknowledgment flash as a tiny timed
// machine: Idle -> Flashing -> Idle. Re-entry cancels the pending timer and
// restarts, so two rapid confirms never leave conflicting visuals.
type AckState string

const (
	AckIdle     AckState = "idle"
	AckFlashing AckState = "flashing"
)

var (
	// ErrNoProductOpen is returned for quantity and confirm operations
	// outside the product dialog.
	ErrNoProductOpen = errors.New("no product dialog is open")
	// ErrCartNotOpen is returned when proceeding to checkout while the cart
	// dialog is not the visible surface.
	ErrCartNotOpen = errors.New("cart dialog is not open")
)

// CartAdder is the slice of the cart service the controller needs.
type CartAdder interface {
	Add(ctx context.Context, sessionID string, p catalog.Product, quantity int) (*cart.Cart, error)
}

// Controller owns the dialog state of one session: which surface is
// visible, the product dialog's transient product/quantity, and the
// acknowledgment flash. All mutations go through the mutex; the timers
// re-acquire it when they fire.
type Controller struct {
	mu sync.Mutex

	sessionID string
	state     State
	product   catalog.Product
	quantity  int
	ack       AckState

	ackTimer     *time.Timer
	dismissTimer *time.Timer

	carts        CartAdder
	ackDuration  time.Duration
	dismissDelay time.Duration
}

// Snapshot is a read-only view of the controller for rendering. Product is
// set only while the product dialog is open.
type Snapshot struct {
	State        State            `json:"state"`
	Product      *catalog.Product `json:"product,omitempty"`
	Quantity     int              `json:"quantity"`
	RunningTotal int64            `json:"running_total"`
	Ack          AckState         `json:"ack"`
}

func newController(sessionID string, carts CartAdder, ackDuration, dismissDelay time.Duration) *Controller {
	return &Controller{
		sessionID:    sessionID,
		state:        StateClosed,
		ack:          AckIdle,
		carts:        carts,
		ackDuration:  ackDuration,
		dismissDelay: dismissDelay,
	}
}

// OpenProduct shows the product dialog for a product, from any state. The
// transient quantity resets to 1 and any pending acknowledgment is
// cancelled.
func (c *Controller) OpenProduct(p catalog.Product) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelTimersLocked()
	c.state = StateProductOpen
	c.product = p
	c.quantity = 1
	c.ack = AckIdle
	return c.snapshotLocked()
}

// IncrementQuantity raises the product dialog quantity by one.
func (c *Controller) IncrementQuantity() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateProductOpen {
		return Snapshot{}, ErrNoProductOpen
	}
	c.quantity++
	return c.snapshotLocked(), nil
}

// DecrementQuantity lowers the product dialog quantity by one, with a floor
// of 1. At the floor it is a no-op, never an error: removal from the cart is
// a separate explicit operation.
func (c *Controller) DecrementQuantity() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateProductOpen {
		return Snapshot{}, ErrNoProductOpen
	}
	if c.quantity > 1 {
		c.quantity--
	}
	return c.snapshotLocked(), nil
}

// ConfirmAddToCart adds the dialog's product and quantity to the cart,
// starts the acknowledgment flash, and schedules the dialog dismissal. The
// dismissal is sequenced, not immediate, so the acknowledgment is visible
// first. A second confirm while timers are pending cancels and restarts
// them.
func (c *Controller) ConfirmAddToCart(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.state != StateProductOpen {
		c.mu.Unlock()
		return Snapshot{}, ErrNoProductOpen
	}
	product := c.product
	quantity := c.quantity
	c.mu.Unlock()

	// Cart mutation happens outside the lock; the timers below re-acquire it.
	if _, err := c.carts.Add(ctx, c.sessionID, product, quantity); err != nil {
		return Snapshot{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The dialog may have changed while the cart write was in flight. The
	// add stands, but there is no product dialog left to flash or dismiss.
	if c.state != StateProductOpen {
		return c.snapshotLocked(), nil
	}

	c.cancelTimersLocked()
	c.ack = AckFlashing

	c.ackTimer = time.AfterFunc(c.ackDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.ack = AckIdle
	})

	c.dismissTimer = time.AfterFunc(c.dismissDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.state == StateProductOpen {
			c.state = StateClosed
		}
	})

	return c.snapshotLocked(), nil
}

// BuyNow performs the same add-to-cart side effect as ConfirmAddToCart but
// jumps straight to the checkout dialog.
func (c *Controller) BuyNow(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.state != StateProductOpen {
		c.mu.Unlock()
		return Snapshot{}, ErrNoProductOpen
	}
	product := c.product
	quantity := c.quantity
	c.mu.Unlock()

	if _, err := c.carts.Add(ctx, c.sessionID, product, quantity); err != nil {
		return Snapshot{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelTimersLocked()
	c.state = StateCheckoutOpen
	c.ack = AckIdle
	return c.snapshotLocked(), nil
}

// OpenCart shows the cart dialog, from any state. The caller re-reads cart
// contents from the cart service, so the view is never stale.
func (c *Controller) OpenCart() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelTimersLocked()
	c.state = StateCartOpen
	c.ack = AckIdle
	return c.snapshotLocked()
}

// ProceedToCheckout moves from the cart dialog to the checkout dialog.
func (c *Controller) ProceedToCheckout() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateCartOpen {
		return Snapshot{}, ErrCartNotOpen
	}
	c.state = StateCheckoutOpen
	return c.snapshotLocked(), nil
}

// Close dismisses whichever dialog is visible. Close control, backdrop
// click, and Escape all land here; the transition is state-agnostic.
func (c *Controller) Close() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelTimersLocked()
	c.state = StateClosed
	c.ack = AckIdle
	return c.snapshotLocked()
}

// Snapshot returns the current dialog state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:    c.state,
		Quantity: c.quantity,
		Ack:      c.ack,
	}
	if c.state == StateProductOpen {
		p := c.product
		snap.Product = &p
		snap.RunningTotal = c.product.Price * int64(c.quantity)
	}
	return snap
}

func (c *Controller) cancelTimersLocked() {
	if c.ackTimer != nil {
		c.ackTimer.Stop()
		c.ackTimer = nil
	}
	if c.dismissTimer != nil {
		c.dismissTimer.Stop()
		c.dismissTimer = nil
	}
}
