// Package checkout drives a single checkout attempt through its states:
// Cart, Reviewing, AwaitingPayment, Placed. Payment failures keep the
// machine in AwaitingPayment so the caller can retry; a placed order is
// created exactly once.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"stitchkart.in/storefront/api/pkg/models"
	"stitchkart.in/storefront/api/pkg/orderlog"
	"stitchkart.in/storefront/api/pkg/payment"
)

type State string

const (
	StateCart            State = "cart"
	StateReviewing       State = "reviewing"
	StateAwaitingPayment State = "awaiting_payment"
	StatePlaced          State = "placed"
)

var (
	// ErrNoEligibleItems rejects checkout when no line is in stock.
	ErrNoEligibleItems = errors.New("no items in stock to checkout")
	// ErrInvalidState rejects a transition requested from the wrong state.
	ErrInvalidState = errors.New("invalid checkout state for this action")
)

// Machine is the checkout state machine for one session. The session owner
// serializes calls; there is no internal locking.
//
// On ProceedToCheckout the cart snapshot is frozen: the in-stock subset
// becomes the order lines, while the totals cover the whole cart. The
// payment amount therefore includes out-of-stock lines that never ship.
// That mirrors the storefront as shipped and is left as-is pending a
// product decision.
type Machine struct {
	state    State
	frozen   models.CartSnapshot
	eligible []models.LineItem
	address  models.ShippingAddress
	order    *models.Order
	lastFail string
	orders   *orderlog.Log
}

func NewMachine(orders *orderlog.Log) *Machine {
	return &Machine{state: StateCart, orders: orders}
}

func (m *Machine) State() State { return m.state }

// FrozenTotal is the amount carried through checkout, fixed at review time.
func (m *Machine) FrozenTotal() int64 { return m.frozen.TotalMinor }

// FrozenSnapshot returns the cart state captured at review time.
func (m *Machine) FrozenSnapshot() models.CartSnapshot { return m.frozen }

// EligibleItems returns the in-stock subset captured at review time.
func (m *Machine) EligibleItems() []models.LineItem {
	items := make([]models.LineItem, len(m.eligible))
	copy(items, m.eligible)
	return items
}

// Address returns the shipping address chosen for this attempt.
func (m *Machine) Address() models.ShippingAddress { return m.address }

// LastFailure is the most recent payment failure reason, empty if none.
func (m *Machine) LastFailure() string { return m.lastFail }

// Order returns the placed order, nil until the machine reaches Placed.
func (m *Machine) Order() *models.Order { return m.order }

// ProceedToCheckout moves Cart -> Reviewing, freezing the snapshot. At least
// one line must be in stock; otherwise the state is unchanged and
// ErrNoEligibleItems is returned.
func (m *Machine) ProceedToCheckout(snap models.CartSnapshot) error {
	if m.state != StateCart {
		return fmt.Errorf("%w: proceed to checkout from %q", ErrInvalidState, m.state)
	}
	eligible := snap.EligibleItems()
	if len(eligible) == 0 {
		return ErrNoEligibleItems
	}
	m.frozen = snap
	m.eligible = eligible
	m.state = StateReviewing
	return nil
}

// ProceedToPayment moves Reviewing -> AwaitingPayment with the shipping
// address. The address is opaque here; validating its fields is the client's
// concern.
func (m *Machine) ProceedToPayment(address models.ShippingAddress) error {
	if m.state != StateReviewing {
		return fmt.Errorf("%w: proceed to payment from %q", ErrInvalidState, m.state)
	}
	m.address = address
	m.state = StateAwaitingPayment
	return nil
}

// Pay submits one charge attempt for the frozen total. On approval the
// machine places the order; on decline it stays in AwaitingPayment and
// returns the failure for the caller to surface. There is no automatic
// retry.
func (m *Machine) Pay(ctx context.Context, gateway payment.Gateway) (*models.Order, error) {
	if m.state != StateAwaitingPayment {
		return nil, fmt.Errorf("%w: pay from %q", ErrInvalidState, m.state)
	}

	ref, err := gateway.Charge(ctx, m.frozen.TotalMinor, map[string]string{
		"item_count": fmt.Sprintf("%d", len(m.eligible)),
	})
	if err != nil {
		var payErr *payment.Error
		if errors.As(err, &payErr) {
			m.lastFail = payErr.Reason
		} else {
			m.lastFail = err.Error()
		}
		return nil, err
	}

	return m.CompletePayment(ctx, ref)
}

// CompletePayment moves AwaitingPayment -> Placed on a successful payment
// confirmation, building the order from the frozen eligible items and
// appending it to the order log. A duplicate confirmation after Placed is a
// no-op returning the order already created; the log never gets a second
// entry for one attempt.
func (m *Machine) CompletePayment(ctx context.Context, paymentRef string) (*models.Order, error) {
	if m.state == StatePlaced {
		return m.order, nil
	}
	if m.state != StateAwaitingPayment {
		return nil, fmt.Errorf("%w: complete payment from %q", ErrInvalidState, m.state)
	}

	order := &models.Order{
		ID:         models.GenerateOrderID(),
		CreatedAt:  time.Now(),
		Items:      m.EligibleItems(),
		TotalMinor: m.frozen.TotalMinor,
		PaymentRef: paymentRef,
		Status:     models.OrderStatusPaid,
	}

	m.order = order
	m.lastFail = ""
	m.state = StatePlaced

	// The charge already went through, so the order stands even if we cannot
	// persist it; the caller gets the write error alongside the order.
	if err := m.orders.Append(ctx, *order); err != nil {
		log.Printf("Error: order %s placed but not persisted: %v", order.ID, err)
		return order, err
	}
	return order, nil
}

// FailPayment records a declined attempt. The machine stays in
// AwaitingPayment and the caller may retry with another Pay call.
func (m *Machine) FailPayment(reason string) error {
	if m.state != StateAwaitingPayment {
		return fmt.Errorf("%w: fail payment from %q", ErrInvalidState, m.state)
	}
	m.lastFail = reason
	return &payment.Error{Reason: reason}
}
