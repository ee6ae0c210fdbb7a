// Package cart maintains a session's line items and their derived totals.
// It does no I/O; persistence and rendering live elsewhere.
package cart

import (
	"errors"

	"stitchkart.in/storefront/api/pkg/models"
)

// ShippingFlatMinor is the flat shipping fee, charged whenever the cart is
// non-empty.
const ShippingFlatMinor int64 = 99

// ErrDuplicateItem is returned by AddItem when the id is already in the cart.
// Callers that want to bump the quantity instead must call UpdateQuantity.
var ErrDuplicateItem = errors.New("item already in cart")

// Cart is an ordered sequence of line items, unique by id. It is owned by a
// single session; callers serialize access.
type Cart struct {
	items []models.LineItem
}

func New() *Cart {
	return &Cart{}
}

// Seeded builds a cart pre-populated with items, rejecting duplicate ids.
func Seeded(items []models.LineItem) (*Cart, error) {
	c := New()
	for _, item := range items {
		if err := c.AddItem(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddItem inserts a new line item. Quantity below 1 is clamped to 1.
func (c *Cart) AddItem(item models.LineItem) error {
	if c.indexOf(item.ID) >= 0 {
		return ErrDuplicateItem
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	c.items = append(c.items, item)
	return nil
}

// UpdateQuantity sets the quantity for the matching item to max(1, quantity).
// Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	c.items[i].Quantity = quantity
}

// RemoveItem deletes the matching item, preserving order. Removing an absent
// id is a no-op.
func (c *Cart) RemoveItem(id string) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
}

// Len returns the number of distinct lines, not the summed quantity.
func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []models.LineItem {
	items := make([]models.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Snapshot freezes the cart: a copy of the items plus computed totals.
// Subtotal counts every line regardless of stock; shipping is the flat fee
// whenever the subtotal is positive.
func (c *Cart) Snapshot() models.CartSnapshot {
	snap := models.CartSnapshot{Items: c.Items()}
	for _, item := range snap.Items {
		snap.SubtotalMinor += item.Subtotal()
		snap.TotalItems += item.Quantity
	}
	if snap.SubtotalMinor > 0 {
		snap.ShippingMinor = ShippingFlatMinor
	}
	snap.TotalMinor = snap.SubtotalMinor + snap.ShippingMinor
	return snap
}

func (c *Cart) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
