package models

import (
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of a placed order. The checkout flow
// only ever produces Paid orders; Pending and Cancelled exist for imports
// and future admin tooling.
type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is an immutable record of a completed checkout. Items are a snapshot
// decoupled from the live cart; nothing here changes after creation.
type Order struct {
	ID         string      `json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []LineItem  `json:"items"`
	TotalMinor int64       `json:"total_minor"`
	PaymentRef string      `json:"payment_ref"`
	Status     OrderStatus `json:"status"`
}

// ItemCount returns the total quantity across all order lines.
func (o *Order) ItemCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// GenerateOrderID produces a time-based identifier.
// Format: ORD-YYYYMMDD-HHMMSS-RAND
func GenerateOrderID() string {
	now := time.Now()
	return fmt.Sprintf("ORD-%s-%03d",
		now.Format("20060102-150405"),
		now.Nanosecond()%1000,
	)
}

// ShippingAddress is opaque to the checkout core; field validation is the
// client's concern.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}
