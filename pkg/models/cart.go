package models

// LineItem is one product/variant/quantity entry in a cart or order.
// Prices are integer minor-currency units (paise); formatting for display
// happens at the client, never here.
type LineItem struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	PriceMinor         int64  `json:"price_minor"`
	OriginalPriceMinor int64  `json:"original_price_minor,omitempty"`
	Discount           string `json:"discount,omitempty"`
	Size               string `json:"size"`
	Color              string `json:"color"`
	Quantity           int    `json:"quantity"`
	InStock            bool   `json:"in_stock"`
	ImageRef           string `json:"image_ref,omitempty"`
}

// Subtotal returns price x quantity for this line.
func (li *LineItem) Subtotal() int64 {
	return li.PriceMinor * int64(li.Quantity)
}

// CartSnapshot is the cart state frozen at a point in time: a copy of the
// items plus the derived totals. Later cart mutation never changes a snapshot.
type CartSnapshot struct {
	Items         []LineItem `json:"items"`
	SubtotalMinor int64      `json:"subtotal_minor"`
	ShippingMinor int64      `json:"shipping_minor"`
	TotalMinor    int64      `json:"total_minor"`
	TotalItems    int        `json:"total_items"`
}

// EligibleItems returns the in-stock subset of the snapshot, the only lines
// permitted to proceed to checkout.
func (s CartSnapshot) EligibleItems() []LineItem {
	eligible := make([]LineItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.InStock {
			eligible = append(eligible, item)
		}
	}
	return eligible
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest carries the requested quantity verbatim; zero and
// negative values are accepted here and clamped to 1 by the cart.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
