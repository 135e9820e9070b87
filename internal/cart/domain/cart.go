package domain

import "time"

// Cart owns its line items; deleting a cart cascades to them.
// PaymentLink is empty until a checkout succeeds.
type Cart struct {
	ID          string
	PaymentLink string
	CreatedAt   time.Time
}

// LineItem is unique per (cart, product). Re-adding a product overwrites
// the quantity rather than duplicating the line.
type LineItem struct {
	CartID    string
	ProductID string
	Quantity  int32
	AddedAt   time.Time
}
