package domain

import "time"

// Order statuses follow the store's fulfillment flow.
const (
	StatusPending   = "pendiente"
	StatusConfirmed = "confirmado"
	StatusPreparing = "preparando"
	StatusShipped   = "enviado"
	StatusDelivered = "entregado"
	StatusCancelled = "cancelado"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order freezes a cart's contents at purchase time: unlike checkout
// totaling, name and unit price per line are snapshotted.
type Order struct {
	ID             string
	CartID         string
	Status         string
	Currency       string
	SubTotalAmount int64
	TotalAmount    int64
	Items          []OrderItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderItem struct {
	ID              string
	OrderID         string
	ProductID       string
	Name            string
	UnitAmount      int64
	Quantity        int32
	LineTotalAmount int64
}
