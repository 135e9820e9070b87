package app

import "context"

type CartItem struct {
	ProductID string
	Quantity  int64
}

// CartReader exposes the slice of the cart aggregate checkout needs:
// the lines to price and the single write-back of the payment link.
type CartReader interface {
	Items(ctx context.Context, cartID string) ([]CartItem, error)
	SetPaymentLink(ctx context.Context, cartID, link string) error
}

type Product struct {
	ID       string
	Name     string
	Currency string
	Amount   int64
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

// PaymentItem is one entry of the payment-session request payload; the
// unit amount is already in minor units.
type PaymentItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type PaymentRequest struct {
	Items      []PaymentItem
	BuyerEmail string
}

// SessionCreator opens a hosted-checkout session and returns its URL.
type SessionCreator interface {
	CreateSession(ctx context.Context, req PaymentRequest) (string, error)
}
