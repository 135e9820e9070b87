package app

import (
	"context"

	"github.com/vetstore-io/vetstore/internal/cart/domain"
)

type CartRepo interface {
	Create(ctx context.Context) (domain.Cart, error)
	Get(ctx context.Context, cartID string) (domain.Cart, error)
	UpsertItem(ctx context.Context, item domain.LineItem) (domain.LineItem, error)
	ListItems(ctx context.Context, cartID string) ([]domain.LineItem, error)
	RemoveItem(ctx context.Context, cartID, productID string) error
	SetPaymentLink(ctx context.Context, cartID, link string) error
	Delete(ctx context.Context, cartID string) error
}

// Product is the slice of catalog state the cart needs for validation.
type Product struct {
	ID    string
	Name  string
	Stock int32
}

type ProductFinder interface {
	Find(ctx context.Context, productID string) (Product, error)
}
