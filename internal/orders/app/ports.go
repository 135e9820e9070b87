package app

import (
	"context"

	"github.com/vetstore-io/vetstore/internal/orders/domain"
)

type OrderRepo interface {
	// CreateTx persists the order and its items in one transaction.
	CreateTx(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (domain.Order, error)
}

type CartItem struct {
	ProductID string
	Quantity  int32
}

type CartReader interface {
	Items(ctx context.Context, cartID string) ([]CartItem, error)
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
