package adapter

import (
	"context"
	"errors"

	cartapp "github.com/vetstore-io/vetstore/internal/cart/app"
	catalogapp "github.com/vetstore-io/vetstore/internal/catalog/app"
	ordersapp "github.com/vetstore-io/vetstore/internal/orders/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Items(ctx context.Context, cartID string) ([]ordersapp.CartItem, error) {
	items, err := r.svc.ListItems(ctx, cartID)
	if errors.Is(err, cartapp.ErrNotFound) || errors.Is(err, cartapp.ErrInvalidInput) {
		return nil, ordersapp.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	out := make([]ordersapp.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, ordersapp.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return out, nil
}

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (ordersapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) {
		return ordersapp.Product{}, ordersapp.ErrNotFound
	}
	if err != nil {
		return ordersapp.Product{}, err
	}

	return ordersapp.Product{
		ID:       p.ID,
		Name:     p.Name,
		Currency: p.Price.Currency,
		Amount:   p.Price.Amount,
	}, nil
}
