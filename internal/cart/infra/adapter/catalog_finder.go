package adapter

import (
	"context"
	"errors"

	cartapp "github.com/vetstore-io/vetstore/internal/cart/app"
	catalogapp "github.com/vetstore-io/vetstore/internal/catalog/app"
)

// CatalogFinder lets the cart validate line items against the catalog.
type CatalogFinder struct {
	svc *catalogapp.Service
}

func NewCatalogFinder(svc *catalogapp.Service) *CatalogFinder {
	return &CatalogFinder{svc: svc}
}

func (f *CatalogFinder) Find(ctx context.Context, productID string) (cartapp.Product, error) {
	p, err := f.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
		return cartapp.Product{}, cartapp.ErrNotFound
	}
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:    p.ID,
		Name:  p.Name,
		Stock: p.Stock,
	}, nil
}
