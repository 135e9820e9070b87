package adapter

import (
	"context"
	"errors"

	cartapp "github.com/vetstore-io/vetstore/internal/cart/app"
	checkoutapp "github.com/vetstore-io/vetstore/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Items(ctx context.Context, cartID string) ([]checkoutapp.CartItem, error) {
	items, err := r.svc.ListItems(ctx, cartID)
	if errors.Is(err, cartapp.ErrNotFound) || errors.Is(err, cartapp.ErrInvalidInput) {
		return nil, checkoutapp.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	out := make([]checkoutapp.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, checkoutapp.CartItem{
			ProductID: it.ProductID,
			Quantity:  int64(it.Quantity),
		})
	}
	return out, nil
}

func (r *CartServiceReader) SetPaymentLink(ctx context.Context, cartID, link string) error {
	err := r.svc.SetPaymentLink(ctx, cartID, link)
	if errors.Is(err, cartapp.ErrNotFound) {
		return checkoutapp.ErrNotFound
	}
	return err
}
