package app

import (
	"context"
	"fmt"

	"github.com/vetstore-io/vetstore/internal/checkout/domain"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	cart     CartReader
	catalog  CatalogReader
	payments SessionCreator

	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, payments SessionCreator, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		cart:          cart,
		catalog:       catalog,
		payments:      payments,
		maxConcurrent: maxConcurrent,
	}
}

// Quote prices the cart at the catalog's current prices. A price change
// between add-to-cart and checkout deliberately affects the total.
func (s *Service) Quote(ctx context.Context, cartID string) (domain.Quote, error) {
	items, err := s.cart.Items(ctx, cartID)
	if err != nil {
		return domain.Quote{}, err
	}
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		idx := idx
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}

			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: domain.Money{
					Currency: product.Currency,
					Amount:   product.Amount,
				},
				LineTotal: domain.Money{
					Currency: product.Currency,
					Amount:   product.Amount * it.Quantity,
				},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	var total int64
	for _, line := range lines {
		total += line.LineTotal.Amount
	}

	return domain.Quote{
		Lines: lines,
		Total: domain.Money{
			Currency: lines[0].LineTotal.Currency,
			Amount:   total,
		},
	}, nil
}

// InitiateCheckout turns a cart into a payment-gateway session: price the
// cart, ask the payment service for a hosted-checkout URL, persist that
// URL onto the cart. The gateway is never called for an empty cart, and a
// gateway failure leaves the cart untouched; the caller decides whether
// to retry.
func (s *Service) InitiateCheckout(ctx context.Context, cartID, buyerEmail string) (domain.Result, error) {
	quote, err := s.Quote(ctx, cartID)
	if err != nil {
		return domain.Result{}, err
	}

	req := PaymentRequest{
		Items:      make([]PaymentItem, 0, len(quote.Lines)),
		BuyerEmail: buyerEmail,
	}
	for _, line := range quote.Lines {
		req.Items = append(req.Items, PaymentItem{
			Name:       line.Name,
			UnitAmount: line.UnitPrice.Amount,
			Quantity:   line.Quantity,
		})
	}

	link, err := s.payments.CreateSession(ctx, req)
	if err != nil {
		return domain.Result{}, err
	}

	if err := s.cart.SetPaymentLink(ctx, cartID, link); err != nil {
		return domain.Result{}, fmt.Errorf("persist payment link: %w", err)
	}

	return domain.Result{PaymentLink: link, Quote: quote}, nil
}
