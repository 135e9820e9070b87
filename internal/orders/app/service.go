package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vetstore-io/vetstore/internal/orders/domain"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo    OrderRepo
	cart    CartReader
	catalog CatalogReader
}

func NewService(repo OrderRepo, cart CartReader, catalog CatalogReader) *Service {
	return &Service{repo: repo, cart: cart, catalog: catalog}
}

// CreateOrder snapshots the cart into an order at the catalog's current
// prices. Name and unit price are frozen per line; later catalog changes
// do not touch the order.
func (s *Service) CreateOrder(ctx context.Context, cartID string) (domain.Order, error) {
	if strings.TrimSpace(cartID) == "" {
		return domain.Order{}, ErrInvalidInput
	}

	items, err := s.cart.Items(ctx, cartID)
	if err != nil {
		return domain.Order{}, err
	}
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.Order{
		CartID: cartID,
		Status: domain.StatusPending,
		Items:  make([]domain.OrderItem, 0, len(items)),
	}

	for _, item := range items {
		product, err := s.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("price order line %s: %w", item.ProductID, err)
		}

		lineTotal := product.Amount * int64(item.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:       product.ID,
			Name:            product.Name,
			UnitAmount:      product.Amount,
			Quantity:        item.Quantity,
			LineTotalAmount: lineTotal,
		})
		order.SubTotalAmount += lineTotal
		order.Currency = product.Currency
	}
	order.TotalAmount = order.SubTotalAmount

	return s.repo.CreateTx(ctx, order)
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" || !domain.ValidStatus(status) {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
