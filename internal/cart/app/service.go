package app

import (
	"context"
	"errors"
	"strings"

	"github.com/vetstore-io/vetstore/internal/cart/domain"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Service struct {
	repo     CartRepo
	products ProductFinder
}

func NewService(repo CartRepo, products ProductFinder) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) CreateCart(ctx context.Context) (domain.Cart, error) {
	return s.repo.Create(ctx)
}

func (s *Service) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	if strings.TrimSpace(cartID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, cartID)
}

// AddOrUpdateItem validates the quantity against the product's current
// stock (checked, never decremented; this system does not reserve
// inventory) and upserts the line. Last write wins on quantity.
func (s *Service) AddOrUpdateItem(ctx context.Context, cartID, productID string, quantity int32) (domain.LineItem, error) {
	if strings.TrimSpace(cartID) == "" || strings.TrimSpace(productID) == "" || quantity < 1 {
		return domain.LineItem{}, ErrInvalidInput
	}

	if _, err := s.repo.Get(ctx, cartID); err != nil {
		return domain.LineItem{}, err
	}

	product, err := s.products.Find(ctx, productID)
	if err != nil {
		return domain.LineItem{}, err
	}
	if quantity > product.Stock {
		return domain.LineItem{}, ErrInsufficientStock
	}

	return s.repo.UpsertItem(ctx, domain.LineItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// ListItems returns the cart's lines in insertion order. An empty cart
// yields an empty slice, not an error.
func (s *Service) ListItems(ctx context.Context, cartID string) ([]domain.LineItem, error) {
	if strings.TrimSpace(cartID) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.repo.Get(ctx, cartID); err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, cartID)
}

func (s *Service) RemoveItem(ctx context.Context, cartID, productID string) error {
	if strings.TrimSpace(cartID) == "" || strings.TrimSpace(productID) == "" {
		return ErrInvalidInput
	}
	return s.repo.RemoveItem(ctx, cartID, productID)
}

// SetPaymentLink persists the checkout result onto the cart. Concurrent
// checkouts may both land here; the last write wins.
func (s *Service) SetPaymentLink(ctx context.Context, cartID, link string) error {
	if strings.TrimSpace(cartID) == "" || strings.TrimSpace(link) == "" {
		return ErrInvalidInput
	}
	return s.repo.SetPaymentLink(ctx, cartID, link)
}

func (s *Service) DeleteCart(ctx context.Context, cartID string) error {
	if strings.TrimSpace(cartID) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, cartID)
}
