package app

import (
	"context"
	"errors"
	"strings"

	"github.com/vetstore-io/vetstore/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateProduct(ctx context.Context, name, desc, category, currency string, amount int64, stock int32) (domain.Product, error) {
	name = strings.TrimSpace(name)
	currency = strings.TrimSpace(currency)

	if name == "" || currency == "" || amount <= 0 || stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	p := domain.Product{
		Name:        name,
		Description: desc,
		Category:    strings.TrimSpace(category),
		Stock:       stock,
		Price: domain.Money{
			Currency: currency,
			Amount:   amount,
		},
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, strings.TrimSpace(category), limit)
}

// UpdateStock overwrites the stock counter. Inventory management owns this
// value; the cart only reads it.
func (s *Service) UpdateStock(ctx context.Context, id string, stock int32) (domain.Product, error) {
	if strings.TrimSpace(id) == "" || stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.UpdateStock(ctx, id, stock)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
