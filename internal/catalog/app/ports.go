package app

import (
	"context"

	"github.com/vetstore-io/vetstore/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context, category string, limit int) ([]domain.Product, error)
	UpdateStock(ctx context.Context, id string, stock int32) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}
