package app

import (
	"context"
	"errors"
	"testing"

	"github.com/vetstore-io/vetstore/internal/orders/domain"
)

type stubRepo struct {
	created *domain.Order
}

func (r *stubRepo) CreateTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.ID = "order-1"
	r.created = &order
	return order, nil
}

func (r *stubRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	return domain.Order{}, ErrNotFound
}

func (r *stubRepo) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	return domain.Order{ID: id, Status: status}, nil
}

type stubCart struct {
	items map[string][]CartItem
}

func (s stubCart) Items(ctx context.Context, cartID string) ([]CartItem, error) {
	items, ok := s.items[cartID]
	if !ok {
		return nil, ErrNotFound
	}
	return items, nil
}

type stubCatalog struct {
	products map[string]Product
}

func (s stubCatalog) GetProduct(ctx context.Context, productID string) (Product, error) {
	p, ok := s.products[productID]
	if !ok {
		return Product{}, errors.New("unknown product")
	}
	return p, nil
}

func fixture() (*stubRepo, stubCart, stubCatalog) {
	repo := &stubRepo{}
	cart := stubCart{items: map[string][]CartItem{
		"cart-1": {
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		"empty": {},
	}}
	catalog := stubCatalog{products: map[string]Product{
		"p1": {ID: "p1", Name: "Alimento", Currency: "COP", Amount: 1000},
		"p2": {ID: "p2", Name: "Collar", Currency: "COP", Amount: 500},
	}}
	return repo, cart, catalog
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots name and price per line", func(t *testing.T) {
		repo, cart, catalog := fixture()
		svc := NewService(repo, cart, catalog)

		order, err := svc.CreateOrder(ctx, "cart-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != domain.StatusPending {
			t.Fatalf("expected pendiente, got %s", order.Status)
		}
		if order.TotalAmount != 2500 {
			t.Fatalf("expected total 2500, got %d", order.TotalAmount)
		}
		if len(order.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(order.Items))
		}
		if order.Items[0].Name != "Alimento" || order.Items[0].LineTotalAmount != 2000 {
			t.Fatalf("unexpected first item: %+v", order.Items[0])
		}
		if repo.created == nil {
			t.Fatal("order not persisted")
		}
	})

	t.Run("empty cart -> ErrEmptyCart", func(t *testing.T) {
		repo, cart, catalog := fixture()
		svc := NewService(repo, cart, catalog)

		_, err := svc.CreateOrder(ctx, "empty")
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
		if repo.created != nil {
			t.Fatal("empty cart must not create an order")
		}
	})

	t.Run("unknown cart -> not found", func(t *testing.T) {
		repo, cart, catalog := fixture()
		svc := NewService(repo, cart, catalog)

		_, err := svc.CreateOrder(ctx, "nope")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	repo, cart, catalog := fixture()
	svc := NewService(repo, cart, catalog)

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), "order-1", "volando")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("accepts a valid transition", func(t *testing.T) {
		order, err := svc.UpdateStatus(context.Background(), "order-1", domain.StatusConfirmed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != domain.StatusConfirmed {
			t.Fatalf("expected confirmado, got %s", order.Status)
		}
	})
}
