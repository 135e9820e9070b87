package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/vetstore-io/vetstore/internal/cart/app"
	"github.com/vetstore-io/vetstore/internal/cart/domain"
)

func newMockRepo(t *testing.T) (*CartRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewCartRepo(db), mock
}

func TestCartRepoGet(t *testing.T) {
	t.Run("malformed id -> not found without query", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		_, err := repo.Get(context.Background(), "not-a-uuid")
		if !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unexpected db calls: %v", err)
		}
	})

	t.Run("no row -> not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()

		mock.ExpectQuery(`SELECT id, COALESCE\(payment_link, ''\), created_at`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), id.String())
		if !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT id, COALESCE\(payment_link, ''\), created_at`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "payment_link", "created_at"}).
				AddRow(id, "https://pay.example/s/1", now))

		c, err := repo.Get(context.Background(), id.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != id.String() || c.PaymentLink != "https://pay.example/s/1" {
			t.Fatalf("unexpected cart: %+v", c)
		}
	})
}

func TestCartRepoUpsertItem(t *testing.T) {
	repo, mock := newMockRepo(t)
	cartID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO cart_items`).
		WithArgs(cartID, productID, int32(3)).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "product_id", "quantity", "added_at"}).
			AddRow(cartID.String(), productID.String(), int32(3), now))

	item, err := repo.UpsertItem(context.Background(), domain.LineItem{
		CartID:    cartID.String(),
		ProductID: productID.String(),
		Quantity:  3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", item.Quantity)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCartRepoSetPaymentLink(t *testing.T) {
	t.Run("updates existing cart", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()

		mock.ExpectExec(`UPDATE carts SET payment_link`).
			WithArgs(id, "https://pay.example/s/2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.SetPaymentLink(context.Background(), id.String(), "https://pay.example/s/2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no rows -> not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()

		mock.ExpectExec(`UPDATE carts SET payment_link`).
			WithArgs(id, "x").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetPaymentLink(context.Background(), id.String(), "x")
		if !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
