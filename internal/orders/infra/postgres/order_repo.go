package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vetstore-io/vetstore/internal/orders/app"
	"github.com/vetstore-io/vetstore/internal/orders/domain"
)

// OrderRepo implements app.OrderRepo against PostgreSQL.
type OrderRepo struct{ db *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) execTX(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (r *OrderRepo) CreateTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	var orderID string

	err := r.execTX(ctx, func(tx *sql.Tx) error {
		cartID, err := uuid.Parse(order.CartID)
		if err != nil {
			return fmt.Errorf("invalid cart id: %w", err)
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO orders (cart_id, status, currency, subtotal_amount, total_amount)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			cartID, order.Status, order.Currency, order.SubTotalAmount, order.TotalAmount,
		).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for i, item := range order.Items {
			if item.LineTotalAmount != item.UnitAmount*int64(item.Quantity) {
				return fmt.Errorf("item %d: line total mismatch", i)
			}

			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return fmt.Errorf("item %d: invalid product id: %w", i, err)
			}

			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, product_id, name, unit_amount, quantity, line_total_amount)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				orderID, productID, item.Name, item.UnitAmount, item.Quantity, item.LineTotalAmount)
			if err != nil {
				return fmt.Errorf("item %d: add order item: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	return r.Get(ctx, orderID)
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return domain.Order{}, app.ErrNotFound
	}

	var o domain.Order
	err = r.db.QueryRowContext(ctx, `
		SELECT id, cart_id, status, currency, subtotal_amount, total_amount, created_at, updated_at
		FROM orders WHERE id = $1`, orderID,
	).Scan(&o.ID, &o.CartID, &o.Status, &o.Currency, &o.SubTotalAmount, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, unit_amount, quantity, line_total_amount
		FROM order_items WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name,
			&item.UnitAmount, &item.Quantity, &item.LineTotalAmount); err != nil {
			return domain.Order{}, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	return o, rows.Err()
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return domain.Order{}, app.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, orderID, status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Order{}, app.ErrNotFound
	}
	return r.Get(ctx, id)
}
