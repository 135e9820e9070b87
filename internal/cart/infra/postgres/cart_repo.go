package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vetstore-io/vetstore/internal/cart/app"
	"github.com/vetstore-io/vetstore/internal/cart/domain"
)

// CartRepo implements app.CartRepo against PostgreSQL.
type CartRepo struct{ db *sql.DB }

func NewCartRepo(db *sql.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) Create(ctx context.Context) (domain.Cart, error) {
	var (
		c  domain.Cart
		id uuid.UUID
	)
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO carts DEFAULT VALUES
		RETURNING id, COALESCE(payment_link, ''), created_at`,
	).Scan(&id, &c.PaymentLink, &c.CreatedAt)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("create cart: %w", err)
	}
	c.ID = id.String()
	return c, nil
}

func (r *CartRepo) Get(ctx context.Context, cartID string) (domain.Cart, error) {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return domain.Cart{}, app.ErrNotFound
	}

	var c domain.Cart
	err = r.db.QueryRowContext(ctx, `
		SELECT id, COALESCE(payment_link, ''), created_at
		FROM carts WHERE id = $1`, id,
	).Scan(&id, &c.PaymentLink, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("get cart: %w", err)
	}
	c.ID = id.String()
	return c, nil
}

// UpsertItem overwrites the quantity when the (cart, product) line already
// exists. The insertion-order row id is preserved on conflict.
func (r *CartRepo) UpsertItem(ctx context.Context, item domain.LineItem) (domain.LineItem, error) {
	cartID, err := uuid.Parse(item.CartID)
	if err != nil {
		return domain.LineItem{}, app.ErrNotFound
	}
	productID, err := uuid.Parse(item.ProductID)
	if err != nil {
		return domain.LineItem{}, app.ErrNotFound
	}

	var out domain.LineItem
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity
		RETURNING cart_id, product_id, quantity, added_at`,
		cartID, productID, item.Quantity,
	).Scan(&out.CartID, &out.ProductID, &out.Quantity, &out.AddedAt)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("upsert cart item: %w", err)
	}
	return out, nil
}

func (r *CartRepo) ListItems(ctx context.Context, cartID string) ([]domain.LineItem, error) {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return nil, app.ErrNotFound
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT cart_id, product_id, quantity, added_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	out := []domain.LineItem{}
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.CartID, &item.ProductID, &item.Quantity, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *CartRepo) RemoveItem(ctx context.Context, cartID, productID string) error {
	cid, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrNotFound
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return app.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`, cid, pid)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return app.ErrNotFound
	}
	return nil
}

func (r *CartRepo) SetPaymentLink(ctx context.Context, cartID, link string) error {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE carts SET payment_link = $2 WHERE id = $1`, id, link)
	if err != nil {
		return fmt.Errorf("set payment link: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return app.ErrNotFound
	}
	return nil
}

// Delete removes the cart; its line items go with it via ON DELETE CASCADE.
func (r *CartRepo) Delete(ctx context.Context, cartID string) error {
	id, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return app.ErrNotFound
	}
	return nil
}
