package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vetstore-io/vetstore/internal/catalog/app"
	"github.com/vetstore-io/vetstore/internal/catalog/domain"
)

// ProductRepo implements app.ProductRepo against PostgreSQL.
type ProductRepo struct{ db *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `id, name, description, price_amount, currency, stock, category, created_at, updated_at`

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price_amount, currency, stock, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+productColumns,
		p.Name, p.Description, p.Price.Amount, p.Price.Currency, p.Stock, p.Category,
	)

	out, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+` FROM products WHERE id = $1`, productID)

	out, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return out, nil
}

func (r *ProductRepo) List(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products`
	args := []interface{}{}
	if category != "" {
		q += ` WHERE category = $1`
		args = append(args, category)
	}
	q += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int32) (domain.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE products SET stock = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns, productID, stock)

	out, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("update stock: %w", err)
	}
	return out, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return app.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return app.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p  domain.Product
		id uuid.UUID
	)
	err := row.Scan(&id, &p.Name, &p.Description, &p.Price.Amount, &p.Price.Currency,
		&p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id.String()
	return p, nil
}
