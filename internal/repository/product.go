package repository

import (
	"context"
	"fmt"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const productsTable = "products"

type ProductRepository struct {
	server *server.Server
}

func NewProductRepository(s *server.Server) *ProductRepository {
	return &ProductRepository{server: s}
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	stmt := `
		SELECT id, product_name, price
		FROM products
		ORDER BY id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list products query: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:%s: %w", productsTable, err)
	}
	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	stmt := `
		SELECT id, product_name, price
		FROM products
		WHERE id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get product query for id=%d: %w", id, err)
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, sqlerr.TableError(productsTable, err)
	}

	return &product, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, payload *model.CreateProductRequest) (*model.Product, error) {
	stmt := `
		INSERT INTO products (product_name, price)
		VALUES (@product_name, @price)
		RETURNING id, product_name, price
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"product_name": payload.Name,
		"price":        *payload.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create product query: %w", err)
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:%s: %w", productsTable, err)
	}

	return &product, nil
}

// UpdateProduct writes every column of product; callers merge partial input first.
func (r *ProductRepository) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	stmt := `
		UPDATE products
		SET product_name = @product_name, price = @price
		WHERE id = @id
		RETURNING id, product_name, price
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"id":           product.ID,
		"product_name": product.Name,
		"price":        product.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update product query for id=%d: %w", product.ID, err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, sqlerr.TableError(productsTable, err)
	}

	return &updated, nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	stmt := `
		DELETE FROM products
		WHERE id = @id
	`

	tag, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete product query for id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.TableError(productsTable, pgx.ErrNoRows)
	}

	return nil
}
