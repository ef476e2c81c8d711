package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const ordersTable = "orders"

type OrderRepository struct {
	server *server.Server
}

func NewOrderRepository(s *server.Server) *OrderRepository {
	return &OrderRepository{server: s}
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	stmt := `
		SELECT id, order_date, user_id
		FROM orders
		ORDER BY id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list orders query: %w", err)
	}

	return collectOrders(rows)
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	stmt := `
		SELECT id, order_date, user_id
		FROM orders
		WHERE id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get order query for id=%d: %w", id, err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
	if err != nil {
		return nil, sqlerr.TableError(ordersTable, err)
	}

	return &order, nil
}

// CreateOrder inserts the order and its initial products in one transaction.
// A nil orderDate lets the column default (now) apply.
func (r *OrderRepository) CreateOrder(ctx context.Context, userID int64, orderDate *time.Time, productIDs []int64) (*model.Order, error) {
	var order model.Order

	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		stmt := `
			INSERT INTO orders (user_id, order_date)
			VALUES (@user_id, COALESCE(@order_date, now()))
			RETURNING id, order_date, user_id
		`

		rows, err := tx.Query(ctx, stmt, pgx.NamedArgs{
			"user_id":    userID,
			"order_date": orderDate,
		})
		if err != nil {
			return fmt.Errorf("failed to execute create order query: %w", err)
		}

		order, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		if err != nil {
			return fmt.Errorf("failed to collect row from table:%s: %w", ordersTable, err)
		}

		if len(productIDs) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, productID := range productIDs {
			batch.Queue(`
				INSERT INTO order_products (order_id, product_id)
				VALUES ($1, $2)
				ON CONFLICT (order_id, product_id) DO NOTHING
			`, order.ID, productID)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to attach products to order id=%d: %w", order.ID, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// AddProduct associates productID with orderID. It reports false when the
// pair already existed; the (order_id, product_id) primary key makes the
// check atomic under concurrent requests.
func (r *OrderRepository) AddProduct(ctx context.Context, orderID, productID int64) (bool, error) {
	stmt := `
		INSERT INTO order_products (order_id, product_id)
		VALUES (@order_id, @product_id)
		ON CONFLICT (order_id, product_id) DO NOTHING
	`

	tag, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{
		"order_id":   orderID,
		"product_id": productID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to add product id=%d to order id=%d: %w", productID, orderID, err)
	}

	return tag.RowsAffected() == 1, nil
}

// RemoveProduct deletes the association and reports whether it existed.
func (r *OrderRepository) RemoveProduct(ctx context.Context, orderID, productID int64) (bool, error) {
	stmt := `
		DELETE FROM order_products
		WHERE order_id = @order_id AND product_id = @product_id
	`

	tag, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{
		"order_id":   orderID,
		"product_id": productID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to remove product id=%d from order id=%d: %w", productID, orderID, err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	stmt := `
		SELECT id, order_date, user_id
		FROM orders
		WHERE user_id = @user_id
		ORDER BY id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list orders query for user id=%d: %w", userID, err)
	}

	return collectOrders(rows)
}

func (r *OrderRepository) ListOrderProducts(ctx context.Context, orderID int64) ([]model.Product, error) {
	stmt := `
		SELECT p.id, p.product_name, p.price
		FROM products p
		JOIN order_products op ON op.product_id = p.id
		WHERE op.order_id = @order_id
		ORDER BY p.id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"order_id": orderID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list products query for order id=%d: %w", orderID, err)
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

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Order])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:%s: %w", ordersTable, err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
