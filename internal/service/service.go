// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, applies the business
// rules (existence checks, partial merges, association rules, side
// effects) and calls repository methods to interact with the data.
package service

import (
	"context"
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/hibiken/asynq"
)

// UserRepository is the persistence the user service depends on.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, payload *model.CreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ProductRepository is the persistence the product service depends on.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, payload *model.CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderRepository is the persistence the order service depends on.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	CreateOrder(ctx context.Context, userID int64, orderDate *time.Time, productIDs []int64) (*model.Order, error)
	AddProduct(ctx context.Context, orderID, productID int64) (bool, error)
	RemoveProduct(ctx context.Context, orderID, productID int64) (bool, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListOrderProducts(ctx context.Context, orderID int64) ([]model.Product, error)
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
