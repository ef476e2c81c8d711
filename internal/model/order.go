package model

import "time"

// Order belongs to exactly one user and holds a set of products through the
// order_products association.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	OrderDate time.Time `json:"order_date" db:"order_date"`
	UserID    int64     `json:"user_id" db:"user_id"`
}

// CreateOrderRequest is the body of POST /orders.
//
// OrderDate defaults to the insert time; ProductIDs is the optional initial
// product set, duplicates collapse into one association.
type CreateOrderRequest struct {
	UserID     *int64     `json:"user_id" validate:"required,gt=0"`
	OrderDate  *time.Time `json:"order_date"`
	ProductIDs []int64    `json:"product_ids" validate:"omitempty,dive,gt=0"`
}

func (r *CreateOrderRequest) Validate() error {
	return validate.Struct(r)
}

// OrderIDRequest addresses a single order by path parameter.
type OrderIDRequest struct {
	OrderID int64 `param:"orderId" json:"-" validate:"required,gt=0"`
}

func (r *OrderIDRequest) Validate() error {
	return validate.Struct(r)
}

// OrderProductRequest addresses one (order, product) association.
type OrderProductRequest struct {
	OrderID   int64 `param:"orderId" json:"-" validate:"required,gt=0"`
	ProductID int64 `param:"productId" json:"-" validate:"required,gt=0"`
}

func (r *OrderProductRequest) Validate() error {
	return validate.Struct(r)
}

// UserOrdersRequest addresses the orders of one user.
type UserOrdersRequest struct {
	UserID int64 `param:"userId" json:"-" validate:"required,gt=0"`
}

func (r *UserOrdersRequest) Validate() error {
	return validate.Struct(r)
}

// UniqueProductIDs returns ProductIDs without duplicates, in first-seen order.
func (r *CreateOrderRequest) UniqueProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(r.ProductIDs))
	ids := make([]int64, 0, len(r.ProductIDs))
	for _, id := range r.ProductIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
