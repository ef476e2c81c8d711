package service

import (
	"context"
	"fmt"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/errs"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
)

const (
	ErrCodeOrderProductExists   = "ORDER_PRODUCT_ALREADY_EXISTS"
	ErrCodeOrderProductNotFound = "ORDER_PRODUCT_NOT_FOUND"
)

type OrderService struct {
	orders   OrderRepository
	users    UserRepository
	products ProductRepository
}

func NewOrderService(orders OrderRepository, users UserRepository, products ProductRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		users:    users,
		products: products,
	}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListOrders(ctx)
}

// CreateOrder relies on the foreign keys to reject an unknown user or
// product; the resulting violation surfaces as a 400.
func (s *OrderService) CreateOrder(ctx context.Context, payload *model.CreateOrderRequest) (*model.Order, error) {
	return s.orders.CreateOrder(ctx, *payload.UserID, payload.OrderDate, payload.UniqueProductIDs())
}

// lookup resolves both sides of an association, failing with the
// repository's not found error for whichever is missing first.
func (s *OrderService) lookup(ctx context.Context, orderID, productID int64) error {
	if _, err := s.orders.GetOrderByID(ctx, orderID); err != nil {
		return err
	}
	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		return err
	}
	return nil
}

func (s *OrderService) AddProduct(ctx context.Context, payload *model.OrderProductRequest) (*model.MessageResponse, error) {
	if err := s.lookup(ctx, payload.OrderID, payload.ProductID); err != nil {
		return nil, err
	}

	added, err := s.orders.AddProduct(ctx, payload.OrderID, payload.ProductID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, errs.NewBadRequestError("Product already exists in this order", true, errs.Ptr(ErrCodeOrderProductExists), nil)
	}

	return &model.MessageResponse{
		Message: fmt.Sprintf("Product %d added to order %d", payload.ProductID, payload.OrderID),
	}, nil
}

func (s *OrderService) RemoveProduct(ctx context.Context, payload *model.OrderProductRequest) (*model.MessageResponse, error) {
	if err := s.lookup(ctx, payload.OrderID, payload.ProductID); err != nil {
		return nil, err
	}

	removed, err := s.orders.RemoveProduct(ctx, payload.OrderID, payload.ProductID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, errs.NewNotFoundError("Product not found in this order", true, errs.Ptr(ErrCodeOrderProductNotFound))
	}

	return &model.MessageResponse{
		Message: fmt.Sprintf("Product %d removed from order %d", payload.ProductID, payload.OrderID),
	}, nil
}

// ListUserOrders returns an empty slice for a user without orders and a
// not found error for an unknown user.
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.orders.ListOrdersByUser(ctx, userID)
}

func (s *OrderService) ListOrderProducts(ctx context.Context, orderID int64) ([]model.Product, error) {
	if _, err := s.orders.GetOrderByID(ctx, orderID); err != nil {
		return nil, err
	}

	return s.orders.ListOrderProducts(ctx, orderID)
}
