package handler

import (
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	Handler
	orderService *service.OrderService
}

func NewOrderHandler(s *server.Server, orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler:      NewHandler(s),
		orderService: orderService,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context, _ *model.NoPayload) ([]model.Order, error) {
	return h.orderService.ListOrders(c.Request().Context())
}

func (h *OrderHandler) CreateOrder(c echo.Context, payload *model.CreateOrderRequest) (*model.Order, error) {
	return h.orderService.CreateOrder(c.Request().Context(), payload)
}

func (h *OrderHandler) AddProduct(c echo.Context, payload *model.OrderProductRequest) (*model.MessageResponse, error) {
	return h.orderService.AddProduct(c.Request().Context(), payload)
}

func (h *OrderHandler) RemoveProduct(c echo.Context, payload *model.OrderProductRequest) (*model.MessageResponse, error) {
	return h.orderService.RemoveProduct(c.Request().Context(), payload)
}

func (h *OrderHandler) ListUserOrders(c echo.Context, payload *model.UserOrdersRequest) ([]model.Order, error) {
	return h.orderService.ListUserOrders(c.Request().Context(), payload.UserID)
}

func (h *OrderHandler) ListOrderProducts(c echo.Context, payload *model.OrderIDRequest) ([]model.Product, error) {
	return h.orderService.ListOrderProducts(c.Request().Context(), payload.OrderID)
}
