package handler

import (
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	productService *service.ProductService
}

func NewProductHandler(s *server.Server, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:        NewHandler(s),
		productService: productService,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context, _ *model.NoPayload) ([]model.Product, error) {
	return h.productService.ListProducts(c.Request().Context())
}

func (h *ProductHandler) GetProduct(c echo.Context, payload *model.ProductIDRequest) (*model.Product, error) {
	return h.productService.GetProduct(c.Request().Context(), payload.ID)
}

func (h *ProductHandler) CreateProduct(c echo.Context, payload *model.CreateProductRequest) (*model.Product, error) {
	return h.productService.CreateProduct(c.Request().Context(), payload)
}

func (h *ProductHandler) UpdateProduct(c echo.Context, payload *model.UpdateProductRequest) (*model.Product, error) {
	return h.productService.UpdateProduct(c.Request().Context(), payload)
}

func (h *ProductHandler) DeleteProduct(c echo.Context, payload *model.ProductIDRequest) (*model.MessageResponse, error) {
	return h.productService.DeleteProduct(c.Request().Context(), payload.ID)
}
