package router

import (
	"net/http"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/handler"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")

	users.GET("", handler.Handle(h.User.Handler, h.User.ListUsers, http.StatusOK, &model.NoPayload{}))
	users.POST("", handler.Handle(h.User.Handler, h.User.CreateUser, http.StatusCreated, &model.CreateUserRequest{}))
	users.GET("/:id", handler.Handle(h.User.Handler, h.User.GetUser, http.StatusOK, &model.UserIDRequest{}))
	users.PUT("/:id", handler.Handle(h.User.Handler, h.User.UpdateUser, http.StatusOK, &model.UpdateUserRequest{}))
	users.DELETE("/:id", handler.Handle(h.User.Handler, h.User.DeleteUser, http.StatusOK, &model.UserIDRequest{}))
}

func registerProductRoutes(r *echo.Echo, h *handler.Handlers) {
	products := r.Group("/products")

	products.GET("", handler.Handle(h.Product.Handler, h.Product.ListProducts, http.StatusOK, &model.NoPayload{}))
	products.POST("", handler.Handle(h.Product.Handler, h.Product.CreateProduct, http.StatusCreated, &model.CreateProductRequest{}))
	products.GET("/:id", handler.Handle(h.Product.Handler, h.Product.GetProduct, http.StatusOK, &model.ProductIDRequest{}))
	products.PUT("/:id", handler.Handle(h.Product.Handler, h.Product.UpdateProduct, http.StatusOK, &model.UpdateProductRequest{}))
	products.DELETE("/:id", handler.Handle(h.Product.Handler, h.Product.DeleteProduct, http.StatusOK, &model.ProductIDRequest{}))
}

func registerOrderRoutes(r *echo.Echo, h *handler.Handlers) {
	orders := r.Group("/orders")

	orders.GET("", handler.Handle(h.Order.Handler, h.Order.ListOrders, http.StatusOK, &model.NoPayload{}))
	orders.POST("", handler.Handle(h.Order.Handler, h.Order.CreateOrder, http.StatusCreated, &model.CreateOrderRequest{}))
	orders.PUT("/:orderId/add_product/:productId", handler.Handle(h.Order.Handler, h.Order.AddProduct, http.StatusOK, &model.OrderProductRequest{}))
	orders.DELETE("/:orderId/remove_product/:productId", handler.Handle(h.Order.Handler, h.Order.RemoveProduct, http.StatusOK, &model.OrderProductRequest{}))
	orders.GET("/user/:userId", handler.Handle(h.Order.Handler, h.Order.ListUserOrders, http.StatusOK, &model.UserOrdersRequest{}))
	orders.GET("/:orderId/products", handler.Handle(h.Order.Handler, h.Order.ListOrderProducts, http.StatusOK, &model.OrderIDRequest{}))
}
