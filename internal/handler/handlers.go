package handler

import (
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	Pages   *PagesHandler
	User    *UserHandler
	Product *ProductHandler
	Order   *OrderHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Pages:   NewPagesHandler(s),
		User:    NewUserHandler(s, services.User),
		Product: NewProductHandler(s, services.Product),
		Order:   NewOrderHandler(s, services.Order),
	}
}
