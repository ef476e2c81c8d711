package repository

import (
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	User    *UserRepository
	Product *ProductRepository
	Order   *OrderRepository
}

// NewRepositories constructs every repository over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:    NewUserRepository(s),
		Product: NewProductRepository(s),
		Order:   NewOrderRepository(s),
	}
}
