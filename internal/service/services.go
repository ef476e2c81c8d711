package service

import (
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/lib/job"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/repository"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
)

type Services struct {
	User    *UserService
	Product *ProductService
	Order   *OrderService
	Job     *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// Left nil when jobs are disabled; the user service then skips enqueueing.
	var enqueuer TaskEnqueuer
	if s.Job != nil {
		enqueuer = s.Job.Client
	}

	return &Services{
		User:    NewUserService(repos.User, enqueuer),
		Product: NewProductService(repos.Product),
		Order:   NewOrderService(repos.Order, repos.User, repos.Product),
		Job:     s.Job,
	}, nil
}
