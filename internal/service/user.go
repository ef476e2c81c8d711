package service

import (
	"context"
	"fmt"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/lib/job"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/rs/zerolog"
)

type UserService struct {
	repo UserRepository
	jobs TaskEnqueuer
}

// NewUserService builds a UserService. jobs may be nil.
func NewUserService(repo UserRepository, jobs TaskEnqueuer) *UserService {
	return &UserService{
		repo: repo,
		jobs: jobs,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// CreateUser stores the user and, when jobs are enabled, queues the welcome
// email. A failed enqueue is logged and does not fail the request.
func (s *UserService) CreateUser(ctx context.Context, payload *model.CreateUserRequest) (*model.User, error) {
	user, err := s.repo.CreateUser(ctx, payload)
	if err != nil {
		return nil, err
	}

	if s.jobs != nil {
		s.enqueueWelcomeEmail(ctx, user)
	}

	return user, nil
}

func (s *UserService) enqueueWelcomeEmail(ctx context.Context, user *model.User) {
	logger := zerolog.Ctx(ctx)

	task, err := job.NewWelcomeEmailTask(user.Email, user.Name)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to build welcome email task")
		return
	}

	info, err := s.jobs.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
		return
	}

	logger.Debug().
		Str("task_id", info.ID).
		Int64("user_id", user.ID).
		Msg("welcome email enqueued")
}

// UpdateUser merges the fields present in payload into the stored user.
func (s *UserService) UpdateUser(ctx context.Context, payload *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, payload.ID)
	if err != nil {
		return nil, err
	}

	payload.ApplyTo(user)

	return s.repo.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return nil, err
	}

	return &model.MessageResponse{
		Message: fmt.Sprintf("User %d deleted successfully", id),
	}, nil
}
