package handler

import (
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.NoPayload) ([]model.User, error) {
	return h.userService.ListUsers(c.Request().Context())
}

func (h *UserHandler) GetUser(c echo.Context, payload *model.UserIDRequest) (*model.User, error) {
	return h.userService.GetUser(c.Request().Context(), payload.ID)
}

func (h *UserHandler) CreateUser(c echo.Context, payload *model.CreateUserRequest) (*model.User, error) {
	return h.userService.CreateUser(c.Request().Context(), payload)
}

func (h *UserHandler) UpdateUser(c echo.Context, payload *model.UpdateUserRequest) (*model.User, error) {
	return h.userService.UpdateUser(c.Request().Context(), payload)
}

func (h *UserHandler) DeleteUser(c echo.Context, payload *model.UserIDRequest) (*model.MessageResponse, error) {
	return h.userService.DeleteUser(c.Request().Context(), payload.ID)
}
