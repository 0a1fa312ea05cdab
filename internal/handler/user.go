package handler

import (
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/service"
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

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c echo.Context, req *model.CreateUserRequest) (*model.User, error) {
	return h.userService.CreateUser(c.Request().Context(), req)
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c echo.Context, req *model.ListUsersRequest) ([]model.User, error) {
	return h.userService.ListUsers(c.Request().Context(), req)
}
