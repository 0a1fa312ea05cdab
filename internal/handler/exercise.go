package handler

import (
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/service"
	"github.com/labstack/echo/v4"
)

type ExerciseHandler struct {
	Handler
	exerciseService *service.ExerciseService
}

func NewExerciseHandler(s *server.Server, exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		Handler:         NewHandler(s),
		exerciseService: exerciseService,
	}
}

// CreateExercise handles POST /api/users/:id/exercises.
func (h *ExerciseHandler) CreateExercise(c echo.Context, req *model.CreateExerciseRequest) (*model.ExerciseResponse, error) {
	return h.exerciseService.CreateExercise(c.Request().Context(), req)
}

// ListLogs handles GET /api/users/:id/logs.
func (h *ExerciseHandler) ListLogs(c echo.Context, req *model.ListLogsRequest) (*model.LogResponse, error) {
	return h.exerciseService.ListLogs(c.Request().Context(), req)
}
