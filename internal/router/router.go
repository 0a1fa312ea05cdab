// Package router builds the echo instance: global middleware in a fixed
// order, the /api routes and the system routes.
package router

import (
	"net/http"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/handler"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/middleware"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the configured echo instance. Middleware order matters:
// the request id comes first so rejected requests carry it too, and the New
// Relic transaction must exist before tracing attributes and the context
// logger are built.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerUserRoutes(api, h)

	return router
}

func registerUserRoutes(api *echo.Group, h *handler.Handlers) {
	users := api.Group("/users")

	users.POST("", handler.Handle(h.User.Handler, h.User.CreateUser, http.StatusOK, &model.CreateUserRequest{}))
	users.GET("", handler.Handle(h.User.Handler, h.User.ListUsers, http.StatusOK, &model.ListUsersRequest{}))

	users.POST("/:id/exercises", handler.Handle(h.Exercise.Handler, h.Exercise.CreateExercise, http.StatusOK, &model.CreateExerciseRequest{}))
	users.GET("/:id/logs", handler.Handle(h.Exercise.Handler, h.Exercise.ListLogs, http.StatusOK, &model.ListLogsRequest{}))
}
