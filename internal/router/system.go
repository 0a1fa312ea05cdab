package router

import (
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/handler"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/observability"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the routes outside /api: landing page,
// health, metrics, docs and static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.OpenAPI.ServeIndex)
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(observability.Handler()))

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
