package handler

import (
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	User     *UserHandler
	Exercise *ExerciseHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		User:     NewUserHandler(s, services.User),
		Exercise: NewExerciseHandler(s, services.Exercise),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
