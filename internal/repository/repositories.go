package repository

import (
	"fmt"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/config"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
)

// Repositories groups the gateways handed to the service layer.
type Repositories struct {
	Users     UserRepository
	Exercises ExerciseRepository
}

// NewRepositories builds the repositories for the configured storage driver
// on top of the connections opened by server.New.
func NewRepositories(s *server.Server) (*Repositories, error) {
	switch s.Config.Storage.Driver {
	case config.DriverPostgres:
		if s.DB == nil {
			return nil, fmt.Errorf("postgres storage selected but no database pool is open")
		}
		return &Repositories{
			Users:     NewPostgresUserRepository(s.DB.Pool),
			Exercises: NewPostgresExerciseRepository(s.DB.Pool),
		}, nil

	case config.DriverMongo:
		if s.Mongo == nil {
			return nil, fmt.Errorf("mongo storage selected but no mongo client is open")
		}
		return &Repositories{
			Users:     NewMongoUserRepository(s.Mongo.DB),
			Exercises: NewMongoExerciseRepository(s.Mongo.DB),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", s.Config.Storage.Driver)
	}
}
