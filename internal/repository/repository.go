// Package repository is the storage gateway.
//
// It defines what the service layer needs from storage (UserRepository,
// ExerciseRepository) and provides a PostgreSQL implementation with
// explicit SQL and a MongoDB implementation with bson filters. The backend
// is chosen by storage.driver at startup.
package repository

import (
	"context"
	"errors"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
)

// ErrUserNotFound is returned when an id does not resolve to a user,
// including ids the backend cannot parse.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists and looks up users.
type UserRepository interface {
	CreateUser(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// ExerciseRepository persists and queries exercises.
type ExerciseRepository interface {
	CreateExercise(ctx context.Context, params model.CreateExerciseParams) (*model.Exercise, error)

	// ListExercises returns the user's exercises within the filter's
	// inclusive date bounds, ordered by date ascending, capped at Limit.
	ListExercises(ctx context.Context, filter model.ExerciseFilter) ([]model.Exercise, error)
}
