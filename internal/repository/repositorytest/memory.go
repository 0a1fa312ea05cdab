// Package repositorytest provides an in-memory storage gateway for tests of
// the service and handler layers.
package repositorytest

import (
	"context"
	"sort"
	"sync"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/repository"
	"github.com/google/uuid"
)

// Store implements repository.UserRepository and
// repository.ExerciseRepository. Setting one of the Err fields makes the
// matching operation fail with it.
type Store struct {
	mu        sync.Mutex
	users     []model.User
	exercises []model.Exercise

	CreateUserErr     error
	GetUserErr        error
	ListUsersErr      error
	CreateExerciseErr error
	ListExercisesErr  error

	// LastFilter is the filter of the most recent ListExercises call.
	LastFilter model.ExerciseFilter
}

var (
	_ repository.UserRepository     = (*Store)(nil)
	_ repository.ExerciseRepository = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{}
}

// Repositories wraps the store for NewService.
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{Users: s, Exercises: s}
}

func (s *Store) CreateUser(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateUserErr != nil {
		return nil, s.CreateUserErr
	}

	u := model.User{ID: uuid.NewString(), Username: username}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GetUserErr != nil {
		return nil, s.GetUserErr
	}

	for _, u := range s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ListUsersErr != nil {
		return nil, s.ListUsersErr
	}
	if len(s.users) == 0 {
		return nil, nil
	}
	return append([]model.User(nil), s.users...), nil
}

func (s *Store) CreateExercise(_ context.Context, params model.CreateExerciseParams) (*model.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateExerciseErr != nil {
		return nil, s.CreateExerciseErr
	}

	e := model.Exercise{
		ID:          uuid.NewString(),
		UserID:      params.UserID,
		Description: params.Description,
		Duration:    params.Duration,
		Date:        params.Date.UTC(),
	}
	s.exercises = append(s.exercises, e)
	return &e, nil
}

func (s *Store) ListExercises(_ context.Context, filter model.ExerciseFilter) ([]model.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.LastFilter = filter
	if s.ListExercisesErr != nil {
		return nil, s.ListExercisesErr
	}

	var out []model.Exercise
	for _, e := range s.exercises {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
