package service

import (
	"context"
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/errs"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/observability"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/repository"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
)

type UserService struct {
	server *server.Server
	users  repository.UserRepository
}

func NewUserService(s *server.Server, users repository.UserRepository) *UserService {
	return &UserService{
		server: s,
		users:  users,
	}
}

// CreateUser stores a user with an already validated username.
func (s *UserService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	defer observeStorage(s.server, observability.OpCreateUser, time.Now())

	user, err := s.users.CreateUser(ctx, req.Username)
	if err != nil {
		return nil, storageError(observability.OpCreateUser, errs.MsgSaveUserFailed, err)
	}

	observability.RecordUserCreated()
	s.server.Logger.Debug().Str("user_id", user.ID).Msg("user created")

	return user, nil
}

// ListUsers returns every user. The result is never nil.
func (s *UserService) ListUsers(ctx context.Context, _ *model.ListUsersRequest) ([]model.User, error) {
	defer observeStorage(s.server, observability.OpListUsers, time.Now())

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, storageError(observability.OpListUsers, errs.MsgListUsersFailed, err)
	}

	if users == nil {
		users = []model.User{}
	}
	return users, nil
}
