package service

import (
	"context"
	"errors"
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/errs"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/lib/job"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/observability"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/repository"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
)

// ExercisePublisher fans out logged exercises to background workers.
type ExercisePublisher interface {
	PublishExerciseLogged(ctx context.Context, p job.ExerciseLoggedPayload) error
}

type ExerciseService struct {
	server    *server.Server
	users     repository.UserRepository
	exercises repository.ExerciseRepository
	publisher ExercisePublisher
	now       func() time.Time
}

// NewExerciseService builds the service. publisher may be nil, in which case
// nothing is enqueued.
func NewExerciseService(
	s *server.Server,
	users repository.UserRepository,
	exercises repository.ExerciseRepository,
	publisher ExercisePublisher,
) *ExerciseService {
	return &ExerciseService{
		server:    s,
		users:     users,
		exercises: exercises,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateExercise looks up the owner and stores the exercise. The existence
// check and the insert are not atomic.
func (s *ExerciseService) CreateExercise(ctx context.Context, req *model.CreateExerciseRequest) (*model.ExerciseResponse, error) {
	user, err := s.findUser(ctx, req.UserID, errs.MsgSaveExerciseFailed)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	exercise, err := s.exercises.CreateExercise(ctx, req.Params(s.now()))
	observeStorage(s.server, observability.OpCreateExercise, started)
	if err != nil {
		return nil, storageError(observability.OpCreateExercise, errs.MsgSaveExerciseFailed, err)
	}

	observability.RecordExerciseLogged(exercise.Duration)
	s.publish(ctx, exercise)

	resp := model.NewExerciseResponse(user, exercise)
	return &resp, nil
}

// ListLogs returns the user's exercises matching the request filter.
func (s *ExerciseService) ListLogs(ctx context.Context, req *model.ListLogsRequest) (*model.LogResponse, error) {
	user, err := s.findUser(ctx, req.UserID, errs.MsgListExercisesFailed)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	exercises, err := s.exercises.ListExercises(ctx, req.Filter())
	observeStorage(s.server, observability.OpListExercises, started)
	if err != nil {
		return nil, storageError(observability.OpListExercises, errs.MsgListExercisesFailed, err)
	}

	observability.RecordLogQuery()

	resp := model.NewLogResponse(user, exercises)
	return &resp, nil
}

// findUser maps a missing user to USER_NOT_FOUND and other failures to a
// storage error carrying the calling operation's message.
func (s *ExerciseService) findUser(ctx context.Context, id, failMessage string) (*model.User, error) {
	defer observeStorage(s.server, observability.OpGetUser, time.Now())

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errs.NewUserNotFoundError()
		}
		return nil, storageError(observability.OpGetUser, failMessage, err)
	}
	return user, nil
}

// publish is best effort: the exercise is already stored, so a queue failure
// is logged and not returned.
func (s *ExerciseService) publish(ctx context.Context, exercise *model.Exercise) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.PublishExerciseLogged(ctx, job.ExerciseLoggedPayload{
		UserID:     exercise.UserID,
		ExerciseID: exercise.ID,
		Duration:   exercise.Duration,
		Date:       exercise.Date,
	})
	if err != nil {
		s.server.Logger.Error().
			Err(err).
			Str("exercise_id", exercise.ID).
			Msg("failed to enqueue exercise logged task")
	}
}
