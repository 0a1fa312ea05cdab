package service

import (
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/lib/job"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/repository"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
)

type Services struct {
	User     *UserService
	Exercise *ExerciseService
	Job      *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A nil *JobService must not reach the interface as a typed nil.
	var publisher ExercisePublisher
	if s.Job != nil {
		publisher = s.Job
	}

	return &Services{
		User:     NewUserService(s, repos.Users),
		Exercise: NewExerciseService(s, repos.Users, repos.Exercises, publisher),
		Job:      s.Job,
	}, nil
}
