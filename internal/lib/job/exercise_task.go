package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskExerciseLogged fires after an exercise has been persisted.
	TaskExerciseLogged = "exercise:logged"
)

// ExerciseLoggedPayload is the JSON body of a TaskExerciseLogged task.
type ExerciseLoggedPayload struct {
	UserID     string    `json:"user_id"`
	ExerciseID string    `json:"exercise_id"`
	Duration   int       `json:"duration"`
	Date       time.Time `json:"date"`
}

// NewExerciseLoggedTask builds the task on the default queue with three
// retries and a 30s handler timeout.
func NewExerciseLoggedTask(p ExerciseLoggedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskExerciseLogged,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
