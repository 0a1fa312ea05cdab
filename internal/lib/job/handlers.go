package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/observability"
	"github.com/hibiken/asynq"
)

// handleExerciseLoggedTask records a processed exercise:logged event in the
// log, in Prometheus and, when the agent runs, as a New Relic custom event.
func (j *JobService) handleExerciseLoggedTask(ctx context.Context, t *asynq.Task) error {
	var p ExerciseLoggedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A payload that never decodes will not decode on retry either.
		return fmt.Errorf("failed to unmarshal exercise logged payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskExerciseLogged).
		Str("user_id", p.UserID).
		Str("exercise_id", p.ExerciseID).
		Int("duration", p.Duration).
		Time("date", p.Date).
		Msg("processing exercise logged task")

	observability.RecordJobProcessed(TaskExerciseLogged)

	if j.nrApp != nil {
		j.nrApp.RecordCustomEvent("ExerciseLogged", map[string]interface{}{
			"user_id":     p.UserID,
			"exercise_id": p.ExerciseID,
			"duration":    p.Duration,
			"date":        p.Date.Format("2006-01-02"),
		})
	}

	return nil
}
