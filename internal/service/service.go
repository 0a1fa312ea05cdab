// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// requests from the handler, performs the operation against the repository
// interfaces and shapes the response. Storage failures leave this package as
// *errs.HTTPError values so the handler layer never sees driver errors.
package service

import (
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/errs"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/observability"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/sqlerr"
)

// storageError classifies a repository failure. Constraint violations become
// client errors via sqlerr; everything else is a 500 with the operation's
// message and the original error kept as the cause.
func storageError(operation, message string, err error) error {
	if sqlerr.IsClientError(err) {
		return sqlerr.HandleError(err)
	}
	observability.RecordStorageError(operation)
	return errs.NewStorageError(message, err)
}

// observeStorage logs storage calls slower than the configured threshold.
func observeStorage(s *server.Server, operation string, started time.Time) {
	if s.Config == nil || s.Config.Observability == nil {
		return
	}
	threshold := s.Config.Observability.Logging.SlowQueryThreshold
	if threshold <= 0 {
		return
	}

	if elapsed := time.Since(started); elapsed > threshold {
		s.Logger.Warn().
			Str("operation", operation).
			Dur("duration", elapsed).
			Dur("threshold", threshold).
			Msg("slow storage call")
	}
}
