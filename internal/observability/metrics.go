// Package observability owns the Prometheus collectors exposed at /metrics.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "exercise_tracker"

var (
	usersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Number of users created.",
	})
	exercisesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_logged_total",
		Help:      "Number of exercises logged.",
	})
	exerciseMinutes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercise_minutes_total",
		Help:      "Sum of logged exercise durations in minutes.",
	})
	logQueries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_queries_total",
		Help:      "Number of exercise log queries served.",
	})
	storageErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_errors_total",
		Help:      "Storage failures by operation.",
	}, []string{"operation"})
	jobsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_processed_total",
		Help:      "Background tasks processed by task type.",
	}, []string{"task"})
)

func init() {
	prometheus.MustRegister(usersCreated, exercisesLogged, exerciseMinutes, logQueries, storageErrors, jobsProcessed)
}

// Storage operation labels for RecordStorageError.
const (
	OpCreateUser     = "create_user"
	OpGetUser        = "get_user"
	OpListUsers      = "list_users"
	OpCreateExercise = "create_exercise"
	OpListExercises  = "list_exercises"
)

func RecordUserCreated() {
	usersCreated.Inc()
}

// RecordExerciseLogged counts one exercise and adds its minutes.
func RecordExerciseLogged(minutes int) {
	exercisesLogged.Inc()
	if minutes > 0 {
		exerciseMinutes.Add(float64(minutes))
	}
}

func RecordLogQuery() {
	logQueries.Inc()
}

func RecordStorageError(operation string) {
	storageErrors.WithLabelValues(operation).Inc()
}

func RecordJobProcessed(task string) {
	jobsProcessed.WithLabelValues(task).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
