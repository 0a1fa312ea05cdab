package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordExerciseLogged(t *testing.T) {
	beforeCount := testutil.ToFloat64(exercisesLogged)
	beforeMinutes := testutil.ToFloat64(exerciseMinutes)

	RecordExerciseLogged(30)
	RecordExerciseLogged(0)

	assert.Equal(t, beforeCount+2, testutil.ToFloat64(exercisesLogged))
	assert.Equal(t, beforeMinutes+30, testutil.ToFloat64(exerciseMinutes))
}

func TestRecordStorageErrorByOperation(t *testing.T) {
	before := testutil.ToFloat64(storageErrors.WithLabelValues(OpListUsers))
	RecordStorageError(OpListUsers)
	assert.Equal(t, before+1, testutil.ToFloat64(storageErrors.WithLabelValues(OpListUsers)))
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordUserCreated()
	RecordJobProcessed("exercise:logged")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "exercise_tracker_users_created_total")
	assert.Contains(t, string(body), `exercise_tracker_jobs_processed_total{task="exercise:logged"}`)
}
