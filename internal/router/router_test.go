package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/config"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/handler"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/repository/repositorytest"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Status  int    `json:"status"`
	Errors  []struct {
		Field string `json:"field"`
		Error string `json:"error"`
	} `json:"errors"`
}

func newTestRouter(t *testing.T, rateLimit float64) (*echo.Echo, *repositorytest.Store) {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			CORSAllowedOrigins: []string{"*"},
			RateLimit:          rateLimit,
		},
		Storage:       config.StorageConfig{Driver: config.DriverPostgres},
		Observability: config.DefaultObservabilityConfig(),
	}
	s := &server.Server{Config: cfg, Logger: &logger}

	store := repositorytest.NewStore()
	services, err := service.NewService(s, store.Repositories())
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, services)), store
}

func do(t *testing.T, e *echo.Echo, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createUser(t *testing.T, e *echo.Echo, username string) map[string]string {
	t.Helper()

	form := url.Values{"username": {username}}
	rec := do(t, e, http.MethodPost, "/api/users", echo.MIMEApplicationForm, form.Encode())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[map[string]string](t, rec)
}

func TestExerciseScenario(t *testing.T) {
	e, _ := newTestRouter(t, 0)

	user := createUser(t, e, "alice")
	require.NotEmpty(t, user["id"])
	assert.Equal(t, "alice", user["username"])

	rec := do(t, e, http.MethodPost, "/api/users/"+user["id"]+"/exercises", echo.MIMEApplicationJSON,
		`{"description":"run","duration":30,"date":"2023-01-15"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t,
		`{"id":"`+user["id"]+`","username":"alice","date":"Sun Jan 15 2023","duration":30,"description":"run"}`,
		rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/users/"+user["id"]+"/logs", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t,
		`{"id":"`+user["id"]+`","username":"alice","count":1,"log":[{"description":"run","duration":30,"date":"Sun Jan 15 2023"}]}`,
		rec.Body.String())

	// Stable across reads.
	again := do(t, e, http.MethodGet, "/api/users/"+user["id"]+"/logs", "", "")
	assert.Equal(t, rec.Body.String(), again.Body.String())
}

func TestCreateExerciseFormBody(t *testing.T) {
	e, _ := newTestRouter(t, 0)
	user := createUser(t, e, "bob")

	form := url.Values{"description": {"swim"}, "duration": {"45"}, "date": {"2024-03-01"}}
	rec := do(t, e, http.MethodPost, "/api/users/"+user["id"]+"/exercises", echo.MIMEApplicationForm, form.Encode())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode[map[string]any](t, rec)
	assert.Equal(t, user["id"], body["id"])
	assert.Equal(t, "Fri Mar 01 2024", body["date"])
	assert.EqualValues(t, 45, body["duration"])
}

func TestCreateExerciseNumericStringDuration(t *testing.T) {
	e, _ := newTestRouter(t, 0)
	user := createUser(t, e, "carol")

	rec := do(t, e, http.MethodPost, "/api/users/"+user["id"]+"/exercises", echo.MIMEApplicationJSON,
		`{"description":"row","duration":"20"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 20, decode[map[string]any](t, rec)["duration"])
}

func TestListUsers(t *testing.T) {
	e, _ := newTestRouter(t, 0)

	rec := do(t, e, http.MethodGet, "/api/users", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	alice := createUser(t, e, "alice")
	bob := createUser(t, e, "bob")

	rec = do(t, e, http.MethodGet, "/api/users", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []map[string]string{alice, bob}, decode[[]map[string]string](t, rec))
}

func TestValidationFailures(t *testing.T) {
	e, _ := newTestRouter(t, 0)
	user := createUser(t, e, "dave")
	exercises := "/api/users/" + user["id"] + "/exercises"
	logs := "/api/users/" + user["id"] + "/logs"

	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		field       string
	}{
		{"blank username", http.MethodPost, "/api/users", echo.MIMEApplicationJSON, `{"username":"   "}`, "username"},
		{"missing username", http.MethodPost, "/api/users", echo.MIMEApplicationJSON, `{}`, "username"},
		{"missing description", http.MethodPost, exercises, echo.MIMEApplicationJSON, `{"duration":5}`, "description"},
		{"duration abc", http.MethodPost, exercises, echo.MIMEApplicationJSON, `{"description":"x","duration":"abc"}`, "duration"},
		{"duration zero", http.MethodPost, exercises, echo.MIMEApplicationJSON, `{"description":"x","duration":0}`, "duration"},
		{"duration negative", http.MethodPost, exercises, echo.MIMEApplicationJSON, `{"description":"x","duration":-5}`, "duration"},
		{"duration above int32", http.MethodPost, exercises, echo.MIMEApplicationJSON, `{"description":"x","duration":3000000000}`, "duration"},
		{"duration fraction", http.MethodPost, exercises, echo.MIMEApplicationJSON, `{"description":"x","duration":2.5}`, "duration"},
		{"invalid date", http.MethodPost, exercises, echo.MIMEApplicationJSON, `{"description":"x","duration":5,"date":"yesterday"}`, "date"},
		{"invalid from", http.MethodGet, logs + "?from=nope", "", "", "from"},
		{"invalid to", http.MethodGet, logs + "?to=2023-13-01", "", "", "to"},
		{"limit zero", http.MethodGet, logs + "?limit=0", "", "", "limit"},
		{"limit text", http.MethodGet, logs + "?limit=x", "", "", "limit"},
		{"from after to", http.MethodGet, logs + "?from=2023-02-01&to=2023-01-01", "", "", "from"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.target, tt.contentType, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			body := decode[errorBody](t, rec)
			assert.Equal(t, "BAD_REQUEST", body.Code)
			assert.Equal(t, http.StatusBadRequest, body.Status)
			assert.NotEmpty(t, body.Message)

			fields := make([]string, 0, len(body.Errors))
			for _, fe := range body.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	e, _ := newTestRouter(t, 0)

	rec := do(t, e, http.MethodPost, "/api/users", echo.MIMEApplicationJSON, `{"username":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Malformed request body", decode[errorBody](t, rec).Message)
}

func TestUnknownUser(t *testing.T) {
	e, _ := newTestRouter(t, 0)

	for _, target := range []string{"/api/users/does-not-exist/logs", "/api/users/64b7f0c2a1b2c3d4e5f60718/logs"} {
		rec := do(t, e, http.MethodGet, target, "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode[errorBody](t, rec)
		assert.Equal(t, "USER_NOT_FOUND", body.Code)
		assert.Equal(t, "User not found", body.Message)
	}

	rec := do(t, e, http.MethodPost, "/api/users/nope/exercises", echo.MIMEApplicationJSON, `{"description":"run","duration":5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode[errorBody](t, rec).Code)
}

func TestListLogsIgnoresBodyUserID(t *testing.T) {
	e, _ := newTestRouter(t, 0)
	alice := createUser(t, e, "alice")
	bob := createUser(t, e, "bob")

	rec := do(t, e, http.MethodPost, "/api/users/"+alice["id"]+"/exercises", echo.MIMEApplicationJSON,
		`{"description":"run","duration":10,"date":"2023-01-15"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, body := range []string{`{"UserID":"` + bob["id"] + `"}`, `{"userId":"` + bob["id"] + `","id":"` + bob["id"] + `"}`} {
		rec := do(t, e, http.MethodGet, "/api/users/"+alice["id"]+"/logs", echo.MIMEApplicationJSON, body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		resp := decode[map[string]any](t, rec)
		assert.Equal(t, alice["id"], resp["id"])
		assert.Equal(t, "alice", resp["username"])
		assert.EqualValues(t, 1, resp["count"])
	}
}

func TestLogFilters(t *testing.T) {
	e, _ := newTestRouter(t, 0)
	user := createUser(t, e, "erin")
	base := "/api/users/" + user["id"]

	for _, date := range []string{"2023-01-01", "2023-01-05", "2023-01-10", "2023-01-15"} {
		rec := do(t, e, http.MethodPost, base+"/exercises", echo.MIMEApplicationJSON,
			`{"description":"d`+date+`","duration":10,"date":"`+date+`"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	type logResponse struct {
		Count int `json:"count"`
		Log   []struct {
			Date string `json:"date"`
		} `json:"log"`
	}

	rec := do(t, e, http.MethodGet, base+"/logs?from=2023-01-05&to=2023-01-10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[logResponse](t, rec)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Log, 2)
	assert.Equal(t, "Thu Jan 05 2023", resp.Log[0].Date)
	assert.Equal(t, "Tue Jan 10 2023", resp.Log[1].Date)

	rec = do(t, e, http.MethodGet, base+"/logs?from=2023-01-02&limit=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[logResponse](t, rec)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Thu Jan 05 2023", resp.Log[0].Date)
}

func TestSystemRoutes(t *testing.T) {
	e, _ := newTestRouter(t, 0)

	rec := do(t, e, http.MethodGet, "/status", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[map[string]any](t, rec)["status"])

	rec = do(t, e, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "exercise_tracker_")

	rec = do(t, e, http.MethodGet, "/api/nowhere", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode[errorBody](t, rec).Message)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDPropagation(t *testing.T) {
	e, _ := newTestRouter(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	e, _ := newTestRouter(t, 1)

	var statuses []int
	for i := 0; i < 4; i++ {
		statuses = append(statuses, do(t, e, http.MethodGet, "/api/users", "", "").Code)
	}

	assert.Contains(t, statuses, http.StatusTooManyRequests)
	assert.Equal(t, http.StatusOK, statuses[0])
}
