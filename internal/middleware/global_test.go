package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/config"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/errs"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback int
		want     int
	}{
		{"no error", nil, http.StatusOK, http.StatusOK},
		{"http error", errs.NewUserNotFoundError(), http.StatusOK, http.StatusBadRequest},
		{"echo error", echo.NewHTTPError(http.StatusUnsupportedMediaType), http.StatusOK, http.StatusUnsupportedMediaType},
		{"plain error", errors.New("boom"), http.StatusOK, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err, tt.fallback))
		})
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	logger := zerolog.Nop()
	global := NewGlobalMiddlewares(&server.Server{Config: &config.Config{}, Logger: &logger})

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "storage error hides cause",
			err:     errs.NewStorageError(errs.MsgSaveUserFailed, errors.New("dial tcp: connection refused")),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: errs.MsgSaveUserFailed,
		},
		{
			name:    "route not found",
			err:     echo.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Route not found",
		},
		{
			name:    "unsupported media type",
			err:     echo.ErrUnsupportedMediaType,
			status:  http.StatusUnsupportedMediaType,
			code:    "UNSUPPORTED_MEDIA_TYPE",
			message: "Unsupported Media Type",
		},
		{
			name:    "unclassified",
			err:     errors.New("something broke"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			require.Equal(t, tt.status, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, tt.message, body["error"])
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
