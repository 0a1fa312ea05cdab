package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name string `json:"name" validate:"required"`
	Age  int    `json:"age" validate:"min=1"`

	custom error
}

func (p *samplePayload) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return err
	}
	return p.custom
}

func newContext(t *testing.T, body, contentType string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, `{"name":"alice","age":3}`, echo.MIMEApplicationJSON)

	payload := &samplePayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "alice", payload.Name)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(t, `{"name":`, echo.MIMEApplicationJSON)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, BindAndValidate(c, &samplePayload{}), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.MsgMalformedRequestBody, httpErr.Message)
	assert.NotNil(t, httpErr.Cause())
}

func TestBindAndValidateTagErrors(t *testing.T) {
	c := newContext(t, `{"age":0}`, echo.MIMEApplicationJSON)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, BindAndValidate(c, &samplePayload{}), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "age", Error: "must be at least 1"},
	}, httpErr.Errors)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(t, `{"name":"bob","age":2}`, echo.MIMEApplicationJSON)

	payload := &samplePayload{custom: CustomValidationErrors{{Field: "date", Message: "invalid"}}}

	var httpErr *errs.HTTPError
	require.ErrorAs(t, BindAndValidate(c, payload), &httpErr)
	assert.Equal(t, []errs.FieldError{{Field: "date", Error: "invalid"}}, httpErr.Errors)
}

func TestBindAndValidateUnknownValidateError(t *testing.T) {
	c := newContext(t, `{"name":"bob","age":2}`, echo.MIMEApplicationJSON)

	payload := &samplePayload{custom: errors.New("nope")}

	var httpErr *errs.HTTPError
	require.ErrorAs(t, BindAndValidate(c, payload), &httpErr)
	assert.Equal(t, []errs.FieldError{{Field: "request", Error: "nope"}}, httpErr.Errors)
}

func TestBindAndValidateUnsupportedMediaType(t *testing.T) {
	c := newContext(t, `name=bob`, "text/plain")

	var echoErr *echo.HTTPError
	require.ErrorAs(t, BindAndValidate(c, &samplePayload{}), &echoErr)
	assert.Equal(t, http.StatusUnsupportedMediaType, echoErr.Code)
}
