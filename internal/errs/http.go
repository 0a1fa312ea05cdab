package errs

import "strings"

// FieldError is a single field-level validation failure.
//
//	{ "field": "duration", "error": "must be a positive integer" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client to navigate to Action.Value.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional follow-up instruction a client may act on.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type every layer returns when the failure has a
// well-defined HTTP representation.
//
// It is serialized as-is by the global error handler:
//   - Code: machine-friendly code (e.g. "USER_NOT_FOUND").
//   - Message: human-readable message, rendered under the "error" key.
//   - Status: HTTP status code.
//   - Override: whether the message is safe to show to end users verbatim.
//   - Errors: per-field validation errors.
//   - Action: optional client instruction.
//
// cause holds the underlying error (driver error, timeout...). It is logged
// but never serialized.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"error"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors,omitempty"`
	Action *Action      `json:"action,omitempty"`

	cause error
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the hidden cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Cause returns the underlying error, if any.
func (e *HTTPError) Cause() error {
	return e.cause
}

// Is reports true for any *HTTPError target, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
		cause:    e.cause,
	}
}

// WithCause returns a copy of e that wraps cause.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	cp := e.WithMessage(e.Message)
	cp.cause = cause
	return cp
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
