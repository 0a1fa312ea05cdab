package errs

import (
	"net/http"
)

// CodeUserNotFound is returned when a path :id does not resolve to a user.
const CodeUserNotFound = "USER_NOT_FOUND"

// Messages used for 500 responses, one per storage operation.
const (
	MsgSaveUserFailed       = "Failed to save user"
	MsgListUsersFailed      = "Failed to retrieve users"
	MsgSaveExerciseFailed   = "Could not save exercise"
	MsgListExercisesFailed  = "Error fetching exercises"
	MsgUserNotFound         = "User not found"
	MsgValidationFailed     = "Validation failed"
	MsgMalformedRequestBody = "Malformed request body"
)

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 HTTPError, used by the rate limiter.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil; errors carries
// field-level failures.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewUserNotFoundError is the client error for an unknown or malformed user
// id. It is a 400, not a 404: the id is part of the request input.
func NewUserNotFoundError() *HTTPError {
	code := CodeUserNotFound
	return NewBadRequestError(MsgUserNotFound, true, &code, nil, nil)
}

// NewInternalServerError creates a generic 500 whose message is only the
// status text.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewStorageError creates a 500 carrying an operation-specific message.
// cause is kept for logging only.
func NewStorageError(message string, cause error) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  message,
		Status:   http.StatusInternalServerError,
		Override: true,
		cause:    cause,
	}
}

// ValidationError converts a generic validation error into a 400.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError(MsgValidationFailed+": "+err.Error(), false, nil, nil, nil)
}
