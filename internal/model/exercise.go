package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/validation"
)

// Exercise is a single logged activity belonging to a user.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int // minutes
	Date        time.Time
}

// CreateExerciseParams is what the repository needs to persist an Exercise.
type CreateExerciseParams struct {
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// ExerciseFilter scopes a log query to one user with optional inclusive
// date bounds and a result cap. Limit <= 0 means no cap.
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// CreateExerciseRequest is the input of POST /api/users/:id/exercises.
//
// UserID only comes from the path; the json/form "-" tags keep a body field
// from overriding it.
type CreateExerciseRequest struct {
	UserID      string  `param:"id" json:"-" form:"-" validate:"required"`
	Description string  `json:"description" form:"description" validate:"required"`
	Duration    Numeric `json:"duration" form:"duration" validate:"required"`
	Date        string  `json:"date" form:"date"`

	duration int
	date     time.Time
	hasDate  bool
}

func (r *CreateExerciseRequest) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Description = strings.TrimSpace(r.Description)

	if err := validate.Struct(r); err != nil {
		return err
	}

	var fieldErrs validation.CustomValidationErrors

	duration, ok := r.Duration.PositiveInt()
	if !ok {
		fieldErrs = append(fieldErrs, validation.CustomValidationError{
			Field:   "duration",
			Message: "must be a positive integer",
		})
	}
	r.duration = duration

	if strings.TrimSpace(r.Date) != "" {
		date, _, err := ParseDate(r.Date)
		if err != nil {
			fieldErrs = append(fieldErrs, validation.CustomValidationError{
				Field:   "date",
				Message: err.Error(),
			})
		}
		r.date, r.hasDate = date, err == nil
	}

	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

// Params builds the insert parameters; now is used when no date was sent.
// Call only after a successful Validate.
func (r *CreateExerciseRequest) Params(now time.Time) CreateExerciseParams {
	date := now.UTC()
	if r.hasDate {
		date = r.date
	}

	return CreateExerciseParams{
		UserID:      r.UserID,
		Description: r.Description,
		Duration:    r.duration,
		Date:        date,
	}
}

// ListLogsRequest is the input of GET /api/users/:id/logs.
//
// echo also decodes a body on GET, so every field is tagged out of the body:
// UserID is path-only and the filters are query-only.
type ListLogsRequest struct {
	UserID string `param:"id" json:"-" form:"-" validate:"required"`
	From   string `query:"from" json:"-" form:"-"`
	To     string `query:"to" json:"-" form:"-"`
	Limit  string `query:"limit" json:"-" form:"-"`

	from  *time.Time
	to    *time.Time
	limit int
}

func (r *ListLogsRequest) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)

	if err := validate.Struct(r); err != nil {
		return err
	}

	var fieldErrs validation.CustomValidationErrors

	if strings.TrimSpace(r.From) != "" {
		from, err := parseLowerBound(r.From)
		if err != nil {
			fieldErrs = append(fieldErrs, validation.CustomValidationError{Field: "from", Message: err.Error()})
		} else {
			r.from = &from
		}
	}

	if strings.TrimSpace(r.To) != "" {
		to, err := parseUpperBound(r.To)
		if err != nil {
			fieldErrs = append(fieldErrs, validation.CustomValidationError{Field: "to", Message: err.Error()})
		} else {
			r.to = &to
		}
	}

	if r.from != nil && r.to != nil && r.from.After(*r.to) {
		fieldErrs = append(fieldErrs, validation.CustomValidationError{Field: "from", Message: "must not be after to"})
	}

	if strings.TrimSpace(r.Limit) != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(r.Limit))
		if err != nil || limit < 1 {
			fieldErrs = append(fieldErrs, validation.CustomValidationError{Field: "limit", Message: "must be a positive integer"})
		} else {
			r.limit = limit
		}
	}

	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

// Filter returns the repository filter. Call only after a successful Validate.
func (r *ListLogsRequest) Filter() ExerciseFilter {
	return ExerciseFilter{
		UserID: r.UserID,
		From:   r.from,
		To:     r.to,
		Limit:  r.limit,
	}
}

// ExerciseResponse is returned by POST /api/users/:id/exercises. ID is the
// user's id, not the exercise's.
type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

func NewExerciseResponse(user *User, exercise *Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Date:        FormatDate(exercise.Date),
		Duration:    exercise.Duration,
		Description: exercise.Description,
	}
}

// LogEntry is one element of LogResponse.Log.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is returned by GET /api/users/:id/logs.
type LogResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// NewLogResponse shapes exercises into a log. Count always equals len(Log)
// and Log is never null in JSON.
func NewLogResponse(user *User, exercises []Exercise) LogResponse {
	log := make([]LogEntry, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        FormatDate(e.Date),
		})
	}

	return LogResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}
}
