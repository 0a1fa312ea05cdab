package model

import (
	"strings"
)

// User is a registered user. Usernames are not unique.
type User struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// CreateUserRequest is the body of POST /api/users (form or JSON).
type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
}

// Validate trims the username; a blank name fails "required".
func (r *CreateUserRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	return validate.Struct(r)
}

// ListUsersRequest is the empty input of GET /api/users.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error {
	return nil
}
