package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTitleRequired      = errors.New("title is required")
	ErrMissingFields      = errors.New("missing required fields")
)
