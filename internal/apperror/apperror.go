// Package apperror defines the error taxonomy shared by the CLI components.
// Callers match categories with errors.Is against the sentinels below.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrFileNotFound      = errors.New("file not found")
	ErrPasswordRequired  = errors.New("password required")
	ErrServer            = errors.New("server error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrCancelled         = errors.New("cancelled by user")
	ErrInvalidToken      = errors.New("invalid token")
)

// AppError carries a user-facing message alongside its category.
type AppError struct {
	Err     error  // category sentinel
	Message string // human-readable message
	Status  int    // HTTP status, when the error came from the server
	Field   string // optional: flag or field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation reports a local input problem. It never reaches the network.
func Validation(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func FileNotFound(path string) *AppError {
	return &AppError{
		Err:     ErrFileNotFound,
		Message: fmt.Sprintf("file not found: %s", path),
		Field:   "file",
	}
}

// PasswordRequired is returned when the server refuses a protected snippet.
func PasswordRequired(status int) *AppError {
	return &AppError{
		Err:     ErrPasswordRequired,
		Message: "this snippet requires a password (use --password <pass>)",
		Status:  status,
	}
}

func Server(status int, message string) *AppError {
	return &AppError{
		Err:     ErrServer,
		Message: message,
		Status:  status,
	}
}

// Malformed is returned for error statuses whose body carries no usable message.
func Malformed(status int) *AppError {
	return &AppError{
		Err:     ErrMalformedResponse,
		Message: fmt.Sprintf("unrecognized error (status %d)", status),
		Status:  status,
	}
}

func Cancelled(message string) *AppError {
	return &AppError{
		Err:     ErrCancelled,
		Message: message,
	}
}

func InvalidToken() *AppError {
	return &AppError{
		Err:     ErrInvalidToken,
		Message: `invalid token: a private token must start with "priv_"`,
		Field:   "token",
	}
}

// StatusOf returns the HTTP status attached to err, or 0.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}
