package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the four failure classes the API distinguishes.
// Handlers map these to HTTP status codes via errors.Is; the service and
// decoder layers never see a status code.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrUpstream      = errors.New("upstream error")
	ErrUpstreamEmpty = errors.New("upstream empty result")
)

type AppError struct {
	Err     error  // sentinel classifying the error
	Message string // Human-readable message, safe to show to the client
	Field   string // Optional: field causing a validation error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Upstream returns an AppError for a dependency fault: the external decoding
// service answered with a non-success status. HTTP handlers map this to 502.
// The caller supplies the message because only it knows which upstream failed.
func Upstream(message string) *AppError {
	return &AppError{
		Err:     ErrUpstream,
		Message: message,
	}
}

// UpstreamEmpty returns an AppError for a response that was technically
// successful but carried no usable result row. Also mapped to 502 — from the
// client's point of view the dependency failed to answer the question.
func UpstreamEmpty(message string) *AppError {
	return &AppError{
		Err:     ErrUpstreamEmpty,
		Message: message,
	}
}
