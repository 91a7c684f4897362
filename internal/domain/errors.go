package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")

	// ErrUnresolved marks a slug or date reference that could not be
	// resolved. Actions failing with it are no-ops.
	ErrUnresolved = errors.New("unresolved reference")
	// ErrCreationInProgress: a course creation flow is already running.
	ErrCreationInProgress = errors.New("course creation already in progress")
	// ErrTransport: the model stream ended without a done frame.
	ErrTransport = errors.New("stream transport failure")
)

// FieldError is a problem with one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field problems. It matches ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Add records another field problem and returns e for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
	return e
}

// OrNil returns nil when no problems were recorded.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

func NewValidationError(field, message string) *ValidationError {
	return (&ValidationError{}).Add(field, message)
}
