package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
)

// ValidationReason is a stable machine-readable code for a rejected field.
type ValidationReason string

const (
	ReasonInvalidDate      ValidationReason = "INVALID_DATE"
	ReasonInvalidMealType  ValidationReason = "INVALID_MEAL_TYPE"
	ReasonEmptyDescription ValidationReason = "EMPTY_DESCRIPTION"
	ReasonInvalidGrams     ValidationReason = "INVALID_GRAMS"
	ReasonInvalidID        ValidationReason = "INVALID_ID"
	ReasonRequired         ValidationReason = "REQUIRED"
	ReasonInvalidEmail     ValidationReason = "INVALID_EMAIL"
	ReasonWeakPassword     ValidationReason = "WEAK_PASSWORD"
)

func (r ValidationReason) String() string { return string(r) }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Reason  ValidationReason
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Message returns the human-readable message of the first field error.
func (e *ValidationError) Message() string {
	if len(e.Errors) == 0 {
		return ErrValidation.Error()
	}
	return e.Errors[0].Message
}

// Has reports whether any field error carries the given reason.
func (e *ValidationError) Has(reason ValidationReason) bool {
	for _, fe := range e.Errors {
		if fe.Reason == reason {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field string, reason ValidationReason, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Reason: reason, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
