// Package kberrors defines the sentinel and typed errors shared by the
// knowledge-base services and the API layer.
package kberrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrCorpusNotLoaded is returned when an operation needs a corpus and
	// none has been loaded yet
	ErrCorpusNotLoaded = errors.New("corpus not loaded")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrArrangementNotFound is returned when an arrangement is not found
	ErrArrangementNotFound = errors.New("arrangement not found")

	// ErrChangeNotFound is returned when a referenced change id is unknown
	ErrChangeNotFound = errors.New("change not found")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ArrangementNotFoundError represents an arrangement lookup miss with context
type ArrangementNotFoundError struct {
	Name string
}

func (e *ArrangementNotFoundError) Error() string {
	return fmt.Sprintf("arrangement named '%s' not found", e.Name)
}

func (e *ArrangementNotFoundError) Is(target error) bool {
	return target == ErrArrangementNotFound
}

// NewArrangementNotFoundError creates a new ArrangementNotFoundError
func NewArrangementNotFoundError(name string) *ArrangementNotFoundError {
	return &ArrangementNotFoundError{Name: name}
}

// ChangeNotFoundError represents an unknown change id with context
type ChangeNotFoundError struct {
	ChangeID string
}

func (e *ChangeNotFoundError) Error() string {
	return fmt.Sprintf("change with ID '%s' not found", e.ChangeID)
}

func (e *ChangeNotFoundError) Is(target error) bool {
	return target == ErrChangeNotFound
}

// NewChangeNotFoundError creates a new ChangeNotFoundError
func NewChangeNotFoundError(changeID string) *ChangeNotFoundError {
	return &ChangeNotFoundError{ChangeID: changeID}
}
