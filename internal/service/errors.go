package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasklist-api/internal/store"
)

// Common sentinel errors for the service layer
var (
	// ErrTaskNotFound indicates that the task does not exist. Absence is a
	// deliberate not-found signal, never a generic validation failure.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskListNotFound indicates that the task list does not exist
	ErrTaskListNotFound = errors.New("task list not found")
)

// ServiceError wraps errors from the service layer with operation context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps an error with operation context, passing known
// sentinel errors through unchanged and lifting store-level not-found
// errors to their service-level equivalents.
func newServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, ErrTaskListNotFound):
		return err
	case errors.Is(err, store.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, store.ErrTaskListNotFound):
		return ErrTaskListNotFound
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
