package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskboard-api/internal/store"
)

// Common sentinel errors for the application services.
var (
	// ErrProjectNotFound indicates that the project does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound indicates that no task matches the requested
	// (taskID, projectID) pair.
	ErrTaskNotFound = errors.New("task not found")
)

// ServiceError wraps errors from the services with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_project")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps an error with operation context, returning known
// sentinel errors directly without wrapping. Store-level "not found"
// sentinels are mapped to their service-level counterparts so that callers
// only ever branch on this package's taxonomy.
func newServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrProjectNotFound) || errors.Is(err, ErrTaskNotFound) {
		return err
	}

	if errors.Is(err, store.ErrProjectNotFound) {
		return ErrProjectNotFound
	}
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
