package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/lesson-plan-api/internal/domain"
)

// Sentinel errors returned by the services. The API layer maps them to
// HTTP status codes with errors.Is.
var (
	// ErrInvalidTemplate indicates that the prompt template could not be loaded.
	ErrInvalidTemplate = errors.New("invalid prompt template")
)

// ServiceError wraps errors from a service with the failing operation.
type ServiceError struct {
	// Service is the name of the service that failed (e.g. "lesson plan")
	Service string
	// Operation is the operation that failed (e.g. "generate_plan", "export")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Client input errors are returned directly without wrapping.
func NewServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrEmptyLessonPlan) {
		return domain.ErrEmptyLessonPlan
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
