package export

import (
	"errors"
	"fmt"
)

// ErrPathCollision reports a handout that would land on the presentation file.
var ErrPathCollision = errors.New("output path collision")

// ServiceError carries the exporting service and the operation that failed.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error formats as [Service.Operation] error message
func (e *ServiceError) Error() string {
	return fmt.Sprintf("[%s.%s] %v", e.Service, e.Operation, e.Err)
}

// Unwrap supports errors.Is/errors.As chains.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// WrapError attaches service context to err. It returns nil for a nil err.
func WrapError(service, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Operation: operation, Err: err}
}

// wrapOperationError wraps err as "failed to {operation}: err".
func wrapOperationError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}
