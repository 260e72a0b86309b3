package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateDependency = errors.New("dependency already exists")
	ErrSelfDependency      = errors.New("task cannot depend on itself")
	ErrNothingToUndo       = errors.New("nothing to undo")
	ErrNothingToRedo       = errors.New("nothing to redo")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a task ID that is not in the graph
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DependencyError represents a dependency that cannot be added
type DependencyError struct {
	FromID string
	ToID   string
	Err    error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("cannot make %s depend on %s: %v", e.FromID, e.ToID, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
