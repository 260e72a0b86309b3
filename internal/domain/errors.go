package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph and load failures
var (
	ErrUnknownTaskID        = errors.New("unknown task id")
	ErrUnknownVersion       = errors.New("unknown database version")
	ErrUnresolvedDependency = errors.New("unresolved dependency")
	ErrMalformedDatabase    = errors.New("malformed database")
)

// UnknownTaskIDError is returned when an operation references a task that is not in the graph.
// Collaborators are expected to validate IDs first, so seeing one usually means a bug.
type UnknownTaskIDError struct {
	ID TaskID
}

func (e *UnknownTaskIDError) Error() string {
	return fmt.Sprintf("unknown task id: %s", e.ID)
}

func (e *UnknownTaskIDError) Is(target error) bool {
	return target == ErrUnknownTaskID
}

// UnknownVersionError is returned when a database file declares a version this build cannot decode
type UnknownVersionError struct {
	Version uint8
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown database version: %d", e.Version)
}

func (e *UnknownVersionError) Is(target error) bool {
	return target == ErrUnknownVersion
}

// UnresolvedDependencyError is returned when a stored dependency points at a task missing from the file
type UnresolvedDependencyError struct {
	TaskID       TaskID
	DependencyID TaskID
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("task %s depends on unknown task %s", e.TaskID, e.DependencyID)
}

func (e *UnresolvedDependencyError) Is(target error) bool {
	return target == ErrUnresolvedDependency
}

// MalformedDatabaseError wraps a decode failure of the database structure
type MalformedDatabaseError struct {
	Err error
}

func (e *MalformedDatabaseError) Error() string {
	return fmt.Sprintf("malformed database: %v", e.Err)
}

func (e *MalformedDatabaseError) Unwrap() error {
	return e.Err
}

func (e *MalformedDatabaseError) Is(target error) bool {
	return target == ErrMalformedDatabase
}
