package repositories

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repositories. Callers match them with errors.Is
// and map them to HTTP statuses at the edge.
var (
	ErrNotFound      = errors.New("translation key not found")
	ErrAlreadyExists = errors.New("translation key already exists")
)

// DatabaseError wraps a driver failure so the handlers can tell infrastructure
// problems apart from domain outcomes.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("database error: %v", e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
