package flashcard

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no card review state exists for the requested key.
	ErrNotFound = errors.New("card review not found")
	// ErrInvalidInput indicates an unrecognized content type, outcome, or
	// identifier supplied by the caller.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPersistence indicates a storage read or write failed. The repository
	// never retries; retry policy belongs to the caller.
	ErrPersistence = errors.New("persistence failure")
)

// PersistenceError wraps a storage error with the failing operation so callers
// can classify it with errors.Is(err, ErrPersistence) without losing the cause.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s > %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is matches ErrPersistence so the sentinel works across the wrap.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func persistenceErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
