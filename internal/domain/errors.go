package domain

import "fmt"

// ValidationError indicates a required field was missing or invalid on a
// draft. It is reported before any state change occurs.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// PersistenceError indicates a read or write against the key-value store
// failed. Writes are optimistic: the in-memory change is kept and the
// error is surfaced as a notification, never as a crash.
type PersistenceError struct {
	Op  string // "save" or "save theme"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
