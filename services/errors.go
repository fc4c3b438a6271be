package services

import "errors"

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("resource not found")

// ValidationError carries field-level messages for input that failed
// a check only the database can answer (e.g. referenced category ids).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
