package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// FetchError indicates the remote feed endpoint answered with a non-success status.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("feed fetch failed with status %d", e.StatusCode)
}

// ConnectionError indicates the remote feed endpoint could not be reached at all.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "feed connection failed: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ParseError indicates a malformed or structurally unexpected feed document.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "feed parse error: " + e.Msg + ": " + e.Err.Error()
	}
	return "feed parse error: " + e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StorageError indicates a transactional persistence failure. The batch that
// produced it has been rolled back in full.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
