package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidCredentials is returned when an operator login does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// FetchError reports a failed read from the content store. It is logged, never shown.
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PersistenceError reports a failed write, delete or upload.
type PersistenceError struct {
	Op         string // "create", "update", "delete" or "upload"
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ValidationError lists the fields of a draft that failed validation.
type ValidationError struct {
	Errors validation.Errors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %v", k, e.Errors[k]))
	}
	return strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Errors[field]
	return ok
}

// asValidationError converts ozzo's result into a *ValidationError. Internal
// validator errors are returned unchanged.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		return &ValidationError{Errors: errs}
	}
	return err
}
