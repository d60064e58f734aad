// Package apperrors defines the error types the catalog layer reports:
// not-found for id/slug lookups that match nothing and conflict for
// unique-index collisions. Anything else bubbles up untyped.
package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError reports that an id- or slug-targeted operation matched no
// record.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NotFound builds a NotFoundError for the given entity and identifier.
func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a unique-constraint violation (duplicate slug or sku).
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

// Conflict builds a ConflictError for the given entity, field and value.
func Conflict(entity, field, value string) error {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
