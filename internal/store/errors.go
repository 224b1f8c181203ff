package store

import "fmt"

// NotFoundError reports that a referenced id does not resolve to a live row.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// ValidationError reports a missing required field or an ownership mismatch.
// It is always raised before any write happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports a duplicate case-party link or a write that kept
// racing with another update.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
