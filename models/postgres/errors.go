package postgres

import "fmt"

// MissingFieldError reports a required field left empty at construction
// time. Raised by the model Validate hooks before anything hits storage.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

// ValidationError reports a cross-field rule broken at construction
// time, like a game where a team plays itself.
type ValidationError struct {
	Entity string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
}

// TypeMismatchError reports a non-numeric value bound into a numeric
// column. The binding layer maps JSON decode failures onto it.
type TypeMismatchError struct {
	Entity string
	Field  string
	Value  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: field %q rejects value %q", e.Entity, e.Field, e.Value)
}
