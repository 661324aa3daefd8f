package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Commit-time error taxonomy. Constraint checks live in the database;
// translate maps what the driver reports back onto these kinds so callers
// get the entity and field instead of a SQLSTATE.

// NotFoundError reports a lookup that matched no row.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// UniqueConstraintError reports a commit rejected by a unique index.
type UniqueConstraintError struct {
	Entity string
	Fields string
	Value  string
}

func (e *UniqueConstraintError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: duplicate value %q for %s", e.Entity, e.Value, e.Fields)
	}
	return fmt.Sprintf("%s: duplicate value for %s", e.Entity, e.Fields)
}

// ForeignKeyError reports a reference to a player or game that does not
// exist in storage.
type ForeignKeyError struct {
	Entity string
	Fields string
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("%s: %s references a missing row", e.Entity, e.Fields)
}

// ConflictError reports a commit the engine rejected because another
// unit of work touched the same rows. Retrying is the caller's call.
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: concurrent modification, transaction rolled back", e.Entity)
}

// sqlState matches pgconn.PgError without importing the driver.
type sqlState interface {
	SQLState() string
}

// serialization_failure and deadlock_detected
func isSerializationFailure(err error) bool {
	var state sqlState
	if errors.As(err, &state) {
		code := state.SQLState()
		return code == "40001" || code == "40P01"
	}
	return false
}

// translate maps a gorm/driver error onto the taxonomy. Requires
// TranslateError on the gorm config so unique and FK violations arrive
// as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func translate(entity, fields, value string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &UniqueConstraintError{Entity: entity, Fields: fields, Value: value}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ForeignKeyError{Entity: entity, Fields: fields}
	case isSerializationFailure(err):
		return &ConflictError{Entity: entity}
	default:
		return err
	}
}
