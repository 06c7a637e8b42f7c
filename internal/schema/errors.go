package schema

import (
	"fmt"
	"strings"
)

// ValidationError is returned when a field value does not match its declared
// type or, for enumerated fields, is not a member of the declared literal set.
// The write never reaches the database.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s.%s: %s", e.Entity, e.Field, e.Reason)
}

// UniquenessViolation is returned when an insert or update would duplicate a
// value for a field tuple designated unique (clerk_id, order_number,
// branch_id+table_number).
type UniquenessViolation struct {
	Entity string
	Fields []string
}

func (e *UniquenessViolation) Error() string {
	return fmt.Sprintf("uniqueness violation on %s(%s)", e.Entity, strings.Join(e.Fields, ", "))
}

// ImmutableFieldViolation is returned when an update attempts to change the
// creation timestamp of an existing record. The stored value is never touched.
type ImmutableFieldViolation struct {
	Entity string
	Field  string
}

func (e *ImmutableFieldViolation) Error() string {
	return fmt.Sprintf("%s.%s is immutable after creation", e.Entity, e.Field)
}

// ReferenceIntegrityWarning flags an id field pointing at a record that could
// not be found. The schema layer does not enforce foreign-key existence;
// services may surface this warning when they choose to verify references
// before a write, but absence of the check is a documented gap, not a defect.
type ReferenceIntegrityWarning struct {
	Entity string
	Field  string
	ID     uint
}

func (e *ReferenceIntegrityWarning) Error() string {
	return fmt.Sprintf("%s.%s references missing record %d", e.Entity, e.Field, e.ID)
}
