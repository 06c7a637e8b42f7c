package repository

import (
	"errors"
	"time"

	"restaurant_platform/internal/schema"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolationCode is the Postgres error code raised when an insert loses
// the race against a unique index.
const uniqueViolationCode = "23505"

// translateError maps a storage-level duplicate-key failure onto the schema
// error taxonomy. The transactional pre-checks in each repository catch
// duplicates first; this covers two inserts racing past the same check.
func translateError(entity string, fields []string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return &schema.UniquenessViolation{Entity: entity, Fields: fields}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &schema.UniquenessViolation{Entity: entity, Fields: fields}
	}
	return err
}

// stampCreatedAt assigns the creation timestamp. It overwrites whatever the
// caller put there: the value is system-assigned, sampled inside the create
// call, and never taken from input.
func stampCreatedAt(createdAt *time.Time) {
	*createdAt = time.Now()
}

// guardCreatedAt rejects updates that try to move a record's creation
// timestamp. A zero incoming value means the caller left the field alone.
func guardCreatedAt(entity string, stored, incoming time.Time) error {
	if incoming.IsZero() || incoming.Equal(stored) {
		return nil
	}
	return &schema.ImmutableFieldViolation{Entity: entity, Field: "created_at"}
}
