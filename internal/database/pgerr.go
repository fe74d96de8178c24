package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// UniqueViolationCode indicates a unique constraint violation.
	UniqueViolationCode = "23505"
	// ForeignKeyViolationCode indicates a foreign key violation.
	ForeignKeyViolationCode = "23503"
)

// AsPgError extracts a Postgres driver error from err, if there is one.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsForeignKeyViolation reports whether err was caused by a foreign key
// violation. The SQLSTATE check covers Postgres; the gorm sentinel covers
// drivers that translate their own error types (SQLite in tests).
func IsForeignKeyViolation(err error) bool {
	if pe, ok := AsPgError(err); ok {
		return pe.Code == ForeignKeyViolationCode
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
