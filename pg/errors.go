package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Postgres SQLSTATE codes recognized by the helpers below.
const (
	CodeUniqueViolation     = `23505`
	CodeForeignKeyViolation = `23503`
	CodeNotNullViolation    = `23502`
	CodeCheckViolation      = `23514`
	CodeExclusionViolation  = `23P01`
)

/*
Returns the SQLSTATE code of a Postgres error anywhere in the chain of wrapped
errors, or "" if there is none. Supports errors from both "lib/pq" and "pgx".
*/
func ErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr != nil {
		return string(pqErr.Code)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr != nil {
		return pgErr.Code
	}

	return ``
}

// True if the error is a unique constraint violation.
func IsUniqueViolation(err error) bool { return ErrorCode(err) == CodeUniqueViolation }

// True if the error is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return ErrorCode(err) == CodeForeignKeyViolation
}

/*
True if the error is an exclusion constraint violation, typically produced by
"exclude using gist" constraints over overlapping ranges. See `RangeOverlaps`.
*/
func IsExclusionViolation(err error) bool {
	return ErrorCode(err) == CodeExclusionViolation
}
