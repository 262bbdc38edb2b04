package mysql

import (
	"errors"

	driver "github.com/go-sql-driver/mysql"
)

// MySQL server error numbers recognized by the helpers below.
const (
	ErrNumDuplicateEntry  uint16 = 1062
	ErrNumRowIsReferenced uint16 = 1451
	ErrNumNoReferencedRow uint16 = 1452
)

/*
Returns the server error number of a `*mysql.MySQLError` anywhere in the chain
of wrapped errors, or 0 if there is none.
*/
func ErrorNumber(err error) uint16 {
	var tar *driver.MySQLError
	if errors.As(err, &tar) && tar != nil {
		return tar.Number
	}
	return 0
}

// True if the error is a unique key violation, such as from a plain "insert".
func IsDuplicateEntry(err error) bool { return ErrorNumber(err) == ErrNumDuplicateEntry }

// True if the error is a foreign key violation in either direction.
func IsForeignKeyViolation(err error) bool {
	switch ErrorNumber(err) {
	case ErrNumRowIsReferenced, ErrNumNoReferencedRow:
		return true
	default:
		return false
	}
}
