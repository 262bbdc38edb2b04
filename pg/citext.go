package pg

import (
	"database/sql"
	"database/sql/driver"
	"strings"

	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Go representation of the case-insensitive text type from the "citext"
extension. Stored as-is, compared case-insensitively by the database. Use
`Citext.Equal` for the same comparison in Go.
*/
type Citext string

var (
	_ = driver.Valuer(Citext(``))
	_ = sql.Scanner((*Citext)(nil))
)

// Implement `driver.Valuer`.
func (self Citext) Value() (driver.Value, error) { return string(self), nil }

// Implement `sql.Scanner`. Null is scanned as an empty string.
func (self *Citext) Scan(src any) error {
	text, _, err := scanText(`citext`, src)
	if err != nil {
		return err
	}
	*self = Citext(text)
	return nil
}

// Case-insensitive comparison, approximating the database behavior.
func (self Citext) Equal(other Citext) bool {
	return strings.EqualFold(string(self), string(other))
}

// Encodes "cast(A as citext)".
func AsCitext(val sqlb.Expr) sqlbx.Expr[Citext] {
	return sqlbx.Cast[Citext](val, TypeCitext.Name)
}

// Encodes "cast($1 as citext)" with the given text as the argument.
func CitextOf(val string) sqlbx.Expr[Citext] {
	return sqlbx.Cast[Citext](Citext(val), TypeCitext.Name)
}
