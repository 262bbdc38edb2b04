package pg

import (
	"github.com/google/uuid"
	"github.com/mitranim/sqlbx"
)

// Encodes "gen_random_uuid()". Built into Postgres 13 and later.
func GenRandomUuid() sqlbx.Expr[uuid.UUID] {
	return sqlbx.Fn[uuid.UUID](`gen_random_uuid`)
}

// Encodes "cast($1 as uuid)" with the given UUID as the argument.
func UuidArg(val uuid.UUID) sqlbx.Expr[uuid.UUID] {
	return sqlbx.Cast[uuid.UUID](val, TypeUuid.Name)
}

/*
Same as `UuidArg` but for the text representation. Panics with
`sqlbx.ErrInvalidInput` if the text is not a valid UUID.
*/
func UuidParse(src string) sqlbx.Expr[uuid.UUID] {
	val, err := uuid.Parse(src)
	if err != nil {
		panic(sqlbx.ErrInvalidInput.During(`parsing UUID`).Because(err))
	}
	return UuidArg(val)
}
