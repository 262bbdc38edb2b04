package pg

import (
	"github.com/lib/pq"
	"github.com/mitranim/sqlbx"
)

/*
Encodes a Go slice as a single array parameter, wrapping it with `pq.Array`,
which implements the text format of Postgres arrays:

	Array([]string{`one`, `two`}) -> $1

Nil slices are encoded as null.
*/
func Array[A any](vals []A) sqlbx.Expr[[]A] {
	return sqlbx.Retype[[]A](sqlbx.Arg(pq.Array(vals)))
}

// Encodes "array_agg(A)". Null for empty inputs, scanned as a nil slice.
func ArrayAgg[A any](val sqlbx.Expr[A]) sqlbx.Expr[[]A] {
	return sqlbx.Fn[[]A](`array_agg`, val)
}

// Encodes "(A @> B)".
func ArrayContains[A any](val, other sqlbx.Expr[[]A]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`@>`, val, other)
}

// Encodes "(A <@ B)".
func ArrayContainedBy[A any](val, other sqlbx.Expr[[]A]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`<@`, val, other)
}

// Encodes "(A && B)".
func ArrayOverlaps[A any](val, other sqlbx.Expr[[]A]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`&&`, val, other)
}

// Encodes "array_length(A, 1)". Null for empty arrays, unlike `Cardinality`.
func ArrayLength[A any](val sqlbx.Expr[[]A]) sqlbx.Expr[*int64] {
	return sqlbx.Fn[*int64](`array_length`, val, lit(`1`))
}

// Encodes "cardinality(A)". Zero for empty arrays.
func Cardinality[A any](val sqlbx.Expr[[]A]) sqlbx.Expr[int64] {
	return sqlbx.Fn[int64](`cardinality`, val)
}

// Encodes "unnest(A)", a set-returning function.
func Unnest[A any](val sqlbx.Expr[[]A]) sqlbx.Expr[A] {
	return sqlbx.Fn[A](`unnest`, val)
}

/*
Encodes "(A = any($1))" where the argument is the given slice, wrapped with
`pq.Array`. Unlike "in", the number of parameters doesn't depend on the
number of values, and an empty slice matches nothing.
*/
func EqAny[A any](val sqlbx.Expr[A], vals []A) sqlbx.Expr[bool] {
	return sqlbx.Typed[bool](sqlbx.Op{
		Syntax: sqlbx.SyntaxAny,
		Name:   `=`,
		Args:   []any{val, pq.Array(vals)},
	})
}
