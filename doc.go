/*
Typed helpers for building SQL with "github.com/mitranim/sqlb". Wraps common
SQL functions and operators into Go functions whose signatures link the types
of input expressions to the types of SQL results.

Every helper returns `Expr[A]`: an arbitrary `sqlb.Expr` with a phantom type
parameter describing the Go type that the SQL value would be scanned into.
Pointer types represent nullable values. Expressions are immutable, have no
runtime overhead beyond the underlying sqlb expressions, and can be used
anywhere sqlb accepts expressions.

	name := sqlbx.Col[*string](`name`)
	age := sqlbx.Col[int](`age`)

	cond := sqlbx.And(
		sqlbx.Gte(age, sqlbx.Arg(18)),
		sqlbx.Contains(name, `bob`),
	)

	text, args := sqlb.Reify(sqlb.Prefix{`where`, cond})

	// where (("age" >= $1) and ("name" like $2 escape $3))
	// []any{18, `%bob%`, `\`}

# Rendering

Function calls are encoded as "name(A, B)". Operators are always fully
parenthesized, which makes them safe to nest without regard for precedence.
Go values passed as operands become ordinal parameters such as "$1", which sqlb
renumerates when combining expressions. See `Op` for the general form.

# Dialects

Most helpers in this package produce standard SQL that works in both Postgres
and MySQL, with the caveat that MySQL uses "?" placeholders and backtick-quoted
identifiers; see "sqlbx/mysql".Reify and "sqlbx/mysql".Col. Some helpers are
Postgres-only and say so in their docs: `RoundTo` casts to "numeric",
`IsDistinctFrom` and `IsNotDistinctFrom` have no MySQL form (use
"sqlbx/mysql".NullSafeEq), and `Col` with several path segments encodes
composite field access. `Query`, `Seek` and `Schema.Ords` render double-quoted
identifiers, which MySQL accepts only with "ANSI_QUOTES". Postgres extensions
(JSON, full text search, cube, citext, PostGIS, ranges, intervals, arrays) are
in "sqlbx/pg". MySQL-specific functions are in "sqlbx/mysql". Both build JSON
objects from `Obj` and scan JSON through `Json`.

# Client input

`Query` decodes listing parameters (a JEL filter, an ordering, and a page) from
JSON or URL queries, validating them against a struct type. `Schema` validates
arbitrary JSON input against a struct type. `Seek` encodes conditions for
keyset pagination, and `Paginate` adds total counts for offset pagination.

# Errors

Helpers that decode or validate input return errors of type `Err`, which may be
detected via `errors.Is` and the `Err*` variables. Like sqlb, expression
encoding panics on invalid input; use `(*sqlb.Bui).CatchExprs` to convert such
panics to errors.
*/
package sqlbx
