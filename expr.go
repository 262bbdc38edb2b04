package sqlbx

import (
	"github.com/mitranim/sqlb"
)

/*
Typed SQL expression. Wraps an arbitrary `sqlb.Expr`, adding a phantom type
parameter that describes the Go type of the value the expression evaluates to,
which is also the type a caller would scan the result into. Nullable results
are represented with pointer types: `Expr[*string]` may be null, `Expr[string]`
may not.

The type parameter has no runtime effect. It allows the helpers in this package
to link input expression types to output SQL result types at compile time:

	var name = sqlbx.Col[*string](`name`)
	var nick = sqlbx.Col[*string](`nick`)

	// Inferred as `sqlbx.Expr[string]`.
	display := sqlbx.CoalesceTo(sqlbx.Arg(`anonymous`), nick, name)

An empty `Expr` is encoded as "null". `Expr` implements `sqlb.Expr` and can be
used anywhere sqlb accepts expressions.
*/
type Expr[A any] [1]sqlb.Expr

var _ = sqlb.Expr(Expr[any]{})

const sqlNull = sqlb.Str(`null`)

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Expr[A]) AppendExpr(text []byte, args []any) ([]byte, []any) {
	if self[0] == nil {
		return sqlNull.AppendExpr(text, args)
	}
	return self[0].AppendExpr(text, args)
}

// Implement the `sqlb.AppenderTo` interface.
func (self Expr[A]) AppendTo(text []byte) []byte { return exprAppend(self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Expr[A]) String() string { return exprString(self) }

// True if there's no inner expression.
func (self Expr[A]) IsEmpty() bool { return self[0] == nil }

// Returns the inner untyped expression.
func (self Expr[A]) Get() sqlb.Expr { return self[0] }

// Wraps an arbitrary `sqlb.Expr`, asserting its result type.
func Typed[A any](val sqlb.Expr) Expr[A] { return Expr[A]{val} }

/*
Column reference. A single name is encoded as a quoted identifier, a longer
path is encoded as `sqlb.Path`:

	Col[int](`one`)               -> "one"
	Col[int](`one`, `two`)        -> ("one")."two"

For table-qualified columns, use `TableCol`.
*/
func Col[A any](path ...string) Expr[A] { return Expr[A]{sqlb.Path(path).Norm()} }

/*
Table-qualified column reference, encoded as `sqlb.Identifier`:

	TableCol[int](`users`, `id`) -> "users"."id"
*/
func TableCol[A any](table, col string) Expr[A] {
	return Expr[A]{sqlb.Identifier{table, col}}
}

/*
Ordinal parameter with an argument. The type of the expression is inferred from
the argument:

	Arg(10)     -> $1 (Expr[int])
	Arg(`str`)  -> $1 (Expr[string])
*/
func Arg[A any](val A) Expr[A] { return Expr[A]{param{val}} }

/*
Arbitrary SQL text with ordinal parameters such as "$1", delegating to
`sqlb.ListQ`. Parameters are renumerated when combined with other expressions.
*/
func Raw[A any](text string, args ...any) Expr[A] {
	return Expr[A]{sqlb.ListQ(text, args...)}
}

// SQL "null" typed as a nullable `A`.
func Null[A any]() Expr[*A] { return Expr[*A]{sqlNull} }

// Encodes "cast(A as <type>)". The SQL type name is inserted verbatim.
func Cast[A any](val any, typ string) Expr[A] { return Expr[A]{cast{val, typ}} }

/*
Encodes `<expr> as "alias"`, for use in "select" lists. The result is untyped
because an aliased expression is no longer a value.
*/
func As(val sqlb.Expr, alias string) sqlb.Expr {
	return sqlb.Exprs{val, sqlb.Str(`as`), sqlb.Ident(alias)}
}

// Free conversion asserting that the expression may be null.
func Nullable[A any](val Expr[A]) Expr[*A] { return Expr[*A](val) }

/*
Free conversion asserting that the expression is never null. The SQL is
unchanged; use this when the database guarantees non-nullness in ways not
visible to the type system, such as a "where A is not null" clause.
*/
func NonNull[A any](val Expr[*A]) Expr[A] { return Expr[A](val) }

// Free conversion to an arbitrary result type. The SQL is unchanged.
func Retype[B, A any](val Expr[A]) Expr[B] { return Expr[B](val) }

// Function call expression: `name(A, B, C)`. See `Op`.
func Fn[A any](name string, args ...any) Expr[A] {
	return Expr[A]{Op{SyntaxFunc, name, args}}
}

// Infix operation: `(A op B op C)`. See `Op`.
func Infix[A any](op string, args ...any) Expr[A] {
	return Expr[A]{Op{SyntaxInfix, op, args}}
}

// Prefix operation: `(op A)`. See `Op`.
func Prefix[A any](op string, arg any) Expr[A] {
	return Expr[A]{Op{SyntaxPrefix, op, []any{arg}}}
}

// Postfix operation: `(A op)`. See `Op`.
func Postfix[A any](arg any, op string) Expr[A] {
	return Expr[A]{Op{SyntaxPostfix, op, []any{arg}}}
}
