package sqlbx

import (
	"github.com/mitranim/sqlb"
	"github.com/shopspring/decimal"
)

/*
Go types that correspond to SQL numbers. `decimal.Decimal` represents SQL
"numeric", which is also the result type of "avg" and of rounding to a given
precision.
*/
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		decimal.Decimal
}

// Encodes "(A + B)".
func Add[A Numeric](val, other Expr[A]) Expr[A] { return Infix[A](`+`, val, other) }

// Encodes "(A - B)".
func Sub[A Numeric](val, other Expr[A]) Expr[A] { return Infix[A](`-`, val, other) }

// Encodes "(A * B)".
func Mul[A Numeric](val, other Expr[A]) Expr[A] { return Infix[A](`*`, val, other) }

/*
Encodes "(A / B)". Note that for SQL integers, this is integer division, just
like in Go.
*/
func Div[A Numeric](val, other Expr[A]) Expr[A] { return Infix[A](`/`, val, other) }

// Encodes "(A % B)".
func Mod[A Numeric](val, other Expr[A]) Expr[A] { return Infix[A](`%`, val, other) }

// Variadic addition: "(A + B + C)". A single operand is returned as-is.
func Plus[A Numeric](head Expr[A], tail ...Expr[A]) Expr[A] {
	if len(tail) == 0 {
		return head
	}
	return Infix[A](`+`, append([]any{head}, anys(tail)...)...)
}

// Encodes "(- A)".
func Neg[A Numeric](val Expr[A]) Expr[A] { return Prefix[A](`-`, val) }

// Encodes "abs(A)".
func Abs[A Numeric](val Expr[A]) Expr[A] { return Fn[A](`abs`, val) }

// Encodes "round(A)".
func Round[A Numeric](val Expr[A]) Expr[A] { return Fn[A](`round`, val) }

/*
Encodes "round(cast(A as numeric), $1)". Rounding to a given number of decimal
places is defined only for "numeric", hence the cast and the result type.
Postgres only: MySQL doesn't accept "numeric" in casts.
*/
func RoundTo[A Numeric](val Expr[A], places int) Expr[decimal.Decimal] {
	return Fn[decimal.Decimal](`round`, cast{val, `numeric`}, places)
}

// Encodes "ceil(A)".
func Ceil[A Numeric](val Expr[A]) Expr[A] { return Fn[A](`ceil`, val) }

// Encodes "floor(A)".
func Floor[A Numeric](val Expr[A]) Expr[A] { return Fn[A](`floor`, val) }

// Aggregate "count(A)". Counts non-null values. Never null.
func Count[A any](val Expr[A]) Expr[int64] { return Fn[int64](`count`, val) }

// Aggregate "count(*)". Counts rows.
func CountAll() Expr[int64] { return Fn[int64](`count`, sqlb.Str(`*`)) }

// Aggregate "count(distinct A)".
func CountDistinct[A any](val Expr[A]) Expr[int64] {
	return Fn[int64](`count`, Words{sqlb.Str(`distinct`), val})
}

/*
Aggregate "sum(A)". The result is null when there are no rows, hence the
nullable result type. For a non-null result, use `CoalesceTo`:

	CoalesceTo(Arg(0), Sum(Col[int](`amount`)))
*/
func Sum[A Numeric](val Expr[A]) Expr[*A] { return Fn[*A](`sum`, val) }

/*
Aggregate "avg(A)". For integer and numeric inputs the SQL result is "numeric",
represented with `decimal.Decimal`. Null when there are no rows.
*/
func Avg[A Numeric](val Expr[A]) Expr[*decimal.Decimal] {
	return Fn[*decimal.Decimal](`avg`, val)
}

// Aggregate "min(A)". Null when there are no rows.
func Min[A any](val Expr[A]) Expr[*A] { return Fn[*A](`min`, val) }

// Aggregate "max(A)". Null when there are no rows.
func Max[A any](val Expr[A]) Expr[*A] { return Fn[*A](`max`, val) }
