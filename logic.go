package sqlbx

import (
	"github.com/mitranim/sqlb"
)

// Encodes "(A = B)".
func Eq[A any](val, other Expr[A]) Expr[bool] { return Infix[bool](`=`, val, other) }

// Encodes "(A <> B)".
func Neq[A any](val, other Expr[A]) Expr[bool] { return Infix[bool](`<>`, val, other) }

// Encodes "(A < B)".
func Lt[A any](val, other Expr[A]) Expr[bool] { return Infix[bool](`<`, val, other) }

// Encodes "(A <= B)".
func Lte[A any](val, other Expr[A]) Expr[bool] { return Infix[bool](`<=`, val, other) }

// Encodes "(A > B)".
func Gt[A any](val, other Expr[A]) Expr[bool] { return Infix[bool](`>`, val, other) }

// Encodes "(A >= B)".
func Gte[A any](val, other Expr[A]) Expr[bool] { return Infix[bool](`>=`, val, other) }

// Encodes "(A is distinct from B)". Treats nulls as comparable values.
// Postgres only; the MySQL equivalent is `mysql.NullSafeEq` negated.
func IsDistinctFrom[A any](val, other Expr[A]) Expr[bool] {
	return Infix[bool](`is distinct from`, val, other)
}

// Encodes "(A is not distinct from B)". Treats nulls as comparable values.
// Postgres only; the MySQL equivalent is `mysql.NullSafeEq`.
func IsNotDistinctFrom[A any](val, other Expr[A]) Expr[bool] {
	return Infix[bool](`is not distinct from`, val, other)
}

// Encodes "(A between B and C)".
func Between[A any](val, lower, upper Expr[A]) Expr[bool] {
	return Expr[bool]{Op{SyntaxBetween, `between`, []any{val, lower, upper}}}
}

// Encodes "(A not between B and C)".
func NotBetween[A any](val, lower, upper Expr[A]) Expr[bool] {
	return Expr[bool]{Op{SyntaxBetween, `not between`, []any{val, lower, upper}}}
}

// Encodes "(A is null)". Accepts only nullable expressions.
func IsNull[A any](val Expr[*A]) Expr[bool] { return Postfix[bool](val, `is null`) }

// Encodes "(A is not null)". Accepts only nullable expressions.
func IsNotNull[A any](val Expr[*A]) Expr[bool] { return Postfix[bool](val, `is not null`) }

/*
Encodes "(A in (B, C, ...))". With an empty list, this is "false", which is
what SQL would return if it allowed empty lists.
*/
func In[A any](val Expr[A], vals ...Expr[A]) Expr[bool] {
	if len(vals) == 0 {
		return Typed[bool](sqlb.Str(`false`))
	}
	return Infix[bool](`in`, val, Tuple(anys(vals)))
}

// Encodes "(A not in (B, C, ...))". With an empty list, this is "true".
func NotIn[A any](val Expr[A], vals ...Expr[A]) Expr[bool] {
	if len(vals) == 0 {
		return Typed[bool](sqlb.Str(`true`))
	}
	return Infix[bool](`not in`, val, Tuple(anys(vals)))
}

// Encodes "(exists (<query>))".
func Exists(query sqlb.Expr) Expr[bool] {
	return Prefix[bool](`exists`, Tuple{query})
}

// Encodes "(not exists (<query>))".
func NotExists(query sqlb.Expr) Expr[bool] {
	return Prefix[bool](`not exists`, Tuple{query})
}

/*
Encodes "(A and B and ...)". Empty input is "true", a single operand is
returned as-is. Same fallback rules as `sqlb.And`.
*/
func And(vals ...Expr[bool]) Expr[bool] { return logic(`and`, `true`, vals) }

/*
Encodes "(A or B or ...)". Empty input is "false", a single operand is returned
as-is. Same fallback rules as `sqlb.Or`.
*/
func Or(vals ...Expr[bool]) Expr[bool] { return logic(`or`, `false`, vals) }

// Encodes "(not A)".
func Not(val Expr[bool]) Expr[bool] { return Prefix[bool](`not`, val) }

func logic(op, empty string, vals []Expr[bool]) Expr[bool] {
	switch len(vals) {
	case 0:
		return Typed[bool](sqlb.Str(empty))
	case 1:
		return vals[0]
	default:
		return Infix[bool](op, anys(vals)...)
	}
}
