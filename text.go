package sqlbx

import (
	"strings"

	"github.com/mitranim/sqlb"
)

/*
Go types that correspond to SQL text. The pointer form is nullable. Helpers that
preserve nullability, such as `Lower`, return the same type they accept.
*/
type Text interface{ ~string | *string }

// Encodes "concat(A, B, ...)". Null operands are treated as empty strings.
func Concat[A Text](vals ...Expr[A]) Expr[string] {
	return Fn[string](`concat`, anys(vals)...)
}

// Encodes "lower(A)".
func Lower[A Text](val Expr[A]) Expr[A] { return Fn[A](`lower`, val) }

// Encodes "upper(A)".
func Upper[A Text](val Expr[A]) Expr[A] { return Fn[A](`upper`, val) }

// Encodes "trim(A)".
func Trim[A Text](val Expr[A]) Expr[A] { return Fn[A](`trim`, val) }

// Encodes "char_length(A)". Counts characters rather than bytes.
func Length(val Expr[string]) Expr[int64] { return Fn[int64](`char_length`, val) }

/*
Encodes "substr(A, $1, $2)". Positions are 1-based, as in SQL. A non-positive
count is omitted, selecting the rest of the string.
*/
func Substr(val Expr[string], start, count int) Expr[string] {
	if count > 0 {
		return Fn[string](`substr`, val, start, count)
	}
	return Fn[string](`substr`, val, start)
}

// Encodes "replace(A, B, C)".
func Replace(val, from, to Expr[string]) Expr[string] {
	return Fn[string](`replace`, val, from, to)
}

/*
Encodes "(A like B)". The pattern is used as-is. To match arbitrary user input
literally, use `EscapeLike`, or the shortcuts `Contains`, `HasPrefix`,
`HasSuffix`.
*/
func Like[A Text](val Expr[A], pattern Expr[string]) Expr[bool] {
	return Infix[bool](`like`, val, pattern)
}

// Encodes "(A not like B)". See `Like`.
func NotLike[A Text](val Expr[A], pattern Expr[string]) Expr[bool] {
	return Infix[bool](`not like`, val, pattern)
}

/*
Escapes the special characters of "like" patterns: "%", "_", and the escape
character `LikeEscapeChar`. Use with `LikeEscaped`, which declares the escape
character explicitly.
*/
func EscapeLike(src string) string { return likeEscaper.Replace(src) }

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Escape character used by `EscapeLike` and declared by `LikeEscaped`.
const LikeEscapeChar = `\`

/*
Encodes "(A <op> B escape $1)" where the parameter is `LikeEscapeChar`. The
operator is usually "like", "not like" or "ilike". The escape character is a
parameter rather than a literal because MySQL treats backslash in string
literals as an escape, unless "NO_BACKSLASH_ESCAPES" is enabled.
*/
func LikeEscaped[A Text](op string, val Expr[A], pattern Expr[string]) Expr[bool] {
	return Typed[bool](Tuple{Words{val, sqlb.Str(op), pattern, sqlb.Str(`escape`), LikeEscapeChar}})
}

// Matches text that contains the given substring: "(A like $1 escape $2)"
// with "%sub%".
func Contains[A Text](val Expr[A], sub string) Expr[bool] {
	return LikeEscaped(`like`, val, Arg(`%`+EscapeLike(sub)+`%`))
}

// Matches text that starts with the given prefix: "(A like $1 escape $2)"
// with "pre%".
func HasPrefix[A Text](val Expr[A], pre string) Expr[bool] {
	return LikeEscaped(`like`, val, Arg(EscapeLike(pre)+`%`))
}

// Matches text that ends with the given suffix: "(A like $1 escape $2)" with
// "%suf".
func HasSuffix[A Text](val Expr[A], suf string) Expr[bool] {
	return LikeEscaped(`like`, val, Arg(`%`+EscapeLike(suf)))
}
