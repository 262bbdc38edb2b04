package pg

import (
	"github.com/mitranim/sqlbx"
)

// Encodes "(A ilike B)": case-insensitive `sqlbx.Like`.
func Ilike[A sqlbx.Text](val sqlbx.Expr[A], pattern sqlbx.Expr[string]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`ilike`, val, pattern)
}

/*
Case-insensitive substring search: "(A ilike $1 escape $2)" with an escaped
pattern. See `sqlbx.Contains`.
*/
func IContains[A sqlbx.Text](val sqlbx.Expr[A], sub string) sqlbx.Expr[bool] {
	return sqlbx.LikeEscaped(`ilike`, val, sqlbx.Arg(`%`+sqlbx.EscapeLike(sub)+`%`))
}

// Encodes "string_agg(A, $1)". Null for empty inputs.
func StringAgg[A sqlbx.Text](val sqlbx.Expr[A], sep string) sqlbx.Expr[*string] {
	return sqlbx.Fn[*string](`string_agg`, val, sep)
}

// Encodes "concat_ws($1, A, B, ...)". Null operands are skipped.
func ConcatWs[A sqlbx.Text](sep string, vals ...sqlbx.Expr[A]) sqlbx.Expr[string] {
	return sqlbx.Fn[string](`concat_ws`, append([]any{sep}, anys(vals)...)...)
}

// Encodes "unaccent(A)". Requires the "unaccent" extension.
func Unaccent[A sqlbx.Text](val sqlbx.Expr[A]) sqlbx.Expr[A] {
	return sqlbx.Fn[A](`unaccent`, val)
}

// Encodes "similarity(A, B)". Requires the "pg_trgm" extension.
func Similarity(val, other sqlbx.Expr[string]) sqlbx.Expr[float32] {
	return sqlbx.Fn[float32](`similarity`, val, other)
}

// Encodes "word_similarity(A, B)". Requires the "pg_trgm" extension.
func WordSimilarity(val, other sqlbx.Expr[string]) sqlbx.Expr[float32] {
	return sqlbx.Fn[float32](`word_similarity`, val, other)
}

/*
Encodes "(A % B)": true if the trigram similarity is above the threshold set
by "pg_trgm.similarity_threshold". Requires the "pg_trgm" extension. Unlike
`Similarity`, can use trigram indexes.
*/
func SimilarTo(val, other sqlbx.Expr[string]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`%`, val, other)
}

// Encodes "(A ~ B)": POSIX regular expression match.
func RegexpMatch[A sqlbx.Text](val sqlbx.Expr[A], pattern sqlbx.Expr[string]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`~`, val, pattern)
}

// Encodes "(A ~* B)": case-insensitive `RegexpMatch`.
func RegexpIMatch[A sqlbx.Text](val sqlbx.Expr[A], pattern sqlbx.Expr[string]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`~*`, val, pattern)
}
