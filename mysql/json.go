package mysql

import (
	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Alias of `sqlbx.Json`: encodes its value as JSON when used as a query argument
and decodes JSON columns when scanning. SQL null scans as the zero value.
*/
type Json[A any] = sqlbx.Json[A]

// Encodes "json_arrayagg(A)". Null for empty inputs, which scans into a nil slice.
func JsonArrayAgg[A any](val sqlbx.Expr[A]) sqlbx.Expr[Json[[]A]] {
	return sqlbx.Fn[Json[[]A]](`json_arrayagg`, val)
}

// Encodes "json_objectagg(K, V)". Null for empty inputs.
func JsonObjectAgg[A any](key sqlbx.Expr[string], val sqlbx.Expr[A]) sqlbx.Expr[Json[map[string]A]] {
	return sqlbx.Fn[Json[map[string]A]](`json_objectagg`, key, val)
}

/*
Encodes "json_object(...)" from an ordered list of entries. Keys become
placeholders, values follow the usual rules:

	JsonObject(sqlbx.Obj{{`id`, Col[int](`id`)}, {`kind`, `person`}})
	-> json_object(?, `id`, ?, ?)
*/
func JsonObject(val sqlbx.Obj) sqlbx.Expr[Json[map[string]any]] {
	return sqlbx.Fn[Json[map[string]any]](`json_object`, val)
}

// Encodes "json_array(A, B, ...)".
func JsonArray[A any](vals ...sqlbx.Expr[A]) sqlbx.Expr[Json[[]A]] {
	return sqlbx.Fn[Json[[]A]](`json_array`, anys(vals)...)
}

/*
Encodes "json_extract(A, ?)" where the path uses MySQL JSON path syntax, such as
"$.address.city". Null when the path doesn't exist.
*/
func JsonExtract[A any](src sqlb.Expr, path string) sqlbx.Expr[Json[A]] {
	return sqlbx.Fn[Json[A]](`json_extract`, src, path)
}

// Encodes "json_unquote(A)", converting a JSON value to text.
func JsonUnquote(val sqlb.Expr) sqlbx.Expr[*string] {
	return sqlbx.Fn[*string](`json_unquote`, val)
}

/*
Shortcut for "json_unquote(json_extract(A, ?))", the equivalent of the "->>"
operator which can't be used with placeholder paths.
*/
func JsonExtractText(src sqlb.Expr, path string) sqlbx.Expr[*string] {
	return JsonUnquote(JsonExtract[any](src, path))
}

/*
Encodes "json_contains(A, B)": true if the JSON document A contains B. Non-expr
candidates become placeholders; wrap them in `Json` to encode them as JSON.
*/
func JsonContains(target sqlb.Expr, candidate any) sqlbx.Expr[bool] {
	return sqlbx.Fn[bool](`json_contains`, target, candidate)
}

// Encodes "json_length(A)". Null if the document is null.
func JsonLength(val sqlb.Expr) sqlbx.Expr[*int64] {
	return sqlbx.Fn[*int64](`json_length`, val)
}
