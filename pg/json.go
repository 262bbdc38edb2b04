package pg

import (
	"github.com/lib/pq"
	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Alias of `sqlbx.Json`: encodes its value as JSON when used as a query argument
and decodes JSON or JSONB columns when scanning. SQL null scans as the zero
value.
*/
type Json[A any] = sqlbx.Json[A]

// Encodes "json_agg(A)". Null for empty inputs, which scans into a nil slice.
func JsonAgg[A any](val sqlbx.Expr[A]) sqlbx.Expr[Json[[]A]] {
	return sqlbx.Fn[Json[[]A]](`json_agg`, val)
}

// Encodes "jsonb_agg(A)". See `JsonAgg`.
func JsonbAgg[A any](val sqlbx.Expr[A]) sqlbx.Expr[Json[[]A]] {
	return sqlbx.Fn[Json[[]A]](`jsonb_agg`, val)
}

/*
Encodes an aggregation which skips nulls and is never null:

	coalesce(json_agg(A) filter (where (A is not null)), '[]')
*/
func JsonAggStrict[A any](val sqlbx.Expr[*A]) sqlbx.Expr[Json[[]A]] {
	return sqlbx.Fn[Json[[]A]](
		`coalesce`,
		Filter(sqlbx.Fn[Json[[]A]](`json_agg`, val), sqlbx.IsNotNull(val)),
		lit(`'[]'`),
	)
}

/*
Encodes an aggregate expression with a filter clause:

	A filter (where B)
*/
func Filter[A any](agg sqlbx.Expr[A], cond sqlbx.Expr[bool]) sqlbx.Expr[A] {
	return sqlbx.Typed[A](sqlbx.Words{agg, lit(`filter`), sqlbx.Tuple{sqlb.Prefix{Prefix: `where`, Expr: cond}}})
}

// Encodes "to_json(A)".
func ToJson[A any](val sqlbx.Expr[A]) sqlbx.Expr[Json[A]] {
	return sqlbx.Fn[Json[A]](`to_json`, val)
}

// Encodes "to_jsonb(A)".
func ToJsonb[A any](val sqlbx.Expr[A]) sqlbx.Expr[Json[A]] {
	return sqlbx.Fn[Json[A]](`to_jsonb`, val)
}

/*
Encodes "row_to_json(A)" where A is usually a table name or alias. The result
type is provided by the caller.
*/
func RowToJson[A any](row sqlb.Expr) sqlbx.Expr[Json[A]] {
	return sqlbx.Fn[Json[A]](`row_to_json`, row)
}

// Encodes "jsonb_object_agg(key, val)".
func JsonbObjectAgg[A any](key sqlbx.Expr[string], val sqlbx.Expr[A]) sqlbx.Expr[Json[map[string]A]] {
	return sqlbx.Fn[Json[map[string]A]](`jsonb_object_agg`, key, val)
}

/*
Encodes "json_build_object(...)" from an ordered list of entries. Keys are
encoded as SQL string literals rather than parameters, which allows Postgres to
infer their types:

	JsonBuildObject(sqlbx.Obj{{`id`, sqlbx.Col[int](`id`)}})
	-> json_build_object('id', "id")
*/
func JsonBuildObject(val sqlbx.Obj) sqlbx.Expr[Json[map[string]any]] {
	return sqlbx.Fn[Json[map[string]any]](`json_build_object`, objEntries(val)...)
}

// Encodes "jsonb_build_object(...)". See `JsonBuildObject`.
func JsonbBuildObject(val sqlbx.Obj) sqlbx.Expr[Json[map[string]any]] {
	return sqlbx.Fn[Json[map[string]any]](`jsonb_build_object`, objEntries(val)...)
}

func objEntries(val sqlbx.Obj) []any {
	out := make([]any, 0, len(val)*2)
	for _, val := range val {
		out = append(out, lit(pq.QuoteLiteral(val.Key)), val.Val)
	}
	return out
}

/*
Encodes "(A -> B)". The key may be a string (object field) or a Go integer
(array index). Integer parameters are cast to "int", because an untyped
parameter is resolved as text, which selects an object field:

	Get[any](data, `one`) -> ("data" -> $1)
	Get[any](data, 2)     -> ("data" -> cast($1 as int))

The result type is provided by the caller.
*/
func Get[A any](src sqlb.Expr, key any) sqlbx.Expr[Json[A]] {
	return sqlbx.Infix[Json[A]](`->`, src, jsonKey(key))
}

// Encodes "(A ->> B)". See `Get`. Missing keys produce null.
func GetText(src sqlb.Expr, key any) sqlbx.Expr[*string] {
	return sqlbx.Infix[*string](`->>`, src, jsonKey(key))
}

func jsonKey(key any) any {
	switch key.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return sqlbx.Cast[int](key, `int`)
	default:
		return key
	}
}

// Encodes "(A #> B)" where B is a text array parameter.
func GetPath[A any](src sqlb.Expr, path ...string) sqlbx.Expr[Json[A]] {
	return sqlbx.Infix[Json[A]](`#>`, src, pq.Array(path))
}

// Encodes "(A #>> B)" where B is a text array parameter.
func GetPathText(src sqlb.Expr, path ...string) sqlbx.Expr[*string] {
	return sqlbx.Infix[*string](`#>>`, src, pq.Array(path))
}

// Encodes "(A @> B)". Both operands must be JSONB.
func JsonbContains(src, sub any) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`@>`, src, sub)
}

/*
Encodes "jsonb_exists(A, B)", which is equivalent to the "?" operator. The
function form avoids confusion with "?" placeholders in drivers that support
them.
*/
func JsonbHasKey(src sqlb.Expr, key string) sqlbx.Expr[bool] {
	return sqlbx.Fn[bool](`jsonb_exists`, src, key)
}

// Encodes "jsonb_set(A, B, C)" where B is a text array parameter.
func JsonbSet[A any](target sqlbx.Expr[A], path []string, val any) sqlbx.Expr[A] {
	return sqlbx.Fn[A](`jsonb_set`, target, pq.Array(path), val)
}
