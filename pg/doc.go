/*
Postgres-specific helpers for "github.com/mitranim/sqlbx". Covers JSON and JSONB,
full text search, arrays, ranges, intervals, uuids, and the commonly used
extensions "cube", "citext", "pg_trgm", "unaccent", and PostGIS.

Like the parent package, every helper returns a typed `sqlbx.Expr`, and Go
values used as operands become ordinal parameters. Types such as `Cube`,
`Point`, `Range`, `Interval`, `Tsvector` and `Json` implement
`driver.Valuer` and `sql.Scanner`, and can be passed as query arguments or
scanned from query results:

	area := pg.CubeOf(pg.Cube{Ll: []float64{0, 0}, Ur: []float64{10, 10}})
	cond := pg.CubeContains(area, sqlbx.Col[pg.Cube](`location`))

	text, args := sqlb.Reify(sqlb.Str(`select * from places`), sqlb.Prefix{`where`, cond})

	// select * from places where (cast($1 as cube) @> "location")
	// []any{pg.Cube{...}}

Column types provided by extensions are described by `Type`. Use `Extensions`
and `CreateExtension` to generate the DDL that enables them.

`ErrorCode` and the `Is*Violation` functions classify constraint errors from
either "lib/pq" or "pgx".
*/
package pg
