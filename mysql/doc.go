/*
MySQL-specific extensions for `sqlbx`: JSON functions, full-text search,
conditional and string functions, date arithmetic, and binary UUIDs.

sqlb renders Postgres-style ordinal parameters such as "$1" and double-quoted
identifiers. MySQL expects "?" placeholders and, unless "ANSI_QUOTES" is
enabled, backtick-quoted identifiers. Use `Col` and `Ident` for column
references and `Reify` for producing the final query:

	text, args := mysql.Reify(
		sqlb.Str(`select * from persons`),
		sqlb.Prefix{`where`, sqlbx.Eq(mysql.Col[string](`name`), sqlbx.Arg(`Bob`))},
	)
	// select * from persons where (`name` = ?)

Functions in this package never emit double-quoted identifiers. Helpers from
`sqlbx` that take column paths, such as `sqlbx.Col`, do.
*/
package mysql
