package mysql

import (
	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Renders the given expressions via sqlb, then converts the resulting
Postgres-style ordinal parameters into MySQL "?" placeholders. Since MySQL
placeholders are positional and can't be reused, an argument referenced by
several parameters is repeated in the output:

	select $1, $2, $1   ->  select ?, ?, ?
	[10, 20]            ->  [10, 20, 10]

Quoted strings, quoted identifiers and comments are left untouched, including
any "$N" occurrences inside them.

Panics with `sqlbx.Err` if a parameter refers to a missing argument. To convert
panics into errors, use `ReifyCatch`.
*/
func Reify(vals ...sqlb.Expr) (string, []any) {
	text, args := sqlb.Reify(vals...)
	return Convert(text, args)
}

// Same as `Reify`, but returns panics as errors.
func ReifyCatch(vals ...sqlb.Expr) (text string, args []any, err error) {
	defer rec(&err)
	text, args = Reify(vals...)
	return
}

/*
Converts SQL text with Postgres-style ordinal parameters and the matching
arguments into SQL text with MySQL placeholders and positional arguments. Used
by `Reify`; useful for queries produced by other means, such as
`(*sqlb.Bui).Reify`.
*/
func Convert(src string, srcArgs []any) (string, []any) {
	text := make([]byte, 0, len(src))
	var args []any

	tok := sqlb.Tokenizer{Source: src}
	for {
		token := tok.Next()
		if token.IsInvalid() {
			break
		}

		if token.Type != sqlb.TokenTypeOrdinalParam {
			text = append(text, token.Text...)
			continue
		}

		ind := token.ParseOrdinalParam().Index()
		if ind < 0 || ind >= len(srcArgs) {
			panic(sqlbx.ErrInvalidInput.During(`converting ordinal parameters`).Because(
				errf(`parameter %q exceeds the number of arguments %v`, token.Text, len(srcArgs)),
			))
		}

		text = append(text, '?')
		args = append(args, srcArgs[ind])
	}

	return string(text), args
}
