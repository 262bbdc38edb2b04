package mysql

import (
	"strings"

	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
MySQL identifier, quoted with backticks. Backticks in the name are doubled:

	Ident(`order`)     -> `order`
	Ident("one`two")   -> `one``two`

Panics when encoding an empty name.
*/
type Ident string

var _ = sqlb.Expr(Ident(``))

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Ident) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return sqlb.Str(self.quoted()).AppendExpr(text, args)
}

// Implement the `sqlb.AppenderTo` interface.
func (self Ident) AppendTo(text []byte) []byte { return append(text, self.quoted()...) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Ident) String() string { return self.quoted() }

func (self Ident) quoted() string {
	if self == `` {
		panic(sqlbx.ErrInvalidInput.During(`encoding MySQL identifier`).Because(
			errf(`unexpected empty identifier`),
		))
	}
	return "`" + strings.ReplaceAll(string(self), "`", "``") + "`"
}

/*
Dot-separated path of backtick-quoted identifiers, such as a table-qualified
column reference:

	Path{`persons`, `name`} -> `persons`.`name`
*/
type Path []string

var _ = sqlb.Expr(Path(nil))

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Path) AppendExpr(text []byte, args []any) ([]byte, []any) {
	if len(self) == 0 {
		panic(sqlbx.ErrInvalidInput.During(`encoding MySQL identifier path`).Because(
			errf(`unexpected empty path`),
		))
	}

	bui := sqlb.Bui{Text: text, Args: args}
	bui.Space()
	for ind, val := range self {
		if ind > 0 {
			appendStr(&bui, `.`)
		}
		appendStr(&bui, Ident(val).quoted())
	}
	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Path) AppendTo(text []byte) []byte {
	text, _ = self.AppendExpr(text, nil)
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Path) String() string { return string(self.AppendTo(nil)) }

/*
Typed column reference, the MySQL counterpart of `sqlbx.Col`:

	Col[int](`id`)               -> `id`
	Col[int](`persons`, `id`)    -> `persons`.`id`
*/
func Col[A any](path ...string) sqlbx.Expr[A] { return sqlbx.Typed[A](Path(path)) }
