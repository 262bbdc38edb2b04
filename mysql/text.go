package mysql

import (
	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Encodes "group_concat(...)", the MySQL counterpart of Postgres "string_agg":

	GroupConcat{Val: Col[string](`name`), Ords: ords, Sep: `; `, Distinct: true}
	-> group_concat(distinct `name` order by `name` asc separator '; ')

`Ords` may be nil; typically it's `sqlb.Ords`. An empty `Sep` uses the MySQL
default, a comma. MySQL doesn't accept a placeholder for the separator, which
is encoded as a string literal. The result is null for empty inputs.
*/
type GroupConcat struct {
	Val      sqlb.Expr
	Ords     sqlb.Expr
	Sep      string
	Distinct bool
}

var _ = sqlb.Expr(GroupConcat{})

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self GroupConcat) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}
	bui.Space()
	appendStr(&bui, `group_concat(`)
	if self.Distinct {
		appendStr(&bui, `distinct `)
	}
	appendAny(&bui, self.Val)
	appendSpaced(&bui, self.Ords)
	if self.Sep != `` {
		appendStr(&bui, ` separator `)
		appendStr(&bui, quoteString(self.Sep))
	}
	appendStr(&bui, `)`)
	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self GroupConcat) AppendTo(text []byte) []byte {
	text, _ = self.AppendExpr(text, nil)
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self GroupConcat) String() string { return string(self.AppendTo(nil)) }

// Returns the aggregation as a typed expression.
func (self GroupConcat) Expr() sqlbx.Expr[*string] { return sqlbx.Typed[*string](self) }

// Encodes "concat_ws(?, A, B, ...)". Null operands are skipped.
func ConcatWs[A sqlbx.Text](sep string, vals ...sqlbx.Expr[A]) sqlbx.Expr[string] {
	return sqlbx.Fn[string](`concat_ws`, append([]any{sep}, anys(vals)...)...)
}
