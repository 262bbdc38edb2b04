package mysql

import (
	"fmt"
	"strings"

	"github.com/mitranim/sqlb"
)

func errf(pat string, args ...any) error { return fmt.Errorf(pat, args...) }

func anys[A any](vals []A) []any {
	if vals == nil {
		return nil
	}
	out := make([]any, len(vals))
	for ind, val := range vals {
		out[ind] = val
	}
	return out
}

// Encodes the SQL literal verbatim. Must be used only for trusted text.
func lit(val string) sqlb.Str { return sqlb.Str(val) }

var stringReplacer = strings.NewReplacer(`\`, `\\`, `'`, `''`)

/*
Encodes a MySQL string literal. Used only where MySQL syntax doesn't allow
placeholders, such as the "separator" of "group_concat".
*/
func quoteString(val string) string {
	return `'` + stringReplacer.Replace(val) + `'`
}

func appendStr(bui *sqlb.Bui, val string) {
	bui.Text = append(bui.Text, val...)
}

func appendAny(bui *sqlb.Bui, val any) {
	impl, _ := val.(sqlb.Expr)
	if impl != nil {
		bui.Set(impl.AppendExpr(bui.Get()))
		return
	}
	bui.Arg(val)
}

// Appends a space and the expression, unless the expression is empty.
func appendSpaced(bui *sqlb.Bui, val sqlb.Expr) {
	if val == nil {
		return
	}
	size := len(bui.Text)
	bui.Space()
	spaced := len(bui.Text)
	bui.Set(val.AppendExpr(bui.Get()))
	if len(bui.Text) == spaced {
		bui.Text = bui.Text[:size]
	}
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}
