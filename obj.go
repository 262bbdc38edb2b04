package sqlbx

import (
	"github.com/mitranim/sqlb"
)

// Key-value pair in an `Obj`.
type Entry struct {
	Key string
	Val any
}

/*
Ordered list of key-value pairs used for building JSON objects in SQL, such as
Postgres "json_build_object" or MySQL "json_object". Unlike a Go map, the order
of keys is preserved, and the output is deterministic.

When used as a standalone expression, `Obj` is encoded as a comma-separated
list of alternating keys and values, where keys are ordinal parameters and
values follow the usual rules: expressions are inlined, other values become
ordinal parameters:

	Obj{{`id`, Col[int](`id`)}, {`kind`, `person`}}
	-> $1, "id", $2, $3

Dialect packages may encode keys differently.
*/
type Obj []Entry

var _ = sqlb.Expr(Obj(nil))

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Obj) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}

	for ind, val := range self {
		if ind > 0 {
			appendStr(&bui, `, `)
		}
		bui.Arg(val.Key)
		appendStr(&bui, `, `)
		appendAny(&bui, val.Val)
	}

	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Obj) AppendTo(text []byte) []byte { return exprAppend(self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Obj) String() string { return exprString(self) }

// Returns the keys in their original order.
func (self Obj) Keys() []string {
	if self == nil {
		return nil
	}
	out := make([]string, len(self))
	for ind, val := range self {
		out[ind] = val.Key
	}
	return out
}

// Appends an entry, returning the modified copy.
func (self Obj) With(key string, val any) Obj {
	out := make(Obj, len(self), len(self)+1)
	copy(out, self)
	return append(out, Entry{key, val})
}
