package sqlbx

import (
	"github.com/mitranim/sqlb"
)

/*
Keyset pagination, also known as "seek method". Given an ordering and the
values of the ordering columns in the last row of the previous page, encodes
the condition that selects the rows after that row:

	Seek{
		Ords: []sqlb.Ord{{Path: sqlb.Path{`a`}}, {Path: sqlb.Path{`b`}, Dir: sqlb.DirDesc}},
		Vals: []any{10, 20},
	}

	->

	("a" > $1 or ("a" = $1 and "b" < $2))

Each value becomes a single ordinal parameter, referenced repeatedly. Columns
without a direction are ascending. Unlike row comparisons such as
"(a, b) > ($1, $2)", this supports mixed directions. Nulls are not considered:
ordering columns should be non-nullable and unique in combination, which is
usually achieved by ending the ordering with the primary key.

An empty seek encodes "true", which is the condition for the first page. A
mismatch between the lengths of `.Ords` and `.Vals` causes a panic when
encoding; use `.Validate` to detect it in advance.
*/
type Seek struct {
	Ords []sqlb.Ord
	Vals []any
}

// Returns `ErrInvalidInput` if the seek can't be encoded.
func (self Seek) Validate() error {
	if len(self.Ords) != len(self.Vals) {
		return ErrInvalidInput.During(`validating seek`).Because(
			errf(`found %v orderings but %v values`, len(self.Ords), len(self.Vals)),
		)
	}
	for ind, ord := range self.Ords {
		if ord.IsEmpty() {
			return ErrInvalidInput.During(`validating seek`).Because(
				errf(`empty path in ordering %v`, ind),
			)
		}
	}
	return nil
}

/*
Ordering clause consistent with the seek condition:

	order by "a" asc, "b" desc
*/
func (self Seek) OrderBy() sqlb.Ords {
	out := make(sqlb.Ords, 0, len(self.Ords))
	for _, ord := range self.Ords {
		out = append(out, ord)
	}
	return out
}

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Seek) AppendExpr(text []byte, args []any) ([]byte, []any) {
	try(self.Validate())

	bui := sqlb.Bui{Text: text, Args: args}

	if len(self.Ords) == 0 {
		bui.Str(`true`)
		return bui.Get()
	}

	params := make([]sqlb.OrdinalParam, len(self.Vals))

	bui.Str(`(`)
	for ind := range self.Ords {
		if ind > 0 {
			appendStr(&bui, ` or (`)
		}
		for prev := 0; prev < ind; prev++ {
			self.appendCond(&bui, params, prev, `=`)
			appendStr(&bui, ` and `)
		}
		self.appendCond(&bui, params, ind, seekOp(self.Ords[ind].Dir))
		if ind > 0 {
			appendStr(&bui, `)`)
		}
	}
	appendStr(&bui, `)`)

	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Seek) AppendTo(text []byte) []byte { return exprAppend(self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Seek) String() string { return exprString(self) }

func (self Seek) appendCond(bui *sqlb.Bui, params []sqlb.OrdinalParam, ind int, op string) {
	bui.Set(self.Ords[ind].Path.AppendExpr(bui.Get()))
	appendStr(bui, ` `)
	appendStr(bui, op)
	appendStr(bui, ` `)

	val := self.Vals[ind]
	impl, _ := val.(sqlb.Expr)
	if impl != nil {
		bui.Set(impl.AppendExpr(bui.Get()))
		return
	}

	if params[ind] == 0 {
		params[ind] = bui.OrphanArg(val)
	}
	bui.OrphanParam(params[ind])
}

func seekOp(dir sqlb.Dir) string {
	if dir == sqlb.DirDesc {
		return `<`
	}
	return `>`
}
