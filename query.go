package sqlbx

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mitranim/sqlb"
)

/*
Client-provided query parameters for listing endpoints: a filter in JEL
format (see `sqlb.Jel`), an ordering (see `sqlb.ParserOrds`), and a page. Both
the filter and the ordering are validated against a reference struct type,
which must be set before decoding, usually via `QueryFor`:

	query := sqlbx.QueryFor(Person{})
	err := json.Unmarshal([]byte(`{
		"where": ["=", "name", ["name", "Alice"]],
		"order": ["name desc"],
		"limit": 10
	}`), &query)

Implements `sqlb.Expr`, encoding the "where", "order by", "limit" and "offset"
clauses, omitting empty parts:

	where ("name" = $1) order by "name" desc limit $2

The page is normalized via `Page.Norm` when encoding.
*/
type Query struct {
	Where sqlb.Jel        `json:"where"`
	Order sqlb.ParserOrds `json:"order"`
	Page
}

/*
Shortcut for making an empty query for the type of the given value. The input
is used only as a type carrier.
*/
func QueryFor(typ any) (out Query) {
	out.OrType(typ)
	return
}

// Sets the reference type of the filter and the ordering, if not already set.
func (self *Query) OrType(typ any) {
	self.Where.OrType(typ)
	self.Order.OrType(typ)
}

/*
Decodes URL query parameters: "where" as JEL JSON, "order" as one or more
ordering strings, "limit" and "offset" as integers. Absent parameters are left
unchanged.

	?where=["=","name",["name","Alice"]]&order=name+desc&order=id&limit=10
*/
func (self *Query) ParseValues(src url.Values) (err error) {
	defer rec(&err)

	if src.Has(`where`) {
		try(self.Where.Parse(src.Get(`where`)))
	}
	if src.Has(`order`) {
		try(self.Order.ParseSlice(src[`order`]))
	}
	if src.Has(`limit`) {
		self.Limit = parseUint(`limit`, src.Get(`limit`))
	}
	if src.Has(`offset`) {
		self.Offset = parseUint(`offset`, src.Get(`offset`))
	}
	return
}

/*
Verifies that the filter is valid JEL for the reference type by encoding it.
Ordering is validated during decoding, and doesn't need this.
*/
func (self Query) Validate() error {
	if !self.HasWhere() {
		return nil
	}

	var bui sqlb.Bui
	err := bui.CatchExprs(self.Where)
	if err != nil {
		return ErrInvalidInput.During(`validating query filter`).Because(err)
	}
	return nil
}

// True if the filter is non-empty. A JSON null filter counts as empty.
func (self Query) HasWhere() bool {
	text := strings.TrimSpace(self.Where.Text)
	return text != `` && text != `null`
}

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Query) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}

	if self.HasWhere() {
		bui.Str(`where`)
		bui.Set(self.Where.AppendExpr(bui.Get()))
	}
	appendSpaced(&bui, self.Order.Ords)
	appendSpaced(&bui, self.Page.Norm())

	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Query) AppendTo(text []byte) []byte { return exprAppend(self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Query) String() string { return exprString(self) }

func parseUint(key, src string) uint64 {
	val, err := strconv.ParseUint(src, 10, 64)
	if err != nil {
		panic(ErrInvalidInput.During(`decoding URL query`).Because(
			errf(`invalid %q: %w`, key, err),
		))
	}
	return val
}
