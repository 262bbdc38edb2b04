package sqlbx

import (
	"github.com/mitranim/sqlb"
)

/*
Default page size used by `Page.Norm` when the limit is unspecified. May be
modified at program startup.
*/
var DefaultLimit uint64 = 20

/*
Upper bound for page sizes enforced by `Page.Norm`, preventing clients from
requesting unbounded result sets. May be modified at program startup.
*/
var MaxLimit uint64 = 1000

// Name of the column added by `Paginate`.
const TotalCountCol = `total_count`

/*
Offset-based pagination. Implements `sqlb.Expr`, encoding "limit" and "offset"
as ordinal parameters, omitting zero parts:

	Page{Limit: 10, Offset: 20} -> limit $1 offset $2
	Page{Limit: 10}             -> limit $1
	Page{}                      -> (empty)

Use `.Norm` to apply `DefaultLimit` and `MaxLimit` before encoding client
input.
*/
type Page struct {
	Limit  uint64 `json:"limit"  db:"-"`
	Offset uint64 `json:"offset" db:"-"`
}

/*
Page by 1-based number and size. Page number 0 is treated as 1. The size is not
normalized.
*/
func PageNum(num, size uint64) Page {
	if num > 0 {
		num--
	}
	return Page{Limit: size, Offset: num * size}
}

// Replaces a zero limit with `DefaultLimit` and clamps it to `MaxLimit`.
func (self Page) Norm() Page {
	if self.Limit == 0 {
		self.Limit = DefaultLimit
	}
	if MaxLimit > 0 && self.Limit > MaxLimit {
		self.Limit = MaxLimit
	}
	return self
}

// Returns the following page of the same size.
func (self Page) Next() Page {
	self.Offset += self.Limit
	return self
}

// Returns the preceding page of the same size. Stops at offset 0.
func (self Page) Prev() Page {
	if self.Offset > self.Limit {
		self.Offset -= self.Limit
	} else {
		self.Offset = 0
	}
	return self
}

// Combines this page with a total row count, for responses.
func (self Page) Info(total uint64) PageInfo {
	return PageInfo{Total: total, Limit: self.Limit, Offset: self.Offset}
}

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Page) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}

	if self.Limit > 0 {
		bui.Str(`limit`)
		bui.Arg(self.Limit)
	}
	if self.Offset > 0 {
		bui.Str(`offset`)
		bui.Arg(self.Offset)
	}

	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Page) AppendTo(text []byte) []byte { return exprAppend(self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Page) String() string { return exprString(self) }

// Pagination state of a result set, typically serialized into API responses.
type PageInfo struct {
	Total  uint64 `json:"total"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

// Total number of pages. Without a limit, everything fits on one page.
func (self PageInfo) Pages() uint64 {
	if self.Total == 0 {
		return 0
	}
	if self.Limit == 0 {
		return 1
	}
	return (self.Total + self.Limit - 1) / self.Limit
}

// 1-based number of the current page.
func (self PageInfo) Num() uint64 {
	if self.Limit == 0 {
		return 1
	}
	return self.Offset/self.Limit + 1
}

// True if there are rows after the current page.
func (self PageInfo) HasNext() bool {
	return self.Limit > 0 && self.Offset+self.Limit < self.Total
}

// True if there are rows before the current page.
func (self PageInfo) HasPrev() bool { return self.Offset > 0 }

/*
Wraps an arbitrary query, adding a total row count computed with a window
function, an ordering, and a normalized page:

	select *, count(*) over () as "total_count"
	from (<query>) as _
	order by <ords>
	limit $1 offset $2

Every row of the result carries the count of all rows matched by the inner
query, ignoring limit and offset, which allows to build `PageInfo` without a
separate count query. Ords may be nil.
*/
func Paginate(query, ords sqlb.Expr, page Page) Paginated {
	return Paginated{Query: query, Ords: ords, Page: page.Norm()}
}

// Query with total count, ordering and page. See `Paginate`.
type Paginated struct {
	Query sqlb.Expr
	Ords  sqlb.Expr
	Page  Page
}

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Paginated) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}

	bui.Str(`select *, count(*) over () as`)
	bui.Set(sqlb.Ident(TotalCountCol).AppendExpr(bui.Get()))
	appendStr(&bui, ` from (`)
	appendAny(&bui, self.Query)
	appendStr(&bui, `) as _`)
	appendSpaced(&bui, self.Ords)
	appendSpaced(&bui, self.Page)

	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Paginated) AppendTo(text []byte) []byte { return exprAppend(self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Paginated) String() string { return exprString(self) }
