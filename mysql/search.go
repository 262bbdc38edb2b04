package mysql

import (
	"github.com/mitranim/sqlbx"
)

// Search modifier used by `MatchAgainst`.
type Mode byte

const (
	ModeNatural Mode = iota
	ModeBoolean
	ModeExpansion
)

// Returns the SQL modifier. Panics for unknown modes.
func (self Mode) String() string {
	switch self {
	case ModeNatural:
		return `in natural language mode`
	case ModeBoolean:
		return `in boolean mode`
	case ModeExpansion:
		return `with query expansion`
	default:
		panic(sqlbx.ErrInvalidInput.During(`encoding full-text search mode`).Because(
			errf(`unknown mode %d`, byte(self)),
		))
	}
}

/*
Encodes a full-text search over columns covered by a "fulltext" index. The
result is the relevance score, which is positive for matching rows and can be
used both for filtering and ordering:

	MatchAgainst([]string{`title`, `body`}, `pizza`, ModeBoolean)
	-> match(`title`, `body`) against (? in boolean mode)

Use `Matches` for a boolean condition.
*/
func MatchAgainst(cols []string, query string, mode Mode) sqlbx.Expr[float64] {
	if len(cols) == 0 {
		panic(sqlbx.ErrInvalidInput.During(`encoding full-text search`).Because(
			errf(`expected at least one column`),
		))
	}

	idents := make([]any, len(cols))
	for ind, val := range cols {
		idents[ind] = Ident(val)
	}

	return sqlbx.Typed[float64](sqlbx.Words{
		sqlbx.Fn[any](`match`, idents...),
		lit(`against`),
		sqlbx.Tuple{sqlbx.Words{query, lit(mode.String())}},
	})
}

// Same as `MatchAgainst`, typed as a condition for "where" clauses.
func Matches(cols []string, query string, mode Mode) sqlbx.Expr[bool] {
	return sqlbx.Retype[bool](MatchAgainst(cols, query, mode))
}
