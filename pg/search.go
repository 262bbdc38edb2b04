package pg

import (
	"database/sql"
	"database/sql/driver"
	"strings"

	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Text search configuration used by the package-level search functions such as
`ToTsvector`. Read at the time of building an expression, not at the time of
encoding it. To use a specific configuration, call the methods of `TsConfig`.
*/
var DefaultTsConfig = `english`

/*
Name of a text search configuration such as "english" or "simple". Encoded as
a parameter cast to "regconfig". An empty config is omitted from function
calls, making Postgres use the "default_text_search_config" setting.
*/
type TsConfig string

// Text representation of a Postgres "tsvector".
type Tsvector string

// Text representation of a Postgres "tsquery".
type Tsquery string

var (
	_ = driver.Valuer(Tsvector(``))
	_ = sql.Scanner((*Tsvector)(nil))
)

// Implement `driver.Valuer`.
func (self Tsvector) Value() (driver.Value, error) { return string(self), nil }

// Implement `sql.Scanner`. Null is scanned as an empty vector.
func (self *Tsvector) Scan(src any) error {
	text, _, err := scanText(`tsvector`, src)
	if err != nil {
		return err
	}
	*self = Tsvector(text)
	return nil
}

/*
Returns the lexemes in their original order, without positions and weights.
Handles quoted lexemes with escaped quotes:

	Tsvector(`'cat':3 'fat':2,4 'it''s':1`).Lexemes()
	-> []string{`cat`, `fat`, `it's`}
*/
func (self Tsvector) Lexemes() []string {
	var out []string
	src := string(self)

	for len(src) > 0 {
		src = strings.TrimLeft(src, " ")
		if src == `` {
			break
		}

		if src[0] != '\'' {
			ind := strings.IndexByte(src, ' ')
			if ind < 0 {
				ind = len(src)
			}
			out = append(out, stripLexemePos(src[:ind]))
			src = src[ind:]
			continue
		}

		var buf strings.Builder
		ind := 1
		for ind < len(src) {
			char := src[ind]
			if char == '\'' && ind+1 < len(src) && src[ind+1] == '\'' {
				buf.WriteByte('\'')
				ind += 2
				continue
			}
			if char == '\'' {
				ind++
				break
			}
			buf.WriteByte(char)
			ind++
		}
		out = append(out, buf.String())

		src = src[ind:]
		next := strings.IndexByte(src, ' ')
		if next < 0 {
			next = len(src)
		}
		src = src[next:]
	}
	return out
}

func stripLexemePos(src string) string {
	ind := strings.IndexByte(src, ':')
	if ind >= 0 {
		return src[:ind]
	}
	return src
}

func (self TsConfig) args(vals ...any) []any {
	if self == `` {
		return vals
	}
	return append([]any{sqlbx.Cast[string](string(self), `regconfig`)}, vals...)
}

// Encodes "to_tsvector(cast($1 as regconfig), A)".
func (self TsConfig) ToTsvector(doc sqlb.Expr) sqlbx.Expr[Tsvector] {
	return sqlbx.Fn[Tsvector](`to_tsvector`, self.args(doc)...)
}

/*
Encodes "to_tsquery(cast($1 as regconfig), A)". The query must use the tsquery
syntax. Strings become parameters, expressions are inlined.
*/
func (self TsConfig) ToTsquery(query any) sqlbx.Expr[Tsquery] {
	return sqlbx.Fn[Tsquery](`to_tsquery`, self.args(query)...)
}

// Encodes "plainto_tsquery(cast($1 as regconfig), A)".
func (self TsConfig) PlainToTsquery(query any) sqlbx.Expr[Tsquery] {
	return sqlbx.Fn[Tsquery](`plainto_tsquery`, self.args(query)...)
}

// Encodes "phraseto_tsquery(cast($1 as regconfig), A)".
func (self TsConfig) PhraseToTsquery(query any) sqlbx.Expr[Tsquery] {
	return sqlbx.Fn[Tsquery](`phraseto_tsquery`, self.args(query)...)
}

/*
Encodes "websearch_to_tsquery(cast($1 as regconfig), A)". Accepts unquoted
words, quoted phrases, "or", and "-" for negation. Never fails on user input.
*/
func (self TsConfig) WebsearchToTsquery(query any) sqlbx.Expr[Tsquery] {
	return sqlbx.Fn[Tsquery](`websearch_to_tsquery`, self.args(query)...)
}

/*
Encodes "ts_headline(cast($1 as regconfig), doc, query)", with an additional
options parameter when the options are non-empty.
*/
func (self TsConfig) TsHeadline(doc sqlb.Expr, query sqlbx.Expr[Tsquery], opts string) sqlbx.Expr[string] {
	args := self.args(doc, query)
	if opts != `` {
		args = append(args, opts)
	}
	return sqlbx.Fn[string](`ts_headline`, args...)
}

/*
Shortcut for matching a document against a web search query:

	(to_tsvector(cast($1 as regconfig), doc) @@ websearch_to_tsquery(cast($2 as regconfig), $3))
*/
func (self TsConfig) Search(doc sqlb.Expr, query string) sqlbx.Expr[bool] {
	return Match(self.ToTsvector(doc), self.WebsearchToTsquery(query))
}

// Same as `TsConfig.ToTsvector` with `DefaultTsConfig`.
func ToTsvector(doc sqlb.Expr) sqlbx.Expr[Tsvector] {
	return TsConfig(DefaultTsConfig).ToTsvector(doc)
}

// Same as `TsConfig.ToTsquery` with `DefaultTsConfig`.
func ToTsquery(query any) sqlbx.Expr[Tsquery] {
	return TsConfig(DefaultTsConfig).ToTsquery(query)
}

// Same as `TsConfig.PlainToTsquery` with `DefaultTsConfig`.
func PlainToTsquery(query any) sqlbx.Expr[Tsquery] {
	return TsConfig(DefaultTsConfig).PlainToTsquery(query)
}

// Same as `TsConfig.PhraseToTsquery` with `DefaultTsConfig`.
func PhraseToTsquery(query any) sqlbx.Expr[Tsquery] {
	return TsConfig(DefaultTsConfig).PhraseToTsquery(query)
}

// Same as `TsConfig.WebsearchToTsquery` with `DefaultTsConfig`.
func WebsearchToTsquery(query any) sqlbx.Expr[Tsquery] {
	return TsConfig(DefaultTsConfig).WebsearchToTsquery(query)
}

// Same as `TsConfig.TsHeadline` with `DefaultTsConfig`.
func TsHeadline(doc sqlb.Expr, query sqlbx.Expr[Tsquery], opts string) sqlbx.Expr[string] {
	return TsConfig(DefaultTsConfig).TsHeadline(doc, query, opts)
}

// Same as `TsConfig.Search` with `DefaultTsConfig`.
func Search(doc sqlb.Expr, query string) sqlbx.Expr[bool] {
	return TsConfig(DefaultTsConfig).Search(doc, query)
}

// Encodes "(A @@ B)".
func Match(doc sqlbx.Expr[Tsvector], query sqlbx.Expr[Tsquery]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`@@`, doc, query)
}

// Encodes "ts_rank(A, B)".
func TsRank(doc sqlbx.Expr[Tsvector], query sqlbx.Expr[Tsquery]) sqlbx.Expr[float32] {
	return sqlbx.Fn[float32](`ts_rank`, doc, query)
}

// Encodes "ts_rank_cd(A, B)".
func TsRankCd(doc sqlbx.Expr[Tsvector], query sqlbx.Expr[Tsquery]) sqlbx.Expr[float32] {
	return sqlbx.Fn[float32](`ts_rank_cd`, doc, query)
}

/*
Encodes "setweight(A, $1)". The weight must be one of "A", "B", "C", "D",
otherwise this panics with `sqlbx.ErrInvalidInput`.
*/
func Setweight(doc sqlbx.Expr[Tsvector], weight string) sqlbx.Expr[Tsvector] {
	switch weight {
	case `A`, `B`, `C`, `D`:
	default:
		panic(sqlbx.ErrInvalidInput.During(`building setweight`).Because(
			errf(`invalid weight %q, expected one of A, B, C, D`, weight),
		))
	}
	return sqlbx.Fn[Tsvector](`setweight`, doc, weight)
}

// Encodes "(A || B || ...)". A single operand is returned as-is.
func TsConcat(head sqlbx.Expr[Tsvector], tail ...sqlbx.Expr[Tsvector]) sqlbx.Expr[Tsvector] {
	if len(tail) == 0 {
		return head
	}
	return sqlbx.Infix[Tsvector](`||`, append([]any{head}, anys(tail)...)...)
}
