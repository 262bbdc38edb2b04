package pg

import (
	"testing"

	"github.com/mitranim/sqlbx"
)

var (
	testBody = sqlbx.Col[string](`body`)
	testDoc  = sqlbx.Col[Tsvector](`doc`)
)

func TestToTsvector(t *testing.T) {
	testExpr(t, rei(`to_tsvector(cast($1 as regconfig), "body")`, `english`), ToTsvector(testBody))
	testExpr(t, rei(`to_tsvector(cast($1 as regconfig), "body")`, `simple`), TsConfig(`simple`).ToTsvector(testBody))
	testExpr(t, rei(`to_tsvector("body")`), TsConfig(``).ToTsvector(testBody))
}

func TestDefaultTsConfig(t *testing.T) {
	prev := DefaultTsConfig
	defer func() { DefaultTsConfig = prev }()

	DefaultTsConfig = `french`
	testExpr(t, rei(`to_tsvector(cast($1 as regconfig), "body")`, `french`), ToTsvector(testBody))
}

func TestTsquery(t *testing.T) {
	testExpr(
		t,
		rei(`to_tsquery(cast($1 as regconfig), $2)`, `english`, `fat & cat`),
		ToTsquery(`fat & cat`),
	)

	testExpr(
		t,
		rei(`plainto_tsquery(cast($1 as regconfig), $2)`, `english`, `fat cats`),
		PlainToTsquery(`fat cats`),
	)

	testExpr(
		t,
		rei(`phraseto_tsquery(cast($1 as regconfig), $2)`, `english`, `fat cats`),
		PhraseToTsquery(`fat cats`),
	)

	testExpr(
		t,
		rei(`websearch_to_tsquery(cast($1 as regconfig), $2)`, `english`, `"fat cats" -dogs`),
		WebsearchToTsquery(`"fat cats" -dogs`),
	)

	testExpr(
		t,
		rei(`plainto_tsquery(cast($1 as regconfig), "query")`, `simple`),
		TsConfig(`simple`).PlainToTsquery(sqlbx.Col[string](`query`)),
	)
}

func TestMatch(t *testing.T) {
	testExpr(
		t,
		rei(`("doc" @@ to_tsquery(cast($1 as regconfig), $2))`, `english`, `cat`),
		Match(testDoc, ToTsquery(`cat`)),
	)
}

func TestSearch(t *testing.T) {
	testExpr(
		t,
		rei(
			`(to_tsvector(cast($1 as regconfig), "body") @@ websearch_to_tsquery(cast($2 as regconfig), $3))`,
			`english`, `english`, `cat`,
		),
		Search(testBody, `cat`),
	)

	testExpr(
		t,
		rei(`(to_tsvector("body") @@ websearch_to_tsquery($1))`, `cat`),
		TsConfig(``).Search(testBody, `cat`),
	)
}

func TestTsRank(t *testing.T) {
	query := TsConfig(``).ToTsquery(`cat`)

	testExpr(t, rei(`ts_rank("doc", to_tsquery($1))`, `cat`), TsRank(testDoc, query))
	testExpr(t, rei(`ts_rank_cd("doc", to_tsquery($1))`, `cat`), TsRankCd(testDoc, query))
}

func TestTsHeadline(t *testing.T) {
	query := TsConfig(``).ToTsquery(`cat`)

	testExpr(
		t,
		rei(`ts_headline(cast($1 as regconfig), "body", to_tsquery($2))`, `english`, `cat`),
		TsHeadline(testBody, query, ``),
	)

	testExpr(
		t,
		rei(`ts_headline("body", to_tsquery($1), $2)`, `cat`, `MaxWords=10`),
		TsConfig(``).TsHeadline(testBody, query, `MaxWords=10`),
	)
}

func TestSetweight(t *testing.T) {
	testExpr(t, rei(`setweight("doc", $1)`, `A`), Setweight(testDoc, `A`))
	panics(t, `invalid weight "E"`, func() { Setweight(testDoc, `E`) })
}

func TestTsConcat(t *testing.T) {
	testExpr(t, rei(`"doc"`), TsConcat(testDoc))

	testExpr(
		t,
		rei(`("doc" || setweight("title", $1))`, `A`),
		TsConcat(testDoc, Setweight(sqlbx.Col[Tsvector](`title`), `A`)),
	)
}

func TestTsvector(t *testing.T) {
	t.Run(`lexemes`, func(t *testing.T) {
		eq(t, []string(nil), Tsvector(``).Lexemes())
		eq(t, []string{`cat`, `fat`, `it's`}, Tsvector(`'cat':3 'fat':2,4 'it''s':1`).Lexemes())
		eq(t, []string{`a b`, `c`}, Tsvector(`'a b' 'c':1A`).Lexemes())
		eq(t, []string{`cat`, `dog`}, Tsvector(`cat:1 dog`).Lexemes())
	})

	t.Run(`scan`, func(t *testing.T) {
		var val Tsvector
		noErr(t, val.Scan([]byte(`'cat':1`)))
		eq(t, Tsvector(`'cat':1`), val)

		noErr(t, val.Scan(nil))
		eq(t, Tsvector(``), val)

		errs(t, sqlbx.ErrInvalidInput, val.Scan(10))
	})

	t.Run(`value`, func(t *testing.T) {
		val, err := Tsvector(`'cat':1`).Value()
		noErr(t, err)
		eq(t, `'cat':1`, val)
	})
}
