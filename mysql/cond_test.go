package mysql

import (
	"testing"

	"github.com/mitranim/sqlbx"
)

func TestIfNull(t *testing.T) {
	testExpr(t, rei("ifnull(`nick`, `name`)"), IfNull(Col[*string](`nick`), Col[string](`name`)))
	testExpr(t, rei("ifnull(`nick`, ?)", `anon`), IfNull(Col[*string](`nick`), sqlbx.Arg(`anon`)))
}

func TestIf(t *testing.T) {
	testExpr(
		t,
		rei("if((`age` >= ?), ?, ?)", 18, `adult`, `minor`),
		If(sqlbx.Gte(Col[int](`age`), sqlbx.Arg(18)), sqlbx.Arg(`adult`), sqlbx.Arg(`minor`)),
	)
}

func TestNullSafeEq(t *testing.T) {
	nick := Col[*string](`nick`)

	testExpr(t, rei("(`nick` <=> ?)", (*string)(nil)), NullSafeEq(nick, sqlbx.Arg[*string](nil)))
	testExpr(t, rei("(not (`nick` <=> `alias`))"), sqlbx.Not(NullSafeEq(nick, Col[*string](`alias`))))
}
