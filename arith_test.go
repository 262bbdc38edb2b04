package sqlbx

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestArith(t *testing.T) {
	one := Col[int](`one`)

	testExpr(t, rei(`("one" + $1)`, 10), Add(one, Arg(10)))
	testExpr(t, rei(`("one" - $1)`, 10), Sub(one, Arg(10)))
	testExpr(t, rei(`("one" * $1)`, 10), Mul(one, Arg(10)))
	testExpr(t, rei(`("one" / $1)`, 10), Div(one, Arg(10)))
	testExpr(t, rei(`("one" % $1)`, 10), Mod(one, Arg(10)))
	testExpr(t, rei(`(- "one")`), Neg(one))
	testExpr(t, rei(`abs("one")`), Abs(one))
	testExpr(t, rei(`(("one" + $1) * $2)`, 10, 20), Mul(Add(one, Arg(10)), Arg(20)))
}

func TestPlus(t *testing.T) {
	one := Col[float64](`one`)
	testExpr(t, rei(`"one"`), Plus(one))
	testExpr(t, rei(`("one" + $1 + $2)`, 1.5, 2.5), Plus(one, Arg(1.5), Arg(2.5)))
}

func TestRound(t *testing.T) {
	one := Col[float64](`one`)

	testExpr(t, rei(`round("one")`), Round(one))
	testExpr(t, rei(`ceil("one")`), Ceil(one))
	testExpr(t, rei(`floor("one")`), Floor(one))

	var out Expr[decimal.Decimal] = RoundTo(one, 2)
	testExpr(t, rei(`round(cast("one" as numeric), $1)`, 2), out)
}

func TestDecimal(t *testing.T) {
	price := Col[decimal.Decimal](`price`)
	val := decimal.RequireFromString(`1.25`)
	testExpr(t, rei(`("price" * $1)`, val), Mul(price, Arg(val)))
}

func TestAggregates(t *testing.T) {
	amount := Col[int64](`amount`)

	testExpr(t, rei(`count("amount")`), Count(amount))
	testExpr(t, rei(`count(*)`), CountAll())
	testExpr(t, rei(`count(distinct "amount")`), CountDistinct(amount))

	var sum Expr[*int64] = Sum(amount)
	testExpr(t, rei(`sum("amount")`), sum)

	var avg Expr[*decimal.Decimal] = Avg(amount)
	testExpr(t, rei(`avg("amount")`), avg)

	var least Expr[*int64] = Min(amount)
	testExpr(t, rei(`min("amount")`), least)

	var most Expr[*string] = Max(Col[string](`name`))
	testExpr(t, rei(`max("name")`), most)

	testExpr(t, rei(`coalesce(sum("amount"), $1)`, int64(0)), CoalesceTo(Arg[int64](0), Sum(amount)))
}
