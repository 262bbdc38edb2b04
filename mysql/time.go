package mysql

import (
	"time"

	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

// Temporal unit used in MySQL intervals and "timestampdiff".
type Unit byte

const (
	UnitMicrosecond Unit = iota + 1
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitQuarter
	UnitYear
)

// Returns the SQL keyword. Panics for unknown units.
func (self Unit) String() string {
	switch self {
	case UnitMicrosecond:
		return `microsecond`
	case UnitSecond:
		return `second`
	case UnitMinute:
		return `minute`
	case UnitHour:
		return `hour`
	case UnitDay:
		return `day`
	case UnitWeek:
		return `week`
	case UnitMonth:
		return `month`
	case UnitQuarter:
		return `quarter`
	case UnitYear:
		return `year`
	default:
		panic(sqlbx.ErrInvalidInput.During(`encoding temporal unit`).Because(
			errf(`unknown unit %d`, byte(self)),
		))
	}
}

/*
MySQL interval expression. `Val` may be an arbitrary sub-expression or an
argument:

	Interval{3, UnitDay} -> interval ? day
*/
type Interval struct {
	Val  any
	Unit Unit
}

var _ = sqlb.Expr(Interval{})

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Interval) AppendExpr(text []byte, args []any) ([]byte, []any) {
	unit := self.Unit.String()
	bui := sqlb.Bui{Text: text, Args: args}
	bui.Space()
	appendStr(&bui, `interval `)
	appendAny(&bui, self.Val)
	appendStr(&bui, ` `)
	appendStr(&bui, unit)
	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Interval) AppendTo(text []byte) []byte {
	text, _ = self.AppendExpr(text, nil)
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Interval) String() string { return string(self.AppendTo(nil)) }

// Encodes "date_add(A, interval ? <unit>)".
func DateAdd[A any](val sqlbx.Expr[A], count int, unit Unit) sqlbx.Expr[A] {
	return sqlbx.Fn[A](`date_add`, val, Interval{count, unit})
}

// Encodes "date_sub(A, interval ? <unit>)".
func DateSub[A any](val sqlbx.Expr[A], count int, unit Unit) sqlbx.Expr[A] {
	return sqlbx.Fn[A](`date_sub`, val, Interval{count, unit})
}

// Encodes "now()".
func Now() sqlbx.Expr[time.Time] { return sqlbx.Fn[time.Time](`now`) }

/*
Encodes "unix_timestamp(A)", or "unix_timestamp()" for the current time when
the input is nil.
*/
func UnixTimestamp(val sqlb.Expr) sqlbx.Expr[int64] {
	if val == nil {
		return sqlbx.Fn[int64](`unix_timestamp`)
	}
	return sqlbx.Fn[int64](`unix_timestamp`, val)
}

// Encodes "from_unixtime(A)".
func FromUnixtime(val sqlbx.Expr[int64]) sqlbx.Expr[time.Time] {
	return sqlbx.Fn[time.Time](`from_unixtime`, val)
}

// Encodes "timestampdiff(<unit>, A, B)": B minus A, truncated to the unit.
func TimestampDiff[A any](unit Unit, start, end sqlbx.Expr[A]) sqlbx.Expr[int64] {
	return sqlbx.Fn[int64](`timestampdiff`, lit(unit.String()), start, end)
}
