package pg

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Go representation of a Postgres interval, with separate months, days and
microseconds, which matches the storage format of the database. Implements
`driver.Valuer` and `sql.Scanner` via the text format.
*/
type Interval = pgtype.Interval

/*
Converts a duration to an interval. The entire duration is stored as
microseconds, truncating any sub-microsecond remainder.
*/
func IntervalOf(val time.Duration) Interval {
	return Interval{Microseconds: val.Microseconds(), Valid: true}
}

/*
Arguments of "make_interval". Zero fields are omitted from the encoded call,
and Postgres defaults them to zero.
*/
type IntervalParts struct {
	Years  int
	Months int
	Weeks  int
	Days   int
	Hours  int
	Mins   int
	Secs   float64
}

/*
Encodes "make_interval" with named arguments for non-zero fields:

	MakeInterval(IntervalParts{Days: 1, Hours: 2})
	-> make_interval(days => $1, hours => $2)
*/
func MakeInterval(val IntervalParts) sqlbx.Expr[Interval] {
	var args []any
	add := func(name string, val any, ok bool) {
		if ok {
			args = append(args, sqlbx.Words{lit(name), lit(`=>`), val})
		}
	}

	add(`years`, val.Years, val.Years != 0)
	add(`months`, val.Months, val.Months != 0)
	add(`weeks`, val.Weeks, val.Weeks != 0)
	add(`days`, val.Days, val.Days != 0)
	add(`hours`, val.Hours, val.Hours != 0)
	add(`mins`, val.Mins, val.Mins != 0)
	add(`secs`, val.Secs, val.Secs != 0)

	return sqlbx.Fn[Interval](`make_interval`, args...)
}

// Encodes "cast($1 as interval)" with the given interval as the argument.
func IntervalArg(val Interval) sqlbx.Expr[Interval] {
	return sqlbx.Cast[Interval](val, TypeInterval.Name)
}

// Encodes "now()": the start time of the current transaction.
func Now() sqlbx.Expr[time.Time] { return sqlbx.Fn[time.Time](`now`) }

// Encodes "age(A, B)".
func Age(val, other sqlbx.Expr[time.Time]) sqlbx.Expr[Interval] {
	return sqlbx.Fn[Interval](`age`, val, other)
}

/*
Encodes "date_trunc($1, A)". The field is a parameter, such as "day" or
"month". Postgres validates it.
*/
func DateTrunc(field string, val sqlbx.Expr[time.Time]) sqlbx.Expr[time.Time] {
	return sqlbx.Fn[time.Time](`date_trunc`, field, val)
}

/*
Encodes "extract(<field> from A)". The field is an SQL keyword and can't be a
parameter, so it's validated against the fields supported by Postgres. Unknown
fields cause a panic with `sqlbx.ErrInvalidInput`.
*/
func Extract(field string, val sqlb.Expr) sqlbx.Expr[float64] {
	_, ok := extractFields[field]
	if !ok {
		panic(sqlbx.ErrInvalidInput.During(`building extract`).Because(
			errf(`unknown field %q`, field),
		))
	}
	return sqlbx.Fn[float64](`extract`, sqlbx.Words{lit(field), lit(`from`), val})
}

var extractFields = map[string]struct{}{
	`century`:         {},
	`day`:             {},
	`decade`:          {},
	`dow`:             {},
	`doy`:             {},
	`epoch`:           {},
	`hour`:            {},
	`isodow`:          {},
	`isoyear`:         {},
	`julian`:          {},
	`microseconds`:    {},
	`millennium`:      {},
	`milliseconds`:    {},
	`minute`:          {},
	`month`:           {},
	`quarter`:         {},
	`second`:          {},
	`timezone`:        {},
	`timezone_hour`:   {},
	`timezone_minute`: {},
	`week`:            {},
	`year`:            {},
}

// Encodes "(now() - cast($1 as interval))": the time at the given interval before now.
func Ago(val Interval) sqlbx.Expr[time.Time] {
	return sqlbx.Infix[time.Time](`-`, Now(), IntervalArg(val))
}
