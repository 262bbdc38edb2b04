package mysql

import (
	"testing"
	"time"

	"github.com/mitranim/sqlbx"
)

func TestUnit(t *testing.T) {
	eq(t, `microsecond`, UnitMicrosecond.String())
	eq(t, `day`, UnitDay.String())
	eq(t, `quarter`, UnitQuarter.String())
	eq(t, `year`, UnitYear.String())

	panics(t, `unknown unit 0`, func() { _ = Unit(0).String() })
}

func TestInterval(t *testing.T) {
	testExpr(t, rei(`interval ? day`, 3), Interval{3, UnitDay})
	testExpr(t, rei("interval `days` day"), Interval{Col[int](`days`), UnitDay})
	eq(t, `interval $1 hour`, Interval{2, UnitHour}.String())

	panics(t, `unknown unit 20`, func() { _ = Interval{1, Unit(20)}.String() })
}

func TestDateArith(t *testing.T) {
	created := Col[time.Time](`created_at`)

	testExpr(t, rei("date_add(`created_at`, interval ? day)", 3), DateAdd(created, 3, UnitDay))
	testExpr(t, rei("date_sub(`created_at`, interval ? month)", 1), DateSub(created, 1, UnitMonth))
	testExpr(t, rei(`date_sub(now(), interval ? week)`, 2), DateSub(Now(), 2, UnitWeek))

	testExpr(
		t,
		rei("(`created_at` < date_sub(now(), interval ? hour))", 24),
		sqlbx.Lt(created, DateSub(Now(), 24, UnitHour)),
	)

	testExpr(
		t,
		rei("date_add(`deleted_at`, interval ? year)", 1),
		DateAdd(Col[*time.Time](`deleted_at`), 1, UnitYear),
	)
}

func TestUnixTimestamp(t *testing.T) {
	testExpr(t, rei(`now()`), Now())
	testExpr(t, rei(`unix_timestamp()`), UnixTimestamp(nil))
	testExpr(t, rei("unix_timestamp(`created_at`)"), UnixTimestamp(Col[time.Time](`created_at`)))
	testExpr(t, rei("from_unixtime(`ts`)"), FromUnixtime(Col[int64](`ts`)))
}

func TestTimestampDiff(t *testing.T) {
	testExpr(
		t,
		rei("timestampdiff(day, `created_at`, now())"),
		TimestampDiff(UnitDay, Col[time.Time](`created_at`), Now()),
	)
}
