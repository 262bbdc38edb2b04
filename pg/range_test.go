package pg

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mitranim/sqlbx"
	"github.com/shopspring/decimal"
)

func TestRange_Value(t *testing.T) {
	test := func(exp any, val driver.Valuer) {
		t.Helper()
		out, err := val.Value()
		noErr(t, err)
		eq(t, exp, out)
	}

	test(nil, Range[int32]{})
	test(`[1,10)`, RangeOf[int32](1, 10))
	test(`[1,10)`, RangeOf[int64](1, 10))
	test(`empty`, EmptyRange[int32]())
	test(`[1,)`, RangeOf[int64](1, 0).ToUnbounded())
	test(`(,10)`, RangeOf[int64](0, 10).FromUnbounded())
}

func TestRange_Scan(t *testing.T) {
	t.Run(`int`, func(t *testing.T) {
		var val Range[int32]

		noErr(t, val.Scan(`[1,10)`))
		eq(t, RangeOf[int32](1, 10).Range, val.Range)

		noErr(t, val.Scan([]byte(`empty`)))
		eq(t, true, val.IsEmpty())

		noErr(t, val.Scan(`[5,)`))
		eq(t, RangeOf[int32](5, 0).ToUnbounded().Range, val.Range)

		noErr(t, val.Scan(nil))
		eq(t, false, val.Valid)
	})

	t.Run(`invalid`, func(t *testing.T) {
		var val Range[int32]
		errs(t, sqlbx.ErrInvalidInput, val.Scan(`[1,`))
		errs(t, sqlbx.ErrInvalidInput, val.Scan(10))
	})
}

func TestRange_roundtrip(t *testing.T) {
	t.Run(`numeric`, func(t *testing.T) {
		src := RangeOf(
			NumericOf(decimal.RequireFromString(`1.5`)),
			NumericOf(decimal.RequireFromString(`20.25`)),
		)

		text, err := src.Value()
		noErr(t, err)

		var out Range[pgtype.Numeric]
		noErr(t, out.Scan(text))

		eq(t, true, DecimalOf(out.Lower).Equal(decimal.RequireFromString(`1.5`)))
		eq(t, true, DecimalOf(out.Upper).Equal(decimal.RequireFromString(`20.25`)))
		eq(t, src.LowerType, out.LowerType)
		eq(t, src.UpperType, out.UpperType)
	})

	t.Run(`tstzrange`, func(t *testing.T) {
		lower := time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC)
		upper := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

		text, err := RangeOf(lower, upper).Value()
		noErr(t, err)

		var out Range[time.Time]
		noErr(t, out.Scan(text))
		eq(t, true, lower.Equal(out.Lower))
		eq(t, true, upper.Equal(out.Upper))
	})

	t.Run(`daterange`, func(t *testing.T) {
		lower := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		upper := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)

		src := RangeOf(lower, upper).WithOid(pgtype.DaterangeOID)
		text, err := src.Value()
		noErr(t, err)
		eq(t, `[2020-01-01,2020-02-01)`, text)

		out := Range[time.Time]{}.WithOid(pgtype.DaterangeOID)
		noErr(t, out.Scan(text))
		eq(t, true, lower.Equal(out.Lower))
		eq(t, true, upper.Equal(out.Upper))
	})
}

func TestRange_oid(t *testing.T) {
	eq(t, uint32(pgtype.Int4rangeOID), Range[int32]{}.TypeOid())
	eq(t, uint32(pgtype.Int8rangeOID), Range[int64]{}.TypeOid())
	eq(t, uint32(pgtype.NumrangeOID), Range[pgtype.Numeric]{}.TypeOid())
	eq(t, uint32(pgtype.DaterangeOID), Range[pgtype.Date]{}.TypeOid())
	eq(t, uint32(pgtype.TsrangeOID), Range[pgtype.Timestamp]{}.TypeOid())
	eq(t, uint32(pgtype.TstzrangeOID), Range[time.Time]{}.TypeOid())
	eq(t, uint32(pgtype.DaterangeOID), Range[time.Time]{}.WithOid(pgtype.DaterangeOID).TypeOid())
	eq(t, uint32(0), Range[string]{}.TypeOid())

	_, err := RangeOf(`a`, `b`).Value()
	errs(t, sqlbx.ErrTypeMismatch, err)

	panics(t, `unable to infer range type`, func() { RangeArg(RangeOf(`a`, `b`)) })
}

func TestDecimal(t *testing.T) {
	val := decimal.RequireFromString(`-123.456`)
	eq(t, true, DecimalOf(NumericOf(val)).Equal(val))
	eq(t, decimal.Zero, DecimalOf(pgtype.Numeric{}))
	eq(t, decimal.Zero, DecimalOf(pgtype.Numeric{NaN: true, Valid: true}))
}

func TestRangeExprs(t *testing.T) {
	during := sqlbx.Col[Range[time.Time]](`during`)
	at := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	testExpr(
		t,
		rei(`tstzrange($1, null, '[)')`, at),
		TstzRange(sqlbx.Arg(at), Unbounded[time.Time]()),
	)

	testExpr(
		t,
		rei(`daterange($1, $2, '[)')`, at, at),
		DateRange(sqlbx.Arg(at), sqlbx.Arg(at)),
	)

	testExpr(
		t,
		rei(`tsrange("start", "end", '[)')`),
		TsRange(sqlbx.Col[time.Time](`start`), sqlbx.Col[time.Time](`end`)),
	)

	testExpr(
		t,
		rei(`int4range($1, $2, '[)')`, int32(1), int32(10)),
		Int4Range(sqlbx.Arg[int32](1), sqlbx.Arg[int32](10)),
	)

	testExpr(
		t,
		rei(`int8range($1, $2, '[)')`, int64(1), int64(10)),
		Int8Range(sqlbx.Arg[int64](1), sqlbx.Arg[int64](10)),
	)

	testExpr(
		t,
		rei(`numrange($1, $2, '[)')`, decimal.NewFromInt(1), decimal.NewFromInt(2)),
		NumRange(sqlbx.Arg(decimal.NewFromInt(1)), sqlbx.Arg(decimal.NewFromInt(2))),
	)

	ints := RangeOf[int32](1, 10)
	testExpr(t, rei(`cast($1 as int4range)`, ints), RangeArg(ints))

	dates := RangeOf(at, at).WithOid(pgtype.DaterangeOID)
	testExpr(t, rei(`cast($1 as daterange)`, dates), RangeArg(dates))

	other := TstzRange(sqlbx.Arg(at), Unbounded[time.Time]())

	testExpr(t, rei(`("during" @> tstzrange($1, null, '[)'))`, at), RangeContains(during, other))
	testExpr(t, rei(`("during" @> now())`), RangeContainsElem(during, Now()))
	testExpr(t, rei(`("during" <@ tstzrange($1, null, '[)'))`, at), RangeContainedBy(during, other))
	testExpr(t, rei(`("during" && tstzrange($1, null, '[)'))`, at), RangeOverlaps(during, other))
	testExpr(t, rei(`("during" + tstzrange($1, null, '[)'))`, at), RangeUnion(during, other))
	testExpr(t, rei(`("during" * tstzrange($1, null, '[)'))`, at), RangeIntersect(during, other))
	testExpr(t, rei(`lower("during")`), Lower(during))
	testExpr(t, rei(`upper("during")`), Upper(during))
	testExpr(t, rei(`isempty("during")`), IsEmpty(during))
}
