package pg

import (
	"database/sql"
	"database/sql/driver"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
	"github.com/shopspring/decimal"
)

/*
Go representation of a Postgres range. Embeds `pgtype.Range`, which describes
the bounds, and adds the OID of the SQL range type, which determines the text
encoding used by `Range.Value` and `Range.Scan`. When `Oid` is zero, the OID is
inferred from the element type:

	int32              -> int4range
	int64              -> int8range
	pgtype.Numeric     -> numrange
	pgtype.Date        -> daterange
	pgtype.Timestamp   -> tsrange
	time.Time          -> tstzrange
	pgtype.Timestamptz -> tstzrange

Use `Range.WithOid` for other combinations, such as `time.Time` with
"daterange". An invalid range (the zero value) is encoded as null.
*/
type Range[A any] struct {
	pgtype.Range[A]
	Oid uint32
}

var (
	_ = driver.Valuer(Range[int32]{})
	_ = sql.Scanner((*Range[int32])(nil))
)

/*
Makes a range with an inclusive lower bound and an exclusive upper bound, which
is the canonical form used by Postgres for discrete ranges.
*/
func RangeOf[A any](lower, upper A) Range[A] {
	return Range[A]{Range: pgtype.Range[A]{
		Lower:     lower,
		Upper:     upper,
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}}
}

// Makes an empty range, which contains no elements.
func EmptyRange[A any]() Range[A] {
	return Range[A]{Range: pgtype.Range[A]{
		LowerType: pgtype.Empty,
		UpperType: pgtype.Empty,
		Valid:     true,
	}}
}

// Returns a copy with the given range type OID, such as `pgtype.DaterangeOID`.
func (self Range[A]) WithOid(oid uint32) Range[A] {
	self.Oid = oid
	return self
}

// Returns a copy where the lower bound is unbounded.
func (self Range[A]) FromUnbounded() Range[A] {
	var zero A
	self.Lower = zero
	self.LowerType = pgtype.Unbounded
	return self
}

// Returns a copy where the upper bound is unbounded.
func (self Range[A]) ToUnbounded() Range[A] {
	var zero A
	self.Upper = zero
	self.UpperType = pgtype.Unbounded
	return self
}

// True if the range is valid and has no elements.
func (self Range[A]) IsEmpty() bool {
	return self.Valid && self.LowerType == pgtype.Empty
}

// Returns the explicit OID or the OID inferred from the element type.
func (self Range[A]) TypeOid() uint32 {
	if self.Oid != 0 {
		return self.Oid
	}
	return rangeOid[A]()
}

// Implement `driver.Valuer`, using the text format of the range type.
func (self Range[A]) Value() (driver.Value, error) {
	if !self.Valid {
		return nil, nil
	}

	oid, err := self.oid()
	if err != nil {
		return nil, err
	}

	out, err := pgtype.NewMap().Encode(oid, pgtype.TextFormatCode, self.Range, nil)
	if err != nil {
		return nil, sqlbx.ErrInvalidInput.During(`encoding range`).Because(err)
	}
	if out == nil {
		return nil, nil
	}
	return string(out), nil
}

// Implement `sql.Scanner`, decoding the text format of the range type.
func (self *Range[A]) Scan(src any) error {
	text, ok, err := scanText(`range`, src)
	if err != nil {
		return err
	}
	if !ok {
		self.Range = pgtype.Range[A]{}
		return nil
	}

	oid, err := self.oid()
	if err != nil {
		return err
	}

	var out pgtype.Range[A]
	err = pgtype.NewMap().Scan(oid, pgtype.TextFormatCode, []byte(text), &out)
	if err != nil {
		return errDecode(`range`, text, err)
	}
	self.Range = out
	return nil
}

func (self Range[A]) oid() (uint32, error) {
	oid := self.TypeOid()
	if oid == 0 {
		var zero A
		return 0, sqlbx.ErrTypeMismatch.During(`encoding range`).Because(
			errf(`unable to infer range type for element type %T; use Range.WithOid`, zero),
		)
	}
	return oid, nil
}

func rangeOid[A any]() uint32 {
	var zero A
	switch any(zero).(type) {
	case int32:
		return pgtype.Int4rangeOID
	case int64:
		return pgtype.Int8rangeOID
	case pgtype.Numeric:
		return pgtype.NumrangeOID
	case pgtype.Date:
		return pgtype.DaterangeOID
	case pgtype.Timestamp:
		return pgtype.TsrangeOID
	case time.Time, pgtype.Timestamptz:
		return pgtype.TstzrangeOID
	default:
		return 0
	}
}

// Converts a decimal to the element type of "numrange".
func NumericOf(val decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: val.Coefficient(), Exp: val.Exponent(), Valid: true}
}

// Inverse of `NumericOf`. Invalid or special numerics are converted to zero.
func DecimalOf(val pgtype.Numeric) decimal.Decimal {
	if !val.Valid || val.Int == nil || val.NaN || val.InfinityModifier != pgtype.Finite {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(val.Int, val.Exp)
}

// SQL null typed as `A`, used for unbounded range bounds.
func Unbounded[A any]() sqlbx.Expr[A] { return sqlbx.Typed[A](lit(`null`)) }

// Encodes "daterange(A, B, '[)')".
func DateRange(lower, upper sqlbx.Expr[time.Time]) sqlbx.Expr[Range[time.Time]] {
	return rangeFn[Range[time.Time]](`daterange`, lower, upper)
}

// Encodes "tstzrange(A, B, '[)')".
func TstzRange(lower, upper sqlbx.Expr[time.Time]) sqlbx.Expr[Range[time.Time]] {
	return rangeFn[Range[time.Time]](`tstzrange`, lower, upper)
}

// Encodes "tsrange(A, B, '[)')".
func TsRange(lower, upper sqlbx.Expr[time.Time]) sqlbx.Expr[Range[time.Time]] {
	return rangeFn[Range[time.Time]](`tsrange`, lower, upper)
}

// Encodes "int4range(A, B, '[)')".
func Int4Range(lower, upper sqlbx.Expr[int32]) sqlbx.Expr[Range[int32]] {
	return rangeFn[Range[int32]](`int4range`, lower, upper)
}

// Encodes "int8range(A, B, '[)')".
func Int8Range(lower, upper sqlbx.Expr[int64]) sqlbx.Expr[Range[int64]] {
	return rangeFn[Range[int64]](`int8range`, lower, upper)
}

/*
Encodes "numrange(A, B, '[)')". Bounds are decimals, the result is scanned
into `pgtype.Numeric` elements; see `DecimalOf`.
*/
func NumRange(lower, upper sqlbx.Expr[decimal.Decimal]) sqlbx.Expr[Range[pgtype.Numeric]] {
	return rangeFn[Range[pgtype.Numeric]](`numrange`, lower, upper)
}

func rangeFn[A any](name string, lower, upper sqlb.Expr) sqlbx.Expr[A] {
	return sqlbx.Fn[A](name, lower, upper, lit(`'[)'`))
}

/*
Encodes the given range as a parameter cast to its range type:

	RangeArg(RangeOf[int32](1, 10)) -> cast($1 as int4range)

Panics with `sqlbx.ErrTypeMismatch` if the range type can't be determined.
*/
func RangeArg[A any](val Range[A]) sqlbx.Expr[Range[A]] {
	oid, err := val.oid()
	try(err)
	return sqlbx.Cast[Range[A]](val, rangeTypeName(oid))
}

func rangeTypeName(oid uint32) string {
	switch oid {
	case pgtype.Int4rangeOID:
		return `int4range`
	case pgtype.Int8rangeOID:
		return `int8range`
	case pgtype.NumrangeOID:
		return `numrange`
	case pgtype.DaterangeOID:
		return `daterange`
	case pgtype.TsrangeOID:
		return `tsrange`
	case pgtype.TstzrangeOID:
		return `tstzrange`
	default:
		panic(sqlbx.ErrTypeMismatch.During(`encoding range`).Because(
			errf(`unknown range type OID %v`, oid),
		))
	}
}

// Encodes "(A @> B)" for two ranges.
func RangeContains[A any](val, other sqlbx.Expr[Range[A]]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`@>`, val, other)
}

// Encodes "(A @> B)" for a range and an element.
func RangeContainsElem[A any](val sqlbx.Expr[Range[A]], elem sqlbx.Expr[A]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`@>`, val, elem)
}

// Encodes "(A <@ B)" for two ranges.
func RangeContainedBy[A any](val, other sqlbx.Expr[Range[A]]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`<@`, val, other)
}

// Encodes "(A && B)".
func RangeOverlaps[A any](val, other sqlbx.Expr[Range[A]]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`&&`, val, other)
}

/*
Encodes "(A + B)". The database rejects the union of ranges that neither
overlap nor touch.
*/
func RangeUnion[A any](val, other sqlbx.Expr[Range[A]]) sqlbx.Expr[Range[A]] {
	return sqlbx.Infix[Range[A]](`+`, val, other)
}

// Encodes "(A * B)".
func RangeIntersect[A any](val, other sqlbx.Expr[Range[A]]) sqlbx.Expr[Range[A]] {
	return sqlbx.Infix[Range[A]](`*`, val, other)
}

// Encodes "lower(A)". Null for empty ranges and unbounded lower bounds.
func Lower[A any](val sqlbx.Expr[Range[A]]) sqlbx.Expr[*A] {
	return sqlbx.Fn[*A](`lower`, val)
}

// Encodes "upper(A)". Null for empty ranges and unbounded upper bounds.
func Upper[A any](val sqlbx.Expr[Range[A]]) sqlbx.Expr[*A] {
	return sqlbx.Fn[*A](`upper`, val)
}

// Encodes "isempty(A)".
func IsEmpty[A any](val sqlbx.Expr[Range[A]]) sqlbx.Expr[bool] {
	return sqlbx.Fn[bool](`isempty`, val)
}
