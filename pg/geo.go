package pg

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Spatial reference used by `PointOf` for points without an explicit SRID.
The default is WGS 84, the reference system of GPS coordinates.
*/
var DefaultSrid = 4326

const (
	ewkbFlagSrid = 0x20000000
	ewkbTypeMask = 0x0fffffff
	wkbPoint     = 1
)

/*
Go representation of a PostGIS point. Encoded as EWKT ("extended well-known
text"), which PostGIS accepts for both "geometry" and "geography":

	Point{Lng: 1.5, Lat: 2.5, Srid: 4326} -> SRID=4326;POINT(1.5 2.5)
	Point{Lng: 1.5, Lat: 2.5}             -> POINT(1.5 2.5)

Scanning supports EWKT and hex-encoded EWKB, which is the default output of
PostGIS for geometry columns. Z and M coordinates are ignored.
*/
type Point struct {
	Lng  float64 `json:"lng"`
	Lat  float64 `json:"lat"`
	Srid int     `json:"srid,omitempty"`
}

var (
	_ = driver.Valuer(Point{})
	_ = sql.Scanner((*Point)(nil))
)

// Returns a copy with `DefaultSrid` if the SRID is zero.
func (self Point) Norm() Point {
	if self.Srid == 0 {
		self.Srid = DefaultSrid
	}
	return self
}

// Implement `fmt.Stringer`, returning EWKT.
func (self Point) String() string { return string(self.AppendTo(nil)) }

// Appends EWKT. See `Point`.
func (self Point) AppendTo(buf []byte) []byte {
	if self.Srid != 0 {
		buf = append(buf, `SRID=`...)
		buf = strconv.AppendInt(buf, int64(self.Srid), 10)
		buf = append(buf, `;`...)
	}
	buf = append(buf, `POINT(`...)
	buf = strconv.AppendFloat(buf, self.Lng, 'g', -1, 64)
	buf = append(buf, ` `...)
	buf = strconv.AppendFloat(buf, self.Lat, 'g', -1, 64)
	return append(buf, `)`...)
}

// Implement `driver.Valuer`.
func (self Point) Value() (driver.Value, error) { return self.String(), nil }

// Implement `sql.Scanner`. Null is scanned as a zero point.
func (self *Point) Scan(src any) error {
	text, ok, err := scanText(`point`, src)
	if err != nil {
		return err
	}
	if !ok {
		*self = Point{}
		return nil
	}
	return self.Parse(text)
}

// Parses EWKT or hex-encoded EWKB. See `Point`.
func (self *Point) Parse(src string) error {
	text := strings.TrimSpace(src)
	if isEwkt(text) {
		return self.parseEwkt(src, text)
	}
	return self.parseEwkbHex(src, text)
}

func isEwkt(src string) bool {
	return hasPrefixFold(src, `SRID=`) || hasPrefixFold(src, `POINT`)
}

func (self *Point) parseEwkt(src, text string) error {
	var out Point

	if hasPrefixFold(text, `SRID=`) {
		head, tail, ok := strings.Cut(text[len(`SRID=`):], `;`)
		if !ok {
			return errDecode(`point`, src, errf(`missing ";" after SRID`))
		}

		srid, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			return errDecode(`point`, src, err)
		}
		out.Srid = srid
		text = strings.TrimSpace(tail)
	}

	if !hasPrefixFold(text, `POINT`) {
		return errDecode(`point`, src, errf(`unsupported geometry type`))
	}
	text = strings.TrimSpace(text[len(`POINT`):])

	// Dimension markers such as "Z" or "ZM" before the coordinates.
	text = strings.TrimLeft(text, `ZMzm `)

	if !strings.HasPrefix(text, `(`) || !strings.HasSuffix(text, `)`) {
		return errDecode(`point`, src, errf(`coordinates must be parenthesized`))
	}

	coords := strings.Fields(text[1 : len(text)-1])
	if len(coords) < 2 {
		return errDecode(`point`, src, errf(`expected at least 2 coordinates, found %v`, len(coords)))
	}

	var err error
	out.Lng, err = strconv.ParseFloat(coords[0], 64)
	if err != nil {
		return errDecode(`point`, src, err)
	}
	out.Lat, err = strconv.ParseFloat(coords[1], 64)
	if err != nil {
		return errDecode(`point`, src, err)
	}

	*self = out
	return nil
}

func (self *Point) parseEwkbHex(src, text string) error {
	buf, err := hex.DecodeString(text)
	if err != nil {
		return errDecode(`point`, src, err)
	}

	if len(buf) < 5 {
		return errDecode(`point`, src, errf(`EWKB too short`))
	}

	var order binary.ByteOrder
	switch buf[0] {
	case 0:
		order = binary.BigEndian
	case 1:
		order = binary.LittleEndian
	default:
		return errDecode(`point`, src, errf(`unknown EWKB byte order %v`, buf[0]))
	}

	typ := order.Uint32(buf[1:5])
	buf = buf[5:]

	if typ&ewkbTypeMask%1000 != wkbPoint {
		return errDecode(`point`, src, errf(`unsupported EWKB geometry type %v`, typ&ewkbTypeMask))
	}

	var out Point
	if typ&ewkbFlagSrid != 0 {
		if len(buf) < 4 {
			return errDecode(`point`, src, errf(`EWKB too short`))
		}
		out.Srid = int(order.Uint32(buf))
		buf = buf[4:]
	}

	if len(buf) < 16 {
		return errDecode(`point`, src, errf(`EWKB too short`))
	}
	out.Lng = math.Float64frombits(order.Uint64(buf))
	out.Lat = math.Float64frombits(order.Uint64(buf[8:]))

	*self = out
	return nil
}

/*
Appends hex-encoded little-endian EWKB, as produced by PostGIS for geometry
columns. Mostly useful for tests and for clients that prefer binary input.
*/
func (self Point) AppendEwkbHex(buf []byte) []byte {
	typ := uint32(wkbPoint)
	size := 1 + 4 + 16
	if self.Srid != 0 {
		typ |= ewkbFlagSrid
		size += 4
	}

	raw := make([]byte, 0, size)
	raw = append(raw, 1)
	raw = binary.LittleEndian.AppendUint32(raw, typ)
	if self.Srid != 0 {
		raw = binary.LittleEndian.AppendUint32(raw, uint32(self.Srid))
	}
	raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(self.Lng))
	raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(self.Lat))

	return hex.AppendEncode(buf, raw)
}

func hasPrefixFold(src, pre string) bool {
	return len(src) >= len(pre) && strings.EqualFold(src[:len(pre)], pre)
}

/*
Encodes "st_geomfromewkt($1)" with the given point as the argument. Points
without SRID use `DefaultSrid`.
*/
func PointOf(val Point) sqlbx.Expr[Point] {
	return sqlbx.Fn[Point](`st_geomfromewkt`, val.Norm())
}

// Encodes "st_makepoint(A, B)". The result has no SRID; see `SetSrid`.
func MakePoint(lng, lat sqlbx.Expr[float64]) sqlbx.Expr[Point] {
	return sqlbx.Fn[Point](`st_makepoint`, lng, lat)
}

// Encodes "st_setsrid(A, $1)".
func SetSrid[A any](geom sqlbx.Expr[A], srid int) sqlbx.Expr[A] {
	return sqlbx.Fn[A](`st_setsrid`, geom, srid)
}

// Encodes "cast(A as geography)". The Go type is preserved.
func GeographyOf[A any](geom sqlbx.Expr[A]) sqlbx.Expr[A] {
	return sqlbx.Cast[A](geom, `geography`)
}

/*
Encodes "st_distance(A, B)". For geometries, the distance is in units of the
spatial reference. For geographies, in meters.
*/
func Distance(geom, other sqlb.Expr) sqlbx.Expr[float64] {
	return sqlbx.Fn[float64](`st_distance`, geom, other)
}

// Encodes "st_dwithin(A, B, $1)". Can use spatial indexes.
func DWithin(geom, other sqlb.Expr, dist float64) sqlbx.Expr[bool] {
	return sqlbx.Fn[bool](`st_dwithin`, geom, other, dist)
}

// Encodes "st_intersects(A, B)".
func Intersects(geom, other sqlb.Expr) sqlbx.Expr[bool] {
	return sqlbx.Fn[bool](`st_intersects`, geom, other)
}

// Encodes "st_asgeojson(A)".
func AsGeoJson(geom sqlb.Expr) sqlbx.Expr[string] {
	return sqlbx.Fn[string](`st_asgeojson`, geom)
}

// Encodes "st_astext(A)".
func AsText(geom sqlb.Expr) sqlbx.Expr[string] {
	return sqlbx.Fn[string](`st_astext`, geom)
}
