package pg

import (
	"slices"
	"strconv"

	"github.com/lib/pq"
	"github.com/mitranim/sqlb"
	"github.com/mitranim/sqlbx"
)

/*
Describes an SQL column type: its name, as used in casts and DDL, and the
Postgres extension which provides it, if any. Implements `sqlb.Expr` by
encoding the name verbatim.
*/
type Type struct {
	Name      string
	Extension string
}

var (
	TypeCube      = Type{`cube`, `cube`}
	TypeCitext    = Type{`citext`, `citext`}
	TypeTsvector  = Type{`tsvector`, ``}
	TypeTsquery   = Type{`tsquery`, ``}
	TypeInterval  = Type{`interval`, ``}
	TypeUuid      = Type{`uuid`, ``}
	TypeJson      = Type{`json`, ``}
	TypeJsonb     = Type{`jsonb`, ``}
	TypeDateRange = Type{`daterange`, ``}
	TypeTsRange   = Type{`tsrange`, ``}
	TypeTstzRange = Type{`tstzrange`, ``}
	TypeInt4Range = Type{`int4range`, ``}
	TypeInt8Range = Type{`int8range`, ``}
	TypeNumRange  = Type{`numrange`, ``}
	TypeGeometry  = Geometry(``, 0)
	TypeGeography = Geography(``, 0)
)

var _ = sqlb.Expr(Type{})

// Implement the `sqlb.Expr` interface, encoding the type name verbatim.
func (self Type) AppendExpr(text []byte, args []any) ([]byte, []any) {
	return sqlb.Str(self.Name).AppendExpr(text, args)
}

// Implement `fmt.Stringer`, returning the type name.
func (self Type) String() string { return self.Name }

// Returns the array type of this type, such as "cube[]".
func (self Type) Array() Type {
	self.Name += `[]`
	return self
}

/*
PostGIS "geometry" type with an optional subtype and SRID:

	Geometry(``, 0)         -> geometry
	Geometry(`Point`, 0)    -> geometry(Point)
	Geometry(`Point`, 4326) -> geometry(Point,4326)
*/
func Geometry(kind string, srid int) Type {
	return Type{geoTypeName(`geometry`, kind, srid), `postgis`}
}

// PostGIS "geography" type. See `Geometry`.
func Geography(kind string, srid int) Type {
	return Type{geoTypeName(`geography`, kind, srid), `postgis`}
}

func geoTypeName(name, kind string, srid int) string {
	if kind == `` {
		return name
	}
	name += `(` + kind
	if srid != 0 {
		name += `,` + strconv.Itoa(srid)
	}
	return name + `)`
}

// Encodes "cast(A as <type>)".
func CastTo[A any](val any, typ Type) sqlbx.Expr[A] {
	return sqlbx.Cast[A](val, typ.Name)
}

/*
Returns the names of extensions required by the given types, deduplicated and
sorted. Types without an extension are skipped.
*/
func Extensions(types ...Type) []string {
	var out []string
	for _, val := range types {
		if val.Extension != `` && !slices.Contains(out, val.Extension) {
			out = append(out, val.Extension)
		}
	}
	slices.Sort(out)
	return out
}

/*
DDL statements which enable the given extensions, one per extension, joined
with semicolons:

	CreateExtension(`cube`, `postgis`)
	-> create extension if not exists "cube"; create extension if not exists "postgis"

Names are quoted with `pq.QuoteIdentifier`. Use with `Extensions` to enable
the extensions required by a set of column types.
*/
func CreateExtension(names ...string) sqlb.Expr { return createExtension(names) }

type createExtension []string

func (self createExtension) AppendExpr(text []byte, args []any) ([]byte, []any) {
	for ind, val := range self {
		if ind > 0 {
			text = append(text, `; `...)
		}
		text = append(text, `create extension if not exists `...)
		text = append(text, pq.QuoteIdentifier(val)...)
	}
	return text, args
}

func (self createExtension) String() string {
	text, _ := self.AppendExpr(nil, nil)
	return string(text)
}
