package pg

import (
	"database/sql"
	"database/sql/driver"
	"strconv"
	"strings"

	"github.com/mitranim/sqlbx"
)

/*
Go representation of the "cube" type from the Postgres extension of the same
name. A cube is either an N-dimensional point, with only `Ll` set, or a box
with two opposite corners `Ll` ("lower left") and `Ur` ("upper right") of the
same dimension. Uses the text format of the extension:

	Cube{Ll: []float64{1, 2}}                     -> (1, 2)
	Cube{Ll: []float64{1, 2}, Ur: []float64{3, 4}} -> (1, 2),(3, 4)

A zero cube is encoded as null.
*/
type Cube struct {
	Ll []float64
	Ur []float64
}

var (
	_ = driver.Valuer(Cube{})
	_ = sql.Scanner((*Cube)(nil))
)

// Shortcut for making a point cube.
func CubePoint(coords ...float64) Cube { return Cube{Ll: coords} }

// True if the cube has no coordinates.
func (self Cube) IsNull() bool { return len(self.Ll) == 0 && len(self.Ur) == 0 }

// True if the cube has only one corner.
func (self Cube) IsPoint() bool { return len(self.Ur) == 0 }

// Number of dimensions.
func (self Cube) Dim() int { return len(self.Ll) }

// Returns an error if the corners have different dimensions.
func (self Cube) Validate() error {
	if len(self.Ur) > 0 && len(self.Ur) != len(self.Ll) {
		return sqlbx.ErrInvalidInput.During(`validating cube`).Because(errf(
			`mismatched dimensions: lower left has %v, upper right has %v`,
			len(self.Ll), len(self.Ur),
		))
	}
	return nil
}

// Implement `fmt.Stringer`, returning the text format of the extension.
func (self Cube) String() string {
	if self.IsNull() {
		return ``
	}
	return string(self.AppendTo(nil))
}

// Appends the text format of the extension. See `Cube`.
func (self Cube) AppendTo(buf []byte) []byte {
	if self.IsNull() {
		return buf
	}
	buf = appendCubeCorner(buf, self.Ll)
	if !self.IsPoint() {
		buf = append(buf, `,`...)
		buf = appendCubeCorner(buf, self.Ur)
	}
	return buf
}

func appendCubeCorner(buf []byte, vals []float64) []byte {
	buf = append(buf, `(`...)
	for ind, val := range vals {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = strconv.AppendFloat(buf, val, 'g', -1, 64)
	}
	return append(buf, `)`...)
}

// Implement `driver.Valuer`.
func (self Cube) Value() (driver.Value, error) {
	if self.IsNull() {
		return nil, nil
	}
	err := self.Validate()
	if err != nil {
		return nil, err
	}
	return self.String(), nil
}

// Implement `sql.Scanner`. Null is scanned as a zero cube.
func (self *Cube) Scan(src any) error {
	text, ok, err := scanText(`cube`, src)
	if err != nil {
		return err
	}
	if !ok {
		*self = Cube{}
		return nil
	}
	return self.Parse(text)
}

/*
Parses the text format of the extension. In addition to the formats produced by
Postgres, accepts a bare list of coordinates without parens, such as "1, 2".
*/
func (self *Cube) Parse(src string) error {
	text := strings.TrimSpace(src)
	if text == `` {
		*self = Cube{}
		return nil
	}

	var out Cube
	var err error

	if !strings.HasPrefix(text, `(`) {
		out.Ll, err = parseCubeCoords(text)
		if err != nil {
			return errDecode(`cube`, src, err)
		}
		*self = out
		return nil
	}

	head, tail, err := splitCubeCorners(text)
	if err != nil {
		return errDecode(`cube`, src, err)
	}

	out.Ll, err = parseCubeCorner(head)
	if err != nil {
		return errDecode(`cube`, src, err)
	}

	if tail != `` {
		out.Ur, err = parseCubeCorner(tail)
		if err != nil {
			return errDecode(`cube`, src, err)
		}
	}

	err = out.Validate()
	if err != nil {
		return errDecode(`cube`, src, err)
	}

	*self = out
	return nil
}

func splitCubeCorners(src string) (string, string, error) {
	ind := strings.IndexByte(src, ')')
	if ind < 0 {
		return ``, ``, errf(`missing closing paren`)
	}

	head := src[:ind+1]
	tail := strings.TrimSpace(src[ind+1:])
	if tail == `` {
		return head, ``, nil
	}

	tail, ok := strings.CutPrefix(tail, `,`)
	if !ok {
		return ``, ``, errf(`unexpected text after first corner`)
	}
	return head, strings.TrimSpace(tail), nil
}

func parseCubeCorner(src string) ([]float64, error) {
	if !strings.HasPrefix(src, `(`) || !strings.HasSuffix(src, `)`) {
		return nil, errf(`corner must be parenthesized`)
	}
	return parseCubeCoords(src[1 : len(src)-1])
}

func parseCubeCoords(src string) ([]float64, error) {
	parts := strings.Split(src, `,`)
	out := make([]float64, 0, len(parts))

	for _, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

// Encodes "cast($1 as cube)" where the argument is the given cube.
func CubeOf(val Cube) sqlbx.Expr[Cube] { return sqlbx.Cast[Cube](val, TypeCube.Name) }

// Encodes "(A <-> B)": Euclidean distance.
func CubeDistance(val, other sqlbx.Expr[Cube]) sqlbx.Expr[float64] {
	return sqlbx.Infix[float64](`<->`, val, other)
}

// Encodes "(A @> B)".
func CubeContains(val, other sqlbx.Expr[Cube]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`@>`, val, other)
}

// Encodes "(A <@ B)".
func CubeContainedBy(val, other sqlbx.Expr[Cube]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`<@`, val, other)
}

// Encodes "(A && B)".
func CubeOverlaps(val, other sqlbx.Expr[Cube]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`&&`, val, other)
}

// Encodes "cube_dim(A)".
func CubeDim(val sqlbx.Expr[Cube]) sqlbx.Expr[int] {
	return sqlbx.Fn[int](`cube_dim`, val)
}

// Encodes "cube_ll_coord(A, $1)". Dimensions start at 1.
func CubeLlCoord(val sqlbx.Expr[Cube], dim int) sqlbx.Expr[float64] {
	return sqlbx.Fn[float64](`cube_ll_coord`, val, dim)
}

// Encodes "cube_ur_coord(A, $1)". Dimensions start at 1.
func CubeUrCoord(val sqlbx.Expr[Cube], dim int) sqlbx.Expr[float64] {
	return sqlbx.Fn[float64](`cube_ur_coord`, val, dim)
}

/*
Encodes "cube_enlarge(A, $1, $2)": increases the size of the cube by the given
radius in the given number of dimensions.
*/
func CubeEnlarge(val sqlbx.Expr[Cube], radius float64, dims int) sqlbx.Expr[Cube] {
	return sqlbx.Fn[Cube](`cube_enlarge`, val, radius, dims)
}
