package pg

import (
	"testing"

	"github.com/mitranim/sqlbx"
)

func TestCube(t *testing.T) {
	t.Run(`string`, func(t *testing.T) {
		eq(t, ``, Cube{}.String())
		eq(t, `(1, 2)`, CubePoint(1, 2).String())
		eq(t, `(1.5, -2),(3, 4e+30)`, Cube{[]float64{1.5, -2}, []float64{3, 4e30}}.String())
	})

	t.Run(`value`, func(t *testing.T) {
		val, err := Cube{}.Value()
		noErr(t, err)
		eq(t, nil, val)

		val, err = Cube{[]float64{1, 2}, []float64{3, 4}}.Value()
		noErr(t, err)
		eq(t, `(1, 2),(3, 4)`, val)

		_, err = Cube{[]float64{1, 2}, []float64{3}}.Value()
		errs(t, sqlbx.ErrInvalidInput, err)
	})

	t.Run(`parse`, func(t *testing.T) {
		test := func(src string, exp Cube) {
			t.Helper()
			var val Cube
			noErr(t, val.Parse(src))
			eq(t, exp, val)
		}

		test(``, Cube{})
		test(`(1, 2)`, CubePoint(1, 2))
		test(`(1),(2)`, Cube{[]float64{1}, []float64{2}})
		test(` (1, 2) , (3, 4) `, Cube{[]float64{1, 2}, []float64{3, 4}})
		test(`1, 2, 3`, CubePoint(1, 2, 3))
		test(`(-1.5e3, 0)`, CubePoint(-1500, 0))
	})

	t.Run(`parse_invalid`, func(t *testing.T) {
		test := func(src string) {
			t.Helper()
			var val Cube
			errs(t, sqlbx.ErrInvalidInput, val.Parse(src))
		}

		test(`(1, 2`)
		test(`(1, two)`)
		test(`(1, 2) (3, 4)`)
		test(`(1, 2),(3)`)
		test(`(1, 2),3, 4`)
	})

	t.Run(`scan`, func(t *testing.T) {
		var val Cube

		noErr(t, val.Scan([]byte(`(1, 2)`)))
		eq(t, CubePoint(1, 2), val)

		noErr(t, val.Scan(nil))
		eq(t, Cube{}, val)

		errs(t, sqlbx.ErrInvalidInput, val.Scan(10))
	})

	t.Run(`dim`, func(t *testing.T) {
		eq(t, 3, CubePoint(1, 2, 3).Dim())
		eq(t, true, CubePoint(1).IsPoint())
		eq(t, false, Cube{[]float64{1}, []float64{2}}.IsPoint())
	})
}

func TestCubeExprs(t *testing.T) {
	loc := sqlbx.Col[Cube](`location`)
	area := Cube{[]float64{0, 0}, []float64{10, 10}}

	testExpr(t, rei(`cast($1 as cube)`, area), CubeOf(area))
	testExpr(t, rei(`("location" <-> cast($1 as cube))`, area), CubeDistance(loc, CubeOf(area)))
	testExpr(t, rei(`(cast($1 as cube) @> "location")`, area), CubeContains(CubeOf(area), loc))
	testExpr(t, rei(`("location" <@ cast($1 as cube))`, area), CubeContainedBy(loc, CubeOf(area)))
	testExpr(t, rei(`("location" && cast($1 as cube))`, area), CubeOverlaps(loc, CubeOf(area)))
	testExpr(t, rei(`cube_dim("location")`), CubeDim(loc))
	testExpr(t, rei(`cube_ll_coord("location", $1)`, 1), CubeLlCoord(loc, 1))
	testExpr(t, rei(`cube_ur_coord("location", $1)`, 2), CubeUrCoord(loc, 2))
	testExpr(t, rei(`cube_enlarge("location", $1, $2)`, 0.5, 2), CubeEnlarge(loc, 0.5, 2))
}
