package sqlbx

import (
	"errors"
	"fmt"
	r "reflect"
	"strings"
	"testing"
	"time"

	"github.com/mitranim/sqlb"
)

type Address struct {
	City string  `json:"city" db:"city"`
	Zip  *string `json:"zip"  db:"zip"`
}

type Common struct {
	Id        string    `json:"id"        db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Person struct {
	Common
	Name     string   `json:"name"              db:"name"`
	Nick     *string  `json:"nick"              db:"nick"`
	Age      int      `json:"age,omitempty"     db:"age"`
	Tags     []string `json:"tags"              db:"tags"`
	Address  Address  `json:"address"           db:"address"`
	Secret   string   `json:"-"                 db:"secret"`
	JsonOnly string   `json:"jsonOnly,omitempty"`
}

type list = []any

type Encoder interface {
	fmt.Stringer
	sqlb.AppenderTo
	sqlb.Expr
}

func testExpr(t testing.TB, exp R, val Encoder) {
	t.Helper()
	eq(t, exp.Text, val.String())
	eq(t, exp.Text, string(val.AppendTo(nil)))
	eq(t, exp, reify(val))
}

func testExprs(t testing.TB, exp R, vals ...sqlb.Expr) {
	t.Helper()
	eq(t, exp, reify(vals...))
}

func reify(vals ...sqlb.Expr) R {
	text, args := sqlb.Reify(vals...)
	return R{text, args}.Norm()
}

// Short for "reified".
func rei(text string, args ...any) R { return R{text, args}.Norm() }

/*
Short for "reified". Expected output of encoding an expression. Also usable
as an expression without ordinal parameters.
*/
type R struct {
	Text string
	Args list
}

func (self R) AppendExpr(text []byte, args list) ([]byte, list) {
	text = append(text, self.Text...)
	args = append(args, self.Args...)
	return text, args
}

// We don't care about the difference between nil and empty arg lists.
func (self R) Norm() R {
	if self.Args == nil {
		self.Args = list{}
	}
	return self
}

func eq(t testing.TB, exp, act any) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func errs(t testing.TB, exp error, act error) {
	t.Helper()
	if !errors.Is(act, exp) {
		t.Fatalf(`expected error %v, got %v`, exp, act)
	}
}

func noErr(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf(`unexpected error: %+v`, err)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(`
expected %v to panic with a message containing:
	%v
found the following message:
	%v
`, funcName(fun), msg, str)
	}
}

func catchAny(fun func()) (val any) {
	defer func() { val = recover() }()
	fun()
	return
}

func funcName(val any) string {
	return fmt.Sprintf(`%T`, val)
}

func parseTime(src string) time.Time {
	return try1(time.Parse(time.RFC3339, src))
}

func ptr[A any](val A) *A { return &val }
