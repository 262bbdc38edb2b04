package mysql

import (
	"errors"
	"fmt"
	r "reflect"
	"strings"
	"testing"

	"github.com/mitranim/sqlb"
)

type list = []any

// Compares the MySQL rendering of the expression.
func testExpr(t testing.TB, exp R, val sqlb.Expr) {
	t.Helper()
	eq(t, exp, reify(val))
}

func reify(vals ...sqlb.Expr) R {
	text, args := Reify(vals...)
	return R{text, args}.Norm()
}

// Short for "reified".
func rei(text string, args ...any) R { return R{text, args}.Norm() }

// Expected output of encoding an expression.
type R struct {
	Text string
	Args list
}

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

	var val any
	func() {
		defer func() { val = recover() }()
		fun()
	}()

	if val == nil {
		t.Fatalf(`expected %T to panic, found no panic`, fun)
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(`
expected %T to panic with a message containing:
	%v
found the following message:
	%v
`, fun, msg, str)
	}
}
