package sqlbx

import (
	"fmt"
	r "reflect"
	"strings"
	"unsafe"

	"github.com/mitranim/sqlb"
)

func try(err error) {
	if err != nil {
		panic(err)
	}
}

func try1[A any](val A, err error) A {
	try(err)
	return val
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}

func errf(pat string, args ...any) error { return fmt.Errorf(pat, args...) }

func typeElem(typ r.Type) r.Type {
	for typ != nil && (typ.Kind() == r.Ptr || typ.Kind() == r.Slice) {
		typ = typ.Elem()
	}
	return typ
}

func typeElemOf(typ any) r.Type { return typeElem(r.TypeOf(typ)) }

// Type of `A` without requiring a value, works for interface types.
func typeOf[A any]() r.Type { return r.TypeOf((*A)(nil)).Elem() }

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed from
the standard library. Reasonably safe. Should not be used when the underlying
byte array is volatile.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func exprAppend[A sqlb.Expr](expr A, text []byte) []byte {
	text, _ = expr.AppendExpr(text, nil)
	return text
}

func exprString[A sqlb.Expr](expr A) string {
	return bytesToMutableString(exprAppend(expr, nil))
}

func appendStr(bui *sqlb.Bui, val string) {
	bui.Text = append(bui.Text, val...)
}

/*
Appends an arbitrary value. Expressions are appended as-is, without
parenthesizing them or adding spaces. Other values become ordinal parameters.
*/
func appendAny(bui *sqlb.Bui, val any) {
	impl, _ := val.(sqlb.Expr)
	if impl != nil {
		bui.Set(impl.AppendExpr(bui.Get()))
		return
	}
	bui.Arg(val)
}

/*
Appends an expression, delimited from the preceding text by a space if
necessary. If the expression turns out to be empty, the space is removed. Used
for optional clauses such as `sqlb.Ords`.
*/
func appendSpaced(bui *sqlb.Bui, val sqlb.Expr) {
	if val == nil {
		return
	}
	size := len(bui.Text)
	bui.Space()
	spaced := len(bui.Text)
	bui.Set(val.AppendExpr(bui.Get()))
	if len(bui.Text) == spaced {
		bui.Text = bui.Text[:size]
	}
}

func appendJoined(bui *sqlb.Bui, delim string, vals []any) {
	for ind, val := range vals {
		if ind > 0 {
			appendStr(bui, delim)
		}
		appendAny(bui, val)
	}
}

func anys[A any](vals []A) []any {
	if vals == nil {
		return nil
	}
	out := make([]any, len(vals))
	for ind, val := range vals {
		out[ind] = val
	}
	return out
}

func hasTagOpt(tag string, opt string) bool {
	ind := strings.IndexByte(tag, ',')
	if ind < 0 {
		return false
	}
	for _, val := range strings.Split(tag[ind+1:], `,`) {
		if val == opt {
			return true
		}
	}
	return false
}
