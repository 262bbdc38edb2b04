package sqlbx

import (
	"github.com/mitranim/sqlb"
)

/*
Describes the syntax used for a specific SQL operation. Allows a single
structured representation, `Op`, to express prefix, postfix, infix and other
forms of SQL operators and function calls.
*/
type Syntax byte

const (
	SyntaxPrefix Syntax = iota + 1
	SyntaxPostfix
	SyntaxInfix
	SyntaxFunc
	SyntaxAny
	SyntaxBetween
)

// Implement `fmt.Stringer` for debug purposes.
func (self Syntax) String() string {
	switch self {
	case SyntaxPrefix:
		return `prefix`
	case SyntaxPostfix:
		return `postfix`
	case SyntaxInfix:
		return `infix`
	case SyntaxFunc:
		return `func`
	case SyntaxAny:
		return `any`
	case SyntaxBetween:
		return `between`
	default:
		return ``
	}
}

/*
Structured representation of an SQL operation: an operator or a function call.
Args may be arbitrary sub-expressions or arguments. Sub-expressions are
inserted as-is, other values become ordinal parameters such as "$1". Rendering
by syntax:

	SyntaxPrefix  -> (name A)
	SyntaxPostfix -> (A name)
	SyntaxInfix   -> (A name B name C)
	SyntaxFunc    -> name(A, B, C)
	SyntaxAny     -> (A name any(B))
	SyntaxBetween -> (A name B and C)

All operator forms are fully parenthesized, which makes them safe to nest
without considering operator precedence. This is the building block for the
other expression types in this package and its sub-packages.
*/
type Op struct {
	Syntax Syntax
	Name   string
	Args   []any
}

var _ = sqlb.Expr(Op{})

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Op) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}

	switch self.Syntax {
	case SyntaxPrefix:
		self.appendPrefix(&bui)
	case SyntaxPostfix:
		self.appendPostfix(&bui)
	case SyntaxInfix:
		self.appendInfix(&bui)
	case SyntaxFunc:
		self.appendFunc(&bui)
	case SyntaxAny:
		self.appendAny(&bui)
	case SyntaxBetween:
		self.appendBetween(&bui)
	default:
		panic(ErrInvalidInput.During(`encoding SQL operation`).Because(
			errf(`unknown syntax %v of operation %q`, self.Syntax, self.Name),
		))
	}

	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Op) AppendTo(text []byte) []byte { return exprAppend(self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Op) String() string { return exprString(self) }

func (self Op) appendPrefix(bui *sqlb.Bui) {
	self.arity(1)
	appendStr(bui, `(`)
	appendStr(bui, self.Name)
	appendStr(bui, ` `)
	appendAny(bui, self.Args[0])
	appendStr(bui, `)`)
}

func (self Op) appendPostfix(bui *sqlb.Bui) {
	self.arity(1)
	appendStr(bui, `(`)
	appendAny(bui, self.Args[0])
	appendStr(bui, ` `)
	appendStr(bui, self.Name)
	appendStr(bui, `)`)
}

func (self Op) appendInfix(bui *sqlb.Bui) {
	if len(self.Args) == 0 {
		panic(ErrInvalidInput.During(`encoding SQL operation`).Because(
			errf(`infix operation %q requires at least 1 argument`, self.Name),
		))
	}
	appendStr(bui, `(`)
	appendJoined(bui, ` `+self.Name+` `, self.Args)
	appendStr(bui, `)`)
}

func (self Op) appendFunc(bui *sqlb.Bui) {
	appendStr(bui, self.Name)
	appendStr(bui, `(`)
	appendJoined(bui, `, `, self.Args)
	appendStr(bui, `)`)
}

func (self Op) appendAny(bui *sqlb.Bui) {
	self.arity(2)
	appendStr(bui, `(`)
	appendAny(bui, self.Args[0])
	appendStr(bui, ` `)
	appendStr(bui, self.Name)
	appendStr(bui, ` any(`)
	appendAny(bui, self.Args[1])
	appendStr(bui, `))`)
}

func (self Op) appendBetween(bui *sqlb.Bui) {
	self.arity(3)
	appendStr(bui, `(`)
	appendAny(bui, self.Args[0])
	appendStr(bui, ` `)
	appendStr(bui, self.Name)
	appendStr(bui, ` `)
	appendAny(bui, self.Args[1])
	appendStr(bui, ` and `)
	appendAny(bui, self.Args[2])
	appendStr(bui, `)`)
}

func (self Op) arity(exp int) {
	if len(self.Args) != exp {
		panic(ErrInvalidInput.During(`encoding SQL operation`).Because(
			errf(`%v operation %q must have exactly %v argument(s), found %v`,
				self.Syntax, self.Name, exp, len(self.Args)),
		))
	}
}

/*
Comma-separated parenthesized list of arbitrary sub-expressions or arguments,
such as "($1, $2)" or `("one", "two")`. Unlike `sqlb.Comma`, elements are never
individually parenthesized. Used for "in" lists and row constructors.
*/
type Tuple []any

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Tuple) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}
	appendStr(&bui, `(`)
	appendJoined(&bui, `, `, self)
	appendStr(&bui, `)`)
	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Tuple) AppendTo(text []byte) []byte { return exprAppend(self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Tuple) String() string { return exprString(self) }

/*
Space-separated sequence of arbitrary sub-expressions, arguments, and SQL
keywords represented as `sqlb.Str`. Used for function arguments that aren't
comma-separated, such as "distinct A" or "A order by B".
*/
type Words []any

// Implement the `sqlb.Expr` interface, making this a sub-expression.
func (self Words) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}
	appendJoined(&bui, ` `, self)
	return bui.Get()
}

// Implement the `sqlb.AppenderTo` interface.
func (self Words) AppendTo(text []byte) []byte { return exprAppend(self, text) }

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Words) String() string { return exprString(self) }

type param [1]any

func (self param) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}
	bui.Arg(self[0])
	return bui.Get()
}

type cast struct {
	Val  any
	Type string
}

func (self cast) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}
	appendStr(&bui, `cast(`)
	appendAny(&bui, self.Val)
	appendStr(&bui, ` as `)
	appendStr(&bui, self.Type)
	appendStr(&bui, `)`)
	return bui.Get()
}
