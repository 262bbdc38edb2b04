package sqlbx

import (
	"github.com/mitranim/sqlb"
)

/*
Encodes "coalesce(A, B, ...)". Every operand is nullable, so the result is
nullable. When the last operand is known to be non-null, use `CoalesceTo`.
*/
func Coalesce[A any](head Expr[*A], tail ...Expr[*A]) Expr[*A] {
	return Fn[*A](`coalesce`, append([]any{head}, anys(tail)...)...)
}

/*
Encodes "coalesce(A, B, ..., fallback)". The fallback is non-null, which makes
the result non-null. The fallback is the first parameter for the sake of
type inference, but it's encoded last. Without other operands, this returns the
fallback as-is.
*/
func CoalesceTo[A any](fallback Expr[A], vals ...Expr[*A]) Expr[A] {
	if len(vals) == 0 {
		return fallback
	}
	return Fn[A](`coalesce`, append(anys(vals), fallback)...)
}

// Encodes "nullif(A, B)". The result is null when the operands are equal.
func NullIf[A any](val, other Expr[A]) Expr[*A] {
	return Fn[*A](`nullif`, val, other)
}

// Encodes "greatest(A, B, ...)". Null operands are ignored by the database.
func Greatest[A any](head Expr[A], tail ...Expr[A]) Expr[A] {
	return Fn[A](`greatest`, append([]any{head}, anys(tail)...)...)
}

// Encodes "least(A, B, ...)". Null operands are ignored by the database.
func Least[A any](head Expr[A], tail ...Expr[A]) Expr[A] {
	return Fn[A](`least`, append([]any{head}, anys(tail)...)...)
}

/*
Starts a searched "case" chain:

	Case[string]().
		When(Gt(Col[int](`age`), Arg(17)), Arg(`adult`)).
		When(Gt(Col[int](`age`), Arg(12)), Arg(`teen`)).
		Else(Arg(`child`))

	->

	case when ("age" > $1) then $2 when ("age" > $3) then $4 else $5 end

Terminating the chain with `.Else` produces a non-null `Expr[A]`. Terminating
with `.End` produces `Expr[*A]`, because a chain without "else" evaluates to
null when no branch matches.
*/
func Case[A any]() CaseChain[A] { return CaseChain[A]{} }

// Searched "case" chain. Immutable: each method returns a modified copy. See `Case`.
type CaseChain[A any] struct{ node caseNode }

// Adds a "when <cond> then <val>" branch.
func (self CaseChain[A]) When(cond Expr[bool], then Expr[A]) CaseChain[A] {
	self.node = self.node.when(cond, then)
	return self
}

/*
Terminates the chain with an "else" branch. If there are no "when" branches,
returns the fallback as-is.
*/
func (self CaseChain[A]) Else(val Expr[A]) Expr[A] {
	if len(self.node.Whens) == 0 {
		return val
	}
	return Expr[A]{self.node.orElse(val)}
}

/*
Terminates the chain without an "else" branch. The result is nullable. If there
are no "when" branches, the result is "null".
*/
func (self CaseChain[A]) End() Expr[*A] {
	if len(self.node.Whens) == 0 {
		return Null[A]()
	}
	return Expr[*A]{self.node}
}

/*
Starts a simple "case" chain that compares a subject against values:

	CaseOf[string](Col[int](`status`)).
		When(Arg(1), Arg(`active`)).
		When(Arg(2), Arg(`banned`)).
		Else(Arg(`unknown`))

	->

	case "status" when $1 then $2 when $3 then $4 else $5 end

`A` is the result type, `B` is the subject type.
*/
func CaseOf[A, B any](subject Expr[B]) SwitchChain[A, B] {
	return SwitchChain[A, B]{caseNode{Subject: subject}}
}

// Simple "case" chain. Immutable: each method returns a modified copy. See `CaseOf`.
type SwitchChain[A, B any] struct{ node caseNode }

// Adds a "when <val> then <result>" branch.
func (self SwitchChain[A, B]) When(val Expr[B], then Expr[A]) SwitchChain[A, B] {
	self.node = self.node.when(val, then)
	return self
}

// Same as `CaseChain.Else`.
func (self SwitchChain[A, B]) Else(val Expr[A]) Expr[A] {
	if len(self.node.Whens) == 0 {
		return val
	}
	return Expr[A]{self.node.orElse(val)}
}

// Same as `CaseChain.End`.
func (self SwitchChain[A, B]) End() Expr[*A] {
	if len(self.node.Whens) == 0 {
		return Null[A]()
	}
	return Expr[*A]{self.node}
}

type caseWhen struct {
	Cond sqlb.Expr
	Then sqlb.Expr
}

type caseNode struct {
	Subject sqlb.Expr
	Whens   []caseWhen
	Else    sqlb.Expr
}

// Copies the branches to prevent chains from sharing backing arrays.
func (self caseNode) when(cond, then sqlb.Expr) caseNode {
	whens := make([]caseWhen, len(self.Whens), len(self.Whens)+1)
	copy(whens, self.Whens)
	self.Whens = append(whens, caseWhen{cond, then})
	return self
}

func (self caseNode) orElse(val sqlb.Expr) caseNode {
	self.Else = val
	return self
}

func (self caseNode) AppendExpr(text []byte, args []any) ([]byte, []any) {
	bui := sqlb.Bui{Text: text, Args: args}
	appendStr(&bui, `case`)

	if self.Subject != nil {
		appendStr(&bui, ` `)
		appendAny(&bui, self.Subject)
	}

	for _, val := range self.Whens {
		appendStr(&bui, ` when `)
		appendAny(&bui, val.Cond)
		appendStr(&bui, ` then `)
		appendAny(&bui, val.Then)
	}

	if self.Else != nil {
		appendStr(&bui, ` else `)
		appendAny(&bui, self.Else)
	}

	appendStr(&bui, ` end`)
	return bui.Get()
}
