package mysql

import (
	"github.com/mitranim/sqlbx"
)

// Encodes "ifnull(A, B)": A unless null, otherwise B.
func IfNull[A any](val sqlbx.Expr[*A], fallback sqlbx.Expr[A]) sqlbx.Expr[A] {
	return sqlbx.Fn[A](`ifnull`, val, fallback)
}

// Encodes "if(cond, A, B)".
func If[A any](cond sqlbx.Expr[bool], then, other sqlbx.Expr[A]) sqlbx.Expr[A] {
	return sqlbx.Fn[A](`if`, cond, then, other)
}

/*
Encodes "(A <=> B)": null-safe equality, true when both operands are null. The
MySQL form of "is not distinct from".
*/
func NullSafeEq[A any](val, other sqlbx.Expr[A]) sqlbx.Expr[bool] {
	return sqlbx.Infix[bool](`<=>`, val, other)
}
