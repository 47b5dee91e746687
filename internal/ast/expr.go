package ast

import (
	"arith/internal/source"
)

// Expr is an expression tree node. Every node remembers the span of
// input it was parsed from, so later stages can point diagnostics at
// the exact source text.
type Expr interface {
	Span() source.Span
	exprNode()
}

// NumberLit is an unsigned integer literal.
type NumberLit struct {
	Value uint64
	span  source.Span
}

// NewNumber builds a literal node covering the literal's lexeme.
func NewNumber(value uint64, sp source.Span) *NumberLit {
	return &NumberLit{Value: value, span: sp}
}

func (n *NumberLit) Span() source.Span { return n.span }
func (*NumberLit) exprNode()           {}

// Unary is a prefix operator applied to a sub-expression.
type Unary struct {
	Op      UnOp
	Operand Expr
	span    source.Span
}

// NewUnary builds a unary node spanning from the operator through the
// end of its operand.
func NewUnary(op UnOp, opSpan source.Span, operand Expr) *Unary {
	return &Unary{
		Op:      op,
		Operand: operand,
		span:    opSpan.Cover(operand.Span()),
	}
}

func (u *Unary) Span() source.Span { return u.span }
func (*Unary) exprNode()           {}

// Binary is an infix operator applied to two sub-expressions.
type Binary struct {
	Op    BinOp
	Left  Expr
	Right Expr
	span  source.Span
}

// NewBinary builds a binary node spanning both operands.
func NewBinary(op BinOp, left, right Expr) *Binary {
	return &Binary{
		Op:    op,
		Left:  left,
		Right: right,
		span:  left.Span().Cover(right.Span()),
	}
}

func (b *Binary) Span() source.Span { return b.span }
func (*Binary) exprNode()           {}
