package ast_test

import (
	"testing"

	"arith/internal/ast"
	"arith/internal/source"
)

func TestNewBinary_CoversOperands(t *testing.T) {
	left := ast.NewNumber(1, source.New(0, 1))
	right := ast.NewNumber(2, source.New(4, 5))
	bin := ast.NewBinary(ast.Add, left, right)
	if bin.Span() != source.New(0, 5) {
		t.Errorf("binary span = %v, want 0-5", bin.Span())
	}
}

func TestNewUnary_CoversOperatorAndOperand(t *testing.T) {
	operand := ast.NewNumber(7, source.New(1, 2))
	un := ast.NewUnary(ast.Neg, source.New(0, 1), operand)
	if un.Span() != source.New(0, 2) {
		t.Errorf("unary span = %v, want 0-2", un.Span())
	}
}

func TestOpStrings(t *testing.T) {
	binOps := map[ast.BinOp]string{ast.Add: "+", ast.Sub: "-", ast.Mul: "*", ast.Div: "/"}
	for op, want := range binOps {
		if got := op.String(); got != want {
			t.Errorf("BinOp(%d).String() = %q, want %q", op, got, want)
		}
	}
	if got := ast.Neg.String(); got != "-" {
		t.Errorf("Neg.String() = %q, want %q", got, "-")
	}
}
