// Package interp evaluates expression trees to 64-bit integer values.
package interp

import (
	"fmt"

	"arith/internal/ast"
	"arith/internal/source"
)

// ErrorKind identifies the runtime fault.
type ErrorKind uint8

const (
	// DivisionByZero reports a division whose right operand evaluated
	// to zero.
	DivisionByZero ErrorKind = iota
)

// Error is a runtime fault annotated with the span of the faulting
// sub-expression.
type Error source.Annot[ErrorKind]

func (e *Error) Error() string {
	switch e.Value {
	case DivisionByZero:
		return "division by zero"
	}
	return "unknown evaluation error"
}

// Evaluate computes the value of expr.
//
// Arithmetic is 64-bit two's complement: literals wider than int64 and
// intermediate overflow wrap rather than fail. Division by zero is the
// only runtime fault; its span covers the whole division
// sub-expression, not just the operator.
func Evaluate(expr ast.Expr) (int64, *Error) {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return int64(e.Value), nil

	case *ast.Unary:
		v, err := Evaluate(e.Operand)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case ast.Neg:
			return -v, nil
		}

	case *ast.Binary:
		left, err := Evaluate(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(e.Right)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case ast.Add:
			return left + right, nil
		case ast.Sub:
			return left - right, nil
		case ast.Mul:
			return left * right, nil
		case ast.Div:
			if right == 0 {
				fault := Error(source.WithSpan(DivisionByZero, e.Span()))
				return 0, &fault
			}
			return left / right, nil
		}
	}
	panic(fmt.Sprintf("interp: unhandled expression node %T", expr))
}
