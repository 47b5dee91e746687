package ast

// BinOp represents a binary arithmetic operator.
type BinOp uint8

const (
	// Add represents '+'.
	Add BinOp = iota
	// Sub represents '-'.
	Sub
	// Mul represents '*'.
	Mul
	// Div represents '/'.
	Div
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "invalid"
}

// UnOp represents a unary prefix operator.
type UnOp uint8

const (
	// Neg represents unary '-'.
	Neg UnOp = iota
)

func (op UnOp) String() string {
	switch op {
	case Neg:
		return "-"
	}
	return "invalid"
}
