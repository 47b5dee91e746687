package token

import (
	"strconv"

	"arith/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Value uint64 // literal value when Kind == Number
	Span  source.Span
}

// IsOperator reports whether the token is a binary arithmetic operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Asterisk, Slash:
		return true
	default:
		return false
	}
}

// String renders the token the way it appears in source: number tokens
// print their literal value, everything else its punctuation.
func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatUint(t.Value, 10)
	}
	return t.Kind.String()
}
