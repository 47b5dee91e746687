package parser

import (
	"fmt"

	"arith/internal/token"
)

// ErrorKind identifies the way parsing failed.
type ErrorKind uint8

const (
	// UnexpectedToken reports a token in a slot whose context already
	// demanded a specific kind. Internal consistency guard; well-formed
	// failure paths surface one of the kinds below instead.
	UnexpectedToken ErrorKind = iota
	// NotExpression reports a token that cannot start an expression.
	NotExpression
	// NotOperator reports a non-operator token in an operator slot.
	// Internal consistency guard, same as UnexpectedToken.
	NotOperator
	// UnclosedOpenParen reports a '(' that was never closed. The error
	// carries the opening paren token, not the token that broke the
	// group, so diagnostics point at the paren itself.
	UnclosedOpenParen
	// RedundantExpression reports the first excess token after a
	// complete expression.
	RedundantExpression
	// UnexpectedEOF reports a token stream that ended mid-expression.
	UnexpectedEOF
)

// Error is a parse failure. Tok is the token the failure is attributed
// to; it is unset for UnexpectedEOF.
type Error struct {
	Kind ErrorKind
	Tok  token.Token
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("%s: %s is not expected", e.Tok.Span, e.Tok)
	case NotExpression:
		return fmt.Sprintf("%s: '%s' is not a start of expression", e.Tok.Span, e.Tok)
	case NotOperator:
		return fmt.Sprintf("%s: '%s' is not an operator", e.Tok.Span, e.Tok)
	case UnclosedOpenParen:
		return fmt.Sprintf("%s: '%s' is not closed", e.Tok.Span, e.Tok)
	case RedundantExpression:
		return fmt.Sprintf("%s: expression after '%s' is redundant", e.Tok.Span, e.Tok)
	case UnexpectedEOF:
		return "unexpected end of input"
	}
	return "unknown parse error"
}
