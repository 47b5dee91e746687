package lexer

import (
	"fmt"

	"arith/internal/source"
)

// ErrorCode identifies the way lexing failed.
type ErrorCode uint8

const (
	// InvalidChar reports a character that cannot start any token.
	InvalidChar ErrorCode = iota
	// UnexpectedEOF reports input that ended in the middle of a lexeme.
	UnexpectedEOF
)

// ErrorKind carries the failure code plus its payload.
type ErrorKind struct {
	Code ErrorCode
	Char rune // offending character when Code == InvalidChar
}

// Error is a lex failure annotated with the span of the offending input.
type Error source.Annot[ErrorKind]

func newError(kind ErrorKind, sp source.Span) *Error {
	e := Error(source.WithSpan(kind, sp))
	return &e
}

func (e *Error) Error() string {
	switch e.Value.Code {
	case InvalidChar:
		return fmt.Sprintf("%s: invalid char '%c'", e.Span, e.Value.Char)
	case UnexpectedEOF:
		return fmt.Sprintf("%s: unexpected end of input", e.Span)
	}
	return fmt.Sprintf("%s: unknown lex error", e.Span)
}
