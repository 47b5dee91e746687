package diag

import (
	"arith/internal/lexer"
	"arith/internal/parser"
	"arith/internal/source"
)

// Error is the composite syntax error covering the lex and parse
// stages. Interpreter faults are reported separately and never wrapped
// here.
type Error struct {
	lex   *lexer.Error
	parse *parser.Error
}

// FromLex wraps a lexer failure.
func FromLex(e *lexer.Error) *Error {
	return &Error{lex: e}
}

// FromParse wraps a parser failure.
func FromParse(e *parser.Error) *Error {
	return &Error{parse: e}
}

func (e *Error) Error() string {
	return "syntax error"
}

// Unwrap exposes the stage error as the direct cause, making the chain
// walkable with errors.Unwrap.
func (e *Error) Unwrap() error {
	switch {
	case e.lex != nil:
		return e.lex
	case e.parse != nil:
		return e.parse
	}
	return nil
}

// ResolveSpan derives the span to underline for an input of inputLen
// bytes. Lex errors carry their own span. Parse errors use the span of
// the embedded token, except RedundantExpression, which widens to the
// end of input so the caret covers all trailing garbage, and
// UnexpectedEOF, which is synthesized one position past the last byte.
func (e *Error) ResolveSpan(inputLen uint32) source.Span {
	switch {
	case e.lex != nil:
		return e.lex.Span
	case e.parse != nil:
		switch e.parse.Kind {
		case parser.RedundantExpression:
			return source.New(e.parse.Tok.Span.Start, inputLen)
		case parser.UnexpectedEOF:
			return source.New(inputLen, inputLen+1)
		default:
			return e.parse.Tok.Span
		}
	}
	return source.Span{}
}
