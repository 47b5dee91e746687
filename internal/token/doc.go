// Package token defines the lexical token kinds of the arith grammar.
// Invariants:
//   - Token.Span covers the lexeme exactly (Start..End, half-open, bytes).
//   - Token.Value is meaningful only for Number tokens.
//   - Whitespace is skipped by the lexer and never appears in the stream.
package token
