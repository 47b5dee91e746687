package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"arith/internal/source"
	"arith/internal/token"
)

// Lexer scans one input line left to right.
type Lexer struct {
	input  string
	cursor Cursor
}

// New creates a lexer over input.
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		cursor: NewCursor([]byte(input)),
	}
}

// Lex converts input into an ordered token sequence. On failure no
// partial sequence is returned: the error pinpoints the first offending
// position. Lexing never mutates input, so repeated calls over the same
// text yield identical sequences.
func Lex(input string) ([]token.Token, *Error) {
	lx := New(input)
	var toks []token.Token
	for {
		lx.skipWhitespace()
		if lx.cursor.EOF() {
			return toks, nil
		}
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// next scans exactly one token. The caller guarantees the cursor stands
// on a non-whitespace byte.
func (lx *Lexer) next() (token.Token, *Error) {
	b := lx.cursor.Peek()
	switch {
	case isDec(b):
		return lx.scanNumber(), nil
	case b == '+':
		return lx.scanPunct(token.Plus)
	case b == '-':
		return lx.scanPunct(token.Minus)
	case b == '*':
		return lx.scanPunct(token.Asterisk)
	case b == '/':
		return lx.scanPunct(token.Slash)
	case b == '(':
		return lx.scanPunct(token.LParen)
	case b == ')':
		return lx.scanPunct(token.RParen)
	}

	// Anything else cannot start a token. The span covers the whole
	// rune, not just its first byte.
	r, size := utf8.DecodeRuneInString(lx.input[lx.cursor.off:])
	start := lx.cursor.Mark()
	for i := 0; i < size; i++ {
		lx.cursor.Bump()
	}
	return token.Token{}, newError(ErrorKind{Code: InvalidChar, Char: r}, lx.cursor.SpanFrom(start))
}

// scanPunct consumes a single-byte token of the given kind.
func (lx *Lexer) scanPunct(kind token.Kind) (token.Token, *Error) {
	start := lx.cursor.Mark()
	if lx.cursor.EOF() {
		return token.Token{}, lx.eofError()
	}
	lx.cursor.Bump()
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}, nil
}

// scanNumber greedily consumes a run of decimal digits into one Number
// token. A run that does not fit uint64 is not expressible in the
// literal type, so it panics instead of producing a lex error.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.input[sp.Start:sp.End]
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		panic(fmt.Errorf("lexer: digit run %q does not fit uint64: %w", text, err))
	}
	return token.Token{Kind: token.Number, Value: value, Span: sp}
}

// skipWhitespace advances past ASCII whitespace without recording it.
func (lx *Lexer) skipWhitespace() {
	for isSpace(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
}

// eofError reports input that ended mid-lexeme, located one position
// past the last byte.
func (lx *Lexer) eofError() *Error {
	sp := source.New(lx.cursor.limit, lx.cursor.limit+1)
	return newError(ErrorKind{Code: UnexpectedEOF}, sp)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
