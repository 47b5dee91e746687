// Package parser builds located expression trees out of token
// sequences via recursive descent, lowest precedence first:
//
//	expr    := addsub
//	addsub  := muldiv (('+' | '-') muldiv)*    left-associative
//	muldiv  := unary  (('*' | '/') unary)*     left-associative
//	unary   := '-' unary | primary
//	primary := Number | '(' expr ')'
package parser

import (
	"arith/internal/ast"
	"arith/internal/source"
	"arith/internal/token"
)

// Parser consumes a token sequence produced by the lexer. It keeps no
// state beyond the read position: parsing is a pure function of the
// sequence.
type Parser struct {
	toks []token.Token
	pos  int
}

// Parse builds an expression tree from toks. Every token must be
// consumed: trailing tokens after a complete expression are an error,
// attributed to the first excess token.
func Parse(toks []token.Token) (ast.Expr, *Error) {
	p := &Parser{toks: toks}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &Error{Kind: RedundantExpression, Tok: tok}
	}
	return expr, nil
}

// peek returns the next token without consuming it.
func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

// advance consumes and returns the next token.
func (p *Parser) advance() (token.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// parseExpr := addsub
func (p *Parser) parseExpr() (ast.Expr, *Error) {
	return p.parseAddSub()
}

// parseAddSub := muldiv (('+' | '-') muldiv)*
func (p *Parser) parseAddSub() (ast.Expr, *Error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || (tok.Kind != token.Plus && tok.Kind != token.Minus) {
			break
		}
		op, err := p.binOp()
		if err != nil {
			return nil, err
		}
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		// left fold keeps equal-precedence chains left-leaning
		left = ast.NewBinary(op, left, right)
	}
	return left, nil
}

// parseMulDiv := unary (('*' | '/') unary)*
func (p *Parser) parseMulDiv() (ast.Expr, *Error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || (tok.Kind != token.Asterisk && tok.Kind != token.Slash) {
			break
		}
		op, err := p.binOp()
		if err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(op, left, right)
	}
	return left, nil
}

// parseUnary := '-' unary | primary
func (p *Parser) parseUnary() (ast.Expr, *Error) {
	tok, ok := p.peek()
	if ok && tok.Kind == token.Minus {
		op, opSpan, err := p.unOp()
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, opSpan, operand), nil
	}
	return p.parsePrimary()
}

// parsePrimary := Number | '(' expr ')'
func (p *Parser) parsePrimary() (ast.Expr, *Error) {
	tok, ok := p.advance()
	if !ok {
		return nil, &Error{Kind: UnexpectedEOF}
	}
	switch tok.Kind {
	case token.Number:
		return ast.NewNumber(tok.Value, tok.Span), nil
	case token.LParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing, ok := p.advance(); !ok || closing.Kind != token.RParen {
			return nil, &Error{Kind: UnclosedOpenParen, Tok: tok}
		}
		return inner, nil
	default:
		return nil, &Error{Kind: NotExpression, Tok: tok}
	}
}

// binOp consumes the binary operator the caller already peeked. A
// non-operator here is a bug in the caller, surfaced as NotOperator
// rather than a panic.
func (p *Parser) binOp() (ast.BinOp, *Error) {
	tok, ok := p.advance()
	if !ok {
		return 0, &Error{Kind: UnexpectedEOF}
	}
	switch tok.Kind {
	case token.Plus:
		return ast.Add, nil
	case token.Minus:
		return ast.Sub, nil
	case token.Asterisk:
		return ast.Mul, nil
	case token.Slash:
		return ast.Div, nil
	default:
		return 0, &Error{Kind: NotOperator, Tok: tok}
	}
}

// unOp consumes the '-' the caller already peeked. Same guard policy
// as binOp.
func (p *Parser) unOp() (ast.UnOp, source.Span, *Error) {
	tok, ok := p.advance()
	if !ok {
		return 0, source.Span{}, &Error{Kind: UnexpectedEOF}
	}
	if tok.Kind != token.Minus {
		return 0, source.Span{}, &Error{Kind: UnexpectedToken, Tok: tok}
	}
	return ast.Neg, tok.Span, nil
}
