package token_test

import (
	"testing"

	"arith/internal/source"
	"arith/internal/token"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     token.Kind
		expected string
	}{
		{token.Number, "number"},
		{token.Plus, "+"},
		{token.Minus, "-"},
		{token.Asterisk, "*"},
		{token.Slash, "/"},
		{token.LParen, "("},
		{token.RParen, ")"},
		{token.Invalid, "invalid"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestToken_String(t *testing.T) {
	num := token.Token{Kind: token.Number, Value: 42, Span: source.New(0, 2)}
	if got := num.String(); got != "42" {
		t.Errorf("number token String() = %q, want %q", got, "42")
	}

	plus := token.Token{Kind: token.Plus, Span: source.New(2, 3)}
	if got := plus.String(); got != "+" {
		t.Errorf("plus token String() = %q, want %q", got, "+")
	}
}

func TestToken_IsOperator(t *testing.T) {
	operators := []token.Kind{token.Plus, token.Minus, token.Asterisk, token.Slash}
	for _, kind := range operators {
		if !(token.Token{Kind: kind}).IsOperator() {
			t.Errorf("IsOperator() = false for %s", kind)
		}
	}
	others := []token.Kind{token.Number, token.LParen, token.RParen, token.Invalid}
	for _, kind := range others {
		if (token.Token{Kind: kind}).IsOperator() {
			t.Errorf("IsOperator() = true for %s", kind)
		}
	}
}
