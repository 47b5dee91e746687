package lexer_test

import (
	"reflect"
	"testing"

	"arith/internal/lexer"
	"arith/internal/source"
	"arith/internal/token"
)

func tok(kind token.Kind, start, end uint32) token.Token {
	return token.Token{Kind: kind, Span: source.New(start, end)}
}

func num(value uint64, start, end uint32) token.Token {
	return token.Token{Kind: token.Number, Value: value, Span: source.New(start, end)}
}

func TestLex_Tokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "expression with precedence",
			input: "1+2*3",
			expected: []token.Token{
				num(1, 0, 1),
				tok(token.Plus, 1, 2),
				num(2, 2, 3),
				tok(token.Asterisk, 3, 4),
				num(3, 4, 5),
			},
		},
		{
			name:  "whitespace is skipped, not recorded",
			input: " 12 + 34 ",
			expected: []token.Token{
				num(12, 1, 3),
				tok(token.Plus, 4, 5),
				num(34, 6, 8),
			},
		},
		{
			name:  "all punctuation",
			input: "(-)/*",
			expected: []token.Token{
				tok(token.LParen, 0, 1),
				tok(token.Minus, 1, 2),
				tok(token.RParen, 2, 3),
				tok(token.Slash, 3, 4),
				tok(token.Asterisk, 4, 5),
			},
		},
		{
			name:  "greedy digit run is a single token",
			input: "007",
			expected: []token.Token{
				num(7, 0, 3),
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    " \t ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lexer.Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex(%q) failed: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lex(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLex_InvalidChar(t *testing.T) {
	tests := []struct {
		name  string
		input string
		char  rune
		span  source.Span
	}{
		{
			name:  "ascii invalid char",
			input: "1+$",
			char:  '$',
			span:  source.New(2, 3),
		},
		{
			name:  "invalid char at start",
			input: "#1",
			char:  '#',
			span:  source.New(0, 1),
		},
		{
			name:  "multibyte rune spans all its bytes",
			input: "1+π",
			char:  'π',
			span:  source.New(2, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := lexer.Lex(tt.input)
			if err == nil {
				t.Fatalf("Lex(%q) succeeded, want InvalidChar", tt.input)
			}
			if toks != nil {
				t.Errorf("Lex(%q) returned a partial sequence on failure: %v", tt.input, toks)
			}
			if err.Value.Code != lexer.InvalidChar {
				t.Errorf("error code = %d, want InvalidChar", err.Value.Code)
			}
			if err.Value.Char != tt.char {
				t.Errorf("error char = %q, want %q", err.Value.Char, tt.char)
			}
			if err.Span != tt.span {
				t.Errorf("error span = %v, want %v", err.Span, tt.span)
			}
		})
	}
}

func TestLex_Idempotent(t *testing.T) {
	input := "1 + 2*(34-5)"
	first, err1 := lexer.Lex(input)
	second, err2 := lexer.Lex(input)
	if err1 != nil || err2 != nil {
		t.Fatalf("Lex(%q) failed: %v, %v", input, err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("lexing the same input twice produced different sequences:\n%v\n%v", first, second)
	}
}

func TestLex_LiteralOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Lex did not panic on a literal wider than uint64")
		}
	}()
	_, _ = lexer.Lex("99999999999999999999")
}

func TestError_Message(t *testing.T) {
	_, err := lexer.Lex("1+$")
	if err == nil {
		t.Fatal("Lex(\"1+$\") succeeded, want error")
	}
	if got := err.Error(); got != "2-3: invalid char '$'" {
		t.Errorf("Error() = %q, want %q", got, "2-3: invalid char '$'")
	}
}
