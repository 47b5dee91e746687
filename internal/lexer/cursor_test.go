package lexer_test

import (
	"testing"

	"arith/internal/lexer"
	"arith/internal/source"
)

func TestCursor_Walk(t *testing.T) {
	c := lexer.NewCursor([]byte("ab"))

	if c.EOF() {
		t.Fatal("EOF() = true at start of non-empty input")
	}
	if got := c.Peek(); got != 'a' {
		t.Errorf("Peek() = %q, want 'a'", got)
	}
	if got := c.Bump(); got != 'a' {
		t.Errorf("Bump() = %q, want 'a'", got)
	}
	if got := c.Bump(); got != 'b' {
		t.Errorf("Bump() = %q, want 'b'", got)
	}
	if !c.EOF() {
		t.Error("EOF() = false after consuming all input")
	}
	if got := c.Peek(); got != 0 {
		t.Errorf("Peek() past end = %d, want 0", got)
	}
	if got := c.Bump(); got != 0 {
		t.Errorf("Bump() past end = %d, want 0", got)
	}
}

func TestCursor_SpanFrom(t *testing.T) {
	c := lexer.NewCursor([]byte("12345"))
	c.Bump()
	m := c.Mark()
	c.Bump()
	c.Bump()
	if got := c.SpanFrom(m); got != source.New(1, 3) {
		t.Errorf("SpanFrom() = %v, want 1-3", got)
	}
}

func TestCursor_Eat(t *testing.T) {
	c := lexer.NewCursor([]byte("+-"))
	if !c.Eat('+') {
		t.Error("Eat('+') = false on matching byte")
	}
	if c.Eat('+') {
		t.Error("Eat('+') = true on non-matching byte")
	}
	if !c.Eat('-') {
		t.Error("Eat('-') = false on matching byte")
	}
	if c.Eat('-') {
		t.Error("Eat() = true past end of input")
	}
}
