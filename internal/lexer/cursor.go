package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"arith/internal/source"
)

// Cursor is a byte position within the input line.
type Cursor struct {
	input []byte
	off   uint32
	limit uint32 // exclusive upper bound for off
}

// NewCursor creates a cursor over input positioned at its first byte.
func NewCursor(input []byte) Cursor {
	limit, err := safecast.Conv[uint32](len(input))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return Cursor{input: input, off: 0, limit: limit}
}

// EOF reports whether the cursor passed the last byte of input.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek reads the current byte if any, otherwise returns 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.input[c.off]
}

// Bump moves the cursor one byte forward and returns the byte read.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.input[c.off]
	c.off++
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.input[c.off] == b {
		c.off++
		return true
	}
	return false
}

// Mark is a saved position used to recover the Span of a scanned fragment.
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom returns the span of the fragment scanned since the mark.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.off}
}
