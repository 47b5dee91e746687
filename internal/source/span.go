package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) into the input line.
type Span struct {
	Start uint32 // in bytes, inclusive
	End   uint32 // in bytes, exclusive
}

// New builds a span from start to end.
func New(start, end uint32) Span {
	return Span{Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
