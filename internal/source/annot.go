package source

// Annot pairs a value with the span of input it was produced from.
// Error payloads across the lexer, parser and interpreter all carry
// their provenance this way.
type Annot[T any] struct {
	Value T
	Span  Span
}

// WithSpan annotates v with sp.
func WithSpan[T any](v T, sp Span) Annot[T] {
	return Annot[T]{Value: v, Span: sp}
}
