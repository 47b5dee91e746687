package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"arith/internal/interp"
	"arith/internal/lexer"
	"arith/internal/parser"
	"arith/internal/source"
)

var (
	messageColor = color.New(color.FgRed, color.Bold)
	caretColor   = color.New(color.FgRed, color.Bold)
)

// ShowDiagnostic writes err's message followed by the offending input
// line with a caret underline beneath the resolved span. Errors without
// a location print their message only.
func ShowDiagnostic(w io.Writer, err error, input string) {
	inputLen := uint32(len(input))

	var sp source.Span
	switch e := err.(type) {
	case *Error:
		sp = e.ResolveSpan(inputLen)
		if cause := e.Unwrap(); cause != nil {
			err = cause
		}
	case *lexer.Error:
		sp = FromLex(e).ResolveSpan(inputLen)
	case *parser.Error:
		sp = FromParse(e).ResolveSpan(inputLen)
	case *interp.Error:
		sp = e.Span
	default:
		messageColor.Fprintln(w, err)
		return
	}

	messageColor.Fprintln(w, err)
	writeAnnot(w, input, sp)
}

// ShowTrace prints err followed by each link of its cause chain, one
// "caused by" line per intermediate error.
func ShowTrace(w io.Writer, err error) {
	fmt.Fprintln(w, err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(w, "caused by %v\n", cause)
	}
}

// writeAnnot prints the input line and a caret underline beneath the
// span. Caret columns come from display width so the underline stays
// aligned when the input contains wide runes. A span past the end of
// input (the synthesized end-of-input position) still gets one caret.
func writeAnnot(w io.Writer, input string, sp source.Span) {
	fmt.Fprintln(w, input)

	inputLen := uint32(len(input))
	start := min(sp.Start, inputLen)
	end := min(sp.End, inputLen)

	pad := runewidth.StringWidth(input[:start])
	width := runewidth.StringWidth(input[start:end])
	if width == 0 {
		width = 1
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), caretColor.Sprint(strings.Repeat("^", width)))
}
