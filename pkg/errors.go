package arith

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type ErrorKind int

const (
	ErrUnexpectedInput ErrorKind = iota
	ErrUnclosedParenthesis
	ErrMalformedInteger
	ErrIntegerOverflow
	ErrTrailingInput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedInput:
		return "unexpected input"
	case ErrUnclosedParenthesis:
		return "unclosed parenthesis"
	case ErrMalformedInteger:
		return "malformed integer"
	case ErrIntegerOverflow:
		return "integer overflow"
	case ErrTrailingInput:
		return "trailing input"
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Span covers the runes from Start up to, but not including, End.
type Span struct {
	Start Location
	End   Location
}

// SyntaxError describes one place where the input does not match the
// grammar. Every SyntaxError aborts the parse it belongs to.
type SyntaxError struct {
	Kind     ErrorKind
	Span     Span
	Expected []string
	Found    string

	// Opening points at the '(' whose ')' was missing.
	Opening *Location
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span.Start, e.Message())
}

// Message is the error text without the position prefix.
func (e *SyntaxError) Message() string {
	switch e.Kind {
	case ErrMalformedInteger:
		return fmt.Sprintf("malformed integer literal %q", e.Found)
	case ErrIntegerOverflow:
		return fmt.Sprintf("integer literal %s overflows a 64-bit signed integer", e.Found)
	}

	msg := fmt.Sprintf("expected %s, found %s", joinExpected(e.Expected), e.Found)
	if e.Opening != nil {
		msg += fmt.Sprintf(" (unclosed '(' at %s)", e.Opening)
	}

	return msg
}

func joinExpected(items []string) string {
	switch len(items) {
	case 0:
		return "nothing"
	case 1:
		return items[0]
	}

	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

// DiagnosticStyle decorates the parts of a rendered diagnostic. A nil
// function leaves its part unstyled.
type DiagnosticStyle struct {
	Header func(...string) string
	Gutter func(...string) string
	Caret  func(...string) string
}

var PlainStyle = DiagnosticStyle{}

func (s DiagnosticStyle) apply(f func(...string) string, text string) string {
	if f == nil {
		return text
	}

	return f(text)
}

// Diagnostic renders err against the line it was produced from:
//
//	error: expected ')', found end of input
//	 --> 1:5
//	  |
//	1 | (1+2
//	  |     ^
func Diagnostic(input string, err *SyntaxError, style DiagnosticStyle) string {
	width := utf8.RuneCountInString(input[err.Span.Start.Offset:clamp(err.Span.End.Offset, err.Span.Start.Offset, len(input))])
	if width < 1 {
		width = 1
	}

	var out strings.Builder
	out.WriteString(style.apply(style.Header, "error: "+err.Message()))
	out.WriteString("\n")
	out.WriteString(style.apply(style.Gutter, " --> ") + err.Span.Start.String() + "\n")
	out.WriteString(style.apply(style.Gutter, "  |") + "\n")
	out.WriteString(style.apply(style.Gutter, "1 |") + " " + input + "\n")
	out.WriteString(style.apply(style.Gutter, "  |") + " ")
	out.WriteString(strings.Repeat(" ", err.Span.Start.Column-1))
	out.WriteString(style.apply(style.Caret, strings.Repeat("^", width)))

	return out.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
