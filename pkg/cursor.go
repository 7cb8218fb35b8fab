package arith

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const EOF rune = 0

// Location is a position in the input line. Offset counts bytes, Column
// counts runes starting at 1.
type Location struct {
	Offset int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("1:%d", l.Column)
}

// cursor walks the input one rune at a time. The grammar drives it
// directly, so whitespace and token boundaries are decided by the rule that
// is currently running rather than by a separate lexing pass.
type cursor struct {
	input  string
	offset int
	column int
}

func newCursor(input string) *cursor {
	return &cursor{
		input:  input,
		column: 1,
	}
}

func (c *cursor) location() Location {
	return Location{Offset: c.offset, Column: c.column}
}

func (c *cursor) peek() rune {
	r, _ := c.decode(c.offset)
	return r
}

// peekSecond returns the rune after the next one.
func (c *cursor) peekSecond() rune {
	_, size := c.decode(c.offset)
	if size == 0 {
		return EOF
	}

	r, _ := c.decode(c.offset + size)
	return r
}

func (c *cursor) next() rune {
	r, size := c.decode(c.offset)
	if size == 0 {
		return EOF
	}

	c.offset += size
	c.column++

	return r
}

func (c *cursor) decode(offset int) (rune, int) {
	if offset >= len(c.input) {
		return EOF, 0
	}

	r, size := utf8.DecodeRuneInString(c.input[offset:])
	if r == EOF {
		// A literal NUL is just another unexpected character.
		return utf8.RuneError, size
	}

	return r, size
}

func (c *cursor) skipSpace() {
	for unicode.IsSpace(c.peek()) {
		c.next()
	}
}

func (c *cursor) atEOF() bool {
	return c.offset >= len(c.input)
}

// skipWord consumes runes up to the next whitespace, operator or
// parenthesis. It is used to step over garbage after an error.
func (c *cursor) skipWord() {
	for r := c.peek(); r != EOF && !isBoundary(r); r = c.peek() {
		c.next()
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/':
		return true
	}

	return false
}

func isBoundary(r rune) bool {
	return unicode.IsSpace(r) || isOperator(r) || r == '(' || r == ')'
}

// describe renders a rune for error messages.
func describe(r rune) string {
	if r == EOF {
		return "end of input"
	}

	return fmt.Sprintf("%q", r)
}
