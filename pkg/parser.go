package arith

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// Grammar, loosest binding first:
//
//	expression = term { ("+" | "-") term }
//	term       = factor { ("*" | "/") factor }
//	factor     = "-" factor | atom
//	atom       = integer | "(" expression ")"
//	integer    = ["-"] digit { digit }
//
// Spaces may surround any token. A "-" directly followed by a digit belongs
// to the integer literal; any other "-" in factor position is a negation.

var (
	expectedAtom     = []string{"a number", "'('", "'-'"}
	expectedTrailing = []string{"an operator", "end of input"}
	expectedClose    = []string{"')'"}
)

type Parser struct {
	input  string
	cur    *cursor
	errors []*SyntaxError
}

func NewParser(input string) *Parser {
	return &Parser{
		input: input,
		cur:   newCursor(input),
	}
}

// Parse parses a single line. Either the whole line is an expression and
// its tree is returned, or the errors found are returned and the tree is
// nil.
func Parse(input string) (Expr, []*SyntaxError) {
	return NewParser(input).Run()
}

func (p *Parser) Run() (Expr, []*SyntaxError) {
	expr := p.expression()

	p.cur.skipSpace()
	if !p.cur.atEOF() {
		start := p.cur.location()
		found := p.cur.peek()
		p.skipGarbage()
		p.errorf(ErrTrailingInput, p.spanFrom(start), expectedTrailing, describe(found))
	}

	if len(p.errors) != 0 {
		return nil, p.errors
	}

	return expr, nil
}

func (p *Parser) expression() Expr {
	return p.foldLeft(p.term, '+', '-')
}

func (p *Parser) term() Expr {
	return p.foldLeft(p.factor, '*', '/')
}

// foldLeft parses operand { op operand } and nests each new pair under the
// running result, so a - b + c becomes (a - b) + c.
func (p *Parser) foldLeft(operand func() Expr, ops ...rune) Expr {
	lhs := operand()

	for {
		p.cur.skipSpace()

		r := p.cur.peek()
		if !slices.Contains(ops, r) {
			return lhs
		}

		p.cur.next()
		lhs = &BinaryExpr{
			Operation: binaryOpFor(r),
			Op1:       lhs,
			Op2:       operand(),
		}
	}
}

// binaryOpFor maps the operator runes the folds accept. Any other rune
// means a fold was handed an operator it does not own.
func binaryOpFor(r rune) BinaryOp {
	switch r {
	case '+':
		return BinaryAddition
	case '-':
		return BinarySubtraction
	case '*':
		return BinaryMultiplication
	case '/':
		return BinaryDivision
	}

	panic("unreachable: no binary operator for " + describe(r))
}

func (p *Parser) factor() Expr {
	p.cur.skipSpace()

	if p.cur.peek() == '-' && !isDigit(p.cur.peekSecond()) {
		p.cur.next()

		return &UnaryExpr{
			Operation: UnaryNegative,
			Operand:   p.factor(),
		}
	}

	return p.atom()
}

func (p *Parser) atom() Expr {
	p.cur.skipSpace()

	switch r := p.cur.peek(); {
	case r == '(':
		return p.parenthesisedExpression()
	case isDigit(r), r == '-' && isDigit(p.cur.peekSecond()):
		return p.literal()
	default:
		start := p.cur.location()
		p.cur.skipWord()
		p.errorf(ErrUnexpectedInput, p.spanFrom(start), expectedAtom, describe(r))

		return &badExpr{Location: start}
	}
}

func (p *Parser) parenthesisedExpression() Expr {
	open := p.cur.location()
	p.cur.next() // Skip the opening parenthesis

	exp := p.expression()

	p.cur.skipSpace()
	if r := p.cur.peek(); r != ')' {
		// Report and carry on as if the group had been closed here
		kind := ErrUnexpectedInput
		if r == EOF {
			kind = ErrUnclosedParenthesis
		}

		start := p.cur.location()
		p.addError(&SyntaxError{
			Kind:     kind,
			Span:     Span{Start: start, End: start},
			Expected: expectedClose,
			Found:    describe(r),
			Opening:  &open,
		})

		return exp
	}

	p.cur.next()
	return exp
}

func (p *Parser) literal() Expr {
	start := p.cur.location()

	var num strings.Builder
	if p.cur.peek() == '-' {
		num.WriteRune(p.cur.next())
	}

	for r := p.cur.peek(); isDigit(r); r = p.cur.peek() {
		num.WriteRune(p.cur.next())
	}

	if r := p.cur.peek(); r != EOF && !isBoundary(r) {
		// Digits running straight into something else, e.g. 12ab or 1.5
		p.cur.skipWord()
		p.errorf(ErrMalformedInteger, p.spanFrom(start), []string{"a decimal digit"}, p.text(start))

		return &badExpr{Location: start}
	}

	v, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		kind := ErrMalformedInteger
		if errors.Is(err, strconv.ErrRange) {
			kind = ErrIntegerOverflow
		}

		p.errorf(kind, p.spanFrom(start), []string{"a 64-bit signed integer"}, num.String())
		return &badExpr{Location: start}
	}

	return &LiteralExpr{Value: v}
}

// skipGarbage steps over the offending word, or a single rune when the
// cursor sits on an operator or parenthesis.
func (p *Parser) skipGarbage() {
	before := p.cur.offset
	p.cur.skipWord()

	if p.cur.offset == before {
		p.cur.next()
	}
}

func (p *Parser) spanFrom(start Location) Span {
	return Span{Start: start, End: p.cur.location()}
}

func (p *Parser) text(start Location) string {
	return p.input[start.Offset:p.cur.offset]
}

func (p *Parser) errorf(kind ErrorKind, span Span, expected []string, found string) {
	p.addError(&SyntaxError{
		Kind:     kind,
		Span:     span,
		Expected: expected,
		Found:    found,
	})
}

// addError records err unless an error was already reported at the same
// offset; recovery tends to trip over the same spot twice.
func (p *Parser) addError(err *SyntaxError) {
	for _, prev := range p.errors {
		if prev.Span.Start.Offset == err.Span.Start.Offset {
			return
		}
	}

	p.errors = append(p.errors, err)
}
