package arith

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.arith.dev/internal/test"
)

func TestParser(t *testing.T) {
	cases := []struct {
		data   string
		expect Expr
	}{
		{"42", Number(42)},
		{"  42  ", Number(42)},
		{"-5", Number(-5)},
		{"0", Number(0)},
		{"007", Number(7)},
		{"9223372036854775807", Number(math.MaxInt64)},
		{"-9223372036854775808", Number(math.MinInt64)},
		{"- 5", Negate(Number(5))},
		{"-(5)", Negate(Number(5))},
		{"--5", Negate(Number(-5))},
		{"- -5", Negate(Number(-5))},
		{"--(5)", Negate(Negate(Number(5)))},
		{"- - 5", Negate(Negate(Number(5)))},
		{"((7))", Number(7)},
		{"1+2", Add(Number(1), Number(2))},
		{"1 +   2", Add(Number(1), Number(2))},
		{"8/4/2", Divide(Divide(Number(8), Number(4)), Number(2))},
		{"5 - 3 + 1", Add(Subtract(Number(5), Number(3)), Number(1))},
		{"1 * 2 / 3", Divide(Multiply(Number(1), Number(2)), Number(3))},
		{"2+3*4", Add(Number(2), Multiply(Number(3), Number(4)))},
		{"2*3+4", Add(Multiply(Number(2), Number(3)), Number(4))},
		{"(2+3)*4", Multiply(Add(Number(2), Number(3)), Number(4))},
		{"2 * (3 - 4) / 5", Divide(Multiply(Number(2), Subtract(Number(3), Number(4))), Number(5))},
		{"-(2+3)*4", Multiply(Negate(Add(Number(2), Number(3))), Number(4))},
		{"1 -2", Subtract(Number(1), Number(2))},
		{"1--2", Subtract(Number(1), Number(-2))},
		{"2 * -3", Multiply(Number(2), Number(-3))},
		{"10/0", Divide(Number(10), Number(0))},
		{"( 1 + 2 )", Add(Number(1), Number(2))},
	}

	for _, c := range cases {
		got, errs := Parse(c.data)
		if !assert.Empty(t, errs, c.data) {
			continue
		}

		assert.Equal(t, c.expect, got, c.data)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		data    string
		kinds   []ErrorKind
		columns []int
	}{
		{"1+", []ErrorKind{ErrUnexpectedInput}, []int{3}},
		{"(1+2", []ErrorKind{ErrUnclosedParenthesis}, []int{5}},
		{"1 2", []ErrorKind{ErrTrailingInput}, []int{3}},
		{"abc", []ErrorKind{ErrUnexpectedInput}, []int{1}},
		{"1)", []ErrorKind{ErrTrailingInput}, []int{2}},
		{"()", []ErrorKind{ErrUnexpectedInput}, []int{2}},
		{"(1 2)", []ErrorKind{ErrUnexpectedInput}, []int{4}},
		{"1 + * 2", []ErrorKind{ErrUnexpectedInput}, []int{5}},
		{"12ab", []ErrorKind{ErrMalformedInteger}, []int{1}},
		{"1.5", []ErrorKind{ErrMalformedInteger}, []int{1}},
		{"9223372036854775808", []ErrorKind{ErrIntegerOverflow}, []int{1}},
		{"-9223372036854775809", []ErrorKind{ErrIntegerOverflow}, []int{1}},
		{"abc + 1x", []ErrorKind{ErrUnexpectedInput, ErrMalformedInteger}, []int{1, 7}},
		{"", []ErrorKind{ErrUnexpectedInput}, []int{1}},
		{"-", []ErrorKind{ErrUnexpectedInput}, []int{2}},
		{"é", []ErrorKind{ErrUnexpectedInput}, []int{1}},
		{"é + ", []ErrorKind{ErrUnexpectedInput, ErrUnexpectedInput}, []int{1, 5}},
	}

	for _, c := range cases {
		got, errs := Parse(c.data)
		assert.Nil(t, got, c.data)

		if !assert.Len(t, errs, len(c.kinds), c.data) {
			continue
		}

		for i, err := range errs {
			assert.Equal(t, c.kinds[i], err.Kind, c.data)
			assert.Equal(t, c.columns[i], err.Span.Start.Column, c.data)
		}
	}
}

func TestParserErrorDetails(t *testing.T) {
	_, errs := Parse("(1+2")
	require.Len(t, errs, 1)
	require.NotNil(t, errs[0].Opening)
	assert.Equal(t, 1, errs[0].Opening.Column)
	assert.Equal(t, "1:5: expected ')', found end of input (unclosed '(' at 1:1)", errs[0].Error())

	_, errs = Parse("1 2")
	require.Len(t, errs, 1)
	assert.Equal(t, "1:3: expected an operator or end of input, found '2'", errs[0].Error())

	_, errs = Parse("abc")
	require.Len(t, errs, 1)
	assert.Equal(t, 4, errs[0].Span.End.Column)
	assert.Equal(t, "1:1: expected a number, '(' or '-', found 'a'", errs[0].Error())

	_, errs = Parse("12ab")
	require.Len(t, errs, 1)
	assert.Equal(t, `1:1: malformed integer literal "12ab"`, errs[0].Error())

	_, errs = Parse("1 + 99999999999999999999")
	require.Len(t, errs, 1)
	assert.Equal(t, "1:5: integer literal 99999999999999999999 overflows a 64-bit signed integer", errs[0].Error())
}

func TestParserLiterals(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		v := r.Int63()
		if i%2 == 0 {
			v = -v
		}

		got, errs := Parse(strconv.FormatInt(v, 10))
		require.Empty(t, errs)
		assert.Equal(t, Number(v), got)
	}
}

func TestParserNegation(t *testing.T) {
	for _, src := range []string{"(1)", "(1 + 2)", "(2 * 3)", "(-4)", "-(5)"} {
		inner, errs := Parse(src)
		require.Empty(t, errs, src)

		got, errs := Parse("-" + src)
		require.Empty(t, errs, src)
		assert.Equal(t, Negate(inner), got, src)

		got, errs = Parse("--" + src)
		require.Empty(t, errs, src)
		assert.Equal(t, Negate(Negate(inner)), got, src)
	}
}

func TestParserWhitespace(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		seed := r.Int63()

		spaced, errs := Parse(test.GetRandomExpr(rand.New(rand.NewSource(seed)), 8))
		require.Empty(t, errs)

		tight, errs := Parse(test.GetRandomExprWithSep(rand.New(rand.NewSource(seed)), 8, ""))
		require.Empty(t, errs)

		assert.True(t, Equal(spaced, tight), "%s != %s", spaced, tight)
	}
}

func TestBinaryOpFor(t *testing.T) {
	assert.Equal(t, BinaryAddition, binaryOpFor('+'))
	assert.Equal(t, BinarySubtraction, binaryOpFor('-'))
	assert.Equal(t, BinaryMultiplication, binaryOpFor('*'))
	assert.Equal(t, BinaryDivision, binaryOpFor('/'))
	assert.Panics(t, func() { binaryOpFor('%') })
}

// Use a package-level variable to avoid compiler optimisation
var benchResult Expr

func benchmarkParser(size int, b *testing.B) {
	data := test.GetRandomExpr(rand.New(rand.NewSource(1)), size)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		expr, errs := Parse(data)
		if len(errs) != 0 {
			b.Fatal(errs[0])
		}

		benchResult = expr
	}
}

func BenchmarkParser10(b *testing.B) {
	benchmarkParser(10, b)
}

func BenchmarkParser100(b *testing.B) {
	benchmarkParser(100, b)
}

func BenchmarkParser1000(b *testing.B) {
	benchmarkParser(1000, b)
}
