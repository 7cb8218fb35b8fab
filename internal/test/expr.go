package test

import (
	"math/rand"
	"strconv"
	"strings"
)

var operators = []string{"+", "-", "*", "/"}

// GetRandomExpr returns a well-formed expression with roughly size
// operators, using r as the source of randomness.
func GetRandomExpr(r *rand.Rand, size int) string {
	return GetRandomExprWithSep(r, size, " ")
}

func GetRandomExprWithSep(r *rand.Rand, size int, sep string) string {
	var b strings.Builder
	writeExpr(r, &b, size, sep)

	return b.String()
}

func writeExpr(r *rand.Rand, b *strings.Builder, size int, sep string) {
	if size <= 0 {
		writeFactor(r, b, sep)
		return
	}

	left := r.Intn(size)
	writeExpr(r, b, left, sep)

	b.WriteString(sep)
	b.WriteString(operators[r.Intn(len(operators))])
	b.WriteString(sep)

	if r.Intn(4) == 0 {
		b.WriteString("(")
		writeExpr(r, b, size-left-1, sep)
		b.WriteString(")")

		return
	}

	writeExpr(r, b, size-left-1, sep)
}

func writeFactor(r *rand.Rand, b *strings.Builder, sep string) {
	switch r.Intn(6) {
	case 0:
		// A bare "-5" would read as a literal without the separator, so the
		// chained negation always ends in a group
		b.WriteString("-" + sep + "-" + sep + "(")
		writeFactor(r, b, sep)
		b.WriteString(")")
	case 1:
		b.WriteString("-(")
		b.WriteString(strconv.FormatInt(r.Int63n(1000), 10))
		b.WriteString(")")
	default:
		v := r.Int63n(1_000_000)
		if r.Intn(3) == 0 {
			v = -v
		}

		b.WriteString(strconv.FormatInt(v, 10))
	}
}
