package arith

import (
	"strconv"
	"strings"
)

const (
	precAdditive = iota + 1
	precMultiplicative
	precUnary
	precAtom
)

func precedence(e Expr) int {
	switch e := e.(type) {
	case *BinaryExpr:
		if e.Operation == BinaryAddition || e.Operation == BinarySubtraction {
			return precAdditive
		}

		return precMultiplicative
	case *UnaryExpr:
		return precUnary
	}

	return precAtom
}

// Source renders e back to expression text using as few parentheses as
// the grammar allows. Parsing the result yields a tree equal to e.
func Source(e Expr) string {
	var out strings.Builder
	writeSource(&out, e)

	return out.String()
}

func writeSource(out *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *LiteralExpr:
		out.WriteString(strconv.FormatInt(e.Value, 10))
	case *UnaryExpr:
		out.WriteString(string(e.Operation))

		// -5 would read back as a literal, so a non-negative number under a
		// negation keeps its parentheses
		lit, isLit := e.Operand.(*LiteralExpr)
		if precedence(e.Operand) < precUnary || (isLit && lit.Value >= 0) {
			writeGrouped(out, e.Operand)
			return
		}

		writeSource(out, e.Operand)
	case *BinaryExpr:
		prec := precedence(e)

		// Both levels are left-associative: the left operand only needs
		// parentheses when it binds looser, the right one also when it ties.
		if precedence(e.Op1) < prec {
			writeGrouped(out, e.Op1)
		} else {
			writeSource(out, e.Op1)
		}

		out.WriteString(" " + string(e.Operation) + " ")

		if precedence(e.Op2) <= prec {
			writeGrouped(out, e.Op2)
		} else {
			writeSource(out, e.Op2)
		}
	default:
		panic("unexpected expression: " + e.String())
	}
}

func writeGrouped(out *strings.Builder, e Expr) {
	out.WriteByte('(')
	writeSource(out, e)
	out.WriteByte(')')
}
