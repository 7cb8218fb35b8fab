package arith

import (
	"fmt"
)

// Expr is a node of the expression tree. The set of implementations is
// closed: *BinaryExpr, *UnaryExpr and *LiteralExpr.
type Expr interface {
	fmt.Stringer
	exprNode()
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
)

func (op BinaryOp) name() string {
	switch op {
	case BinaryAddition:
		return "Add"
	case BinarySubtraction:
		return "Subtract"
	case BinaryMultiplication:
		return "Multiply"
	case BinaryDivision:
		return "Divide"
	}

	panic("unexpected binary op: " + string(op))
}

type BinaryExpr struct {
	Operation BinaryOp
	Op1       Expr
	Op2       Expr
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%s(%s, %s)", e.Operation.name(), e.Op1, e.Op2)
}

type UnaryOp string

const (
	UnaryNegative UnaryOp = "-"
)

type UnaryExpr struct {
	Operation UnaryOp
	Operand   Expr
}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("Negate(%s)", e.Operand)
}

type LiteralExpr struct {
	Value int64
}

func (e *LiteralExpr) String() string {
	return fmt.Sprintf("Number(%d)", e.Value)
}

// badExpr stands in for a subtree that failed to parse so the parser can
// keep going and report further errors. It never leaves the package.
type badExpr struct {
	Location Location
}

func (e *badExpr) String() string {
	return "Bad"
}

func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode() {}
func (*LiteralExpr) exprNode() {}
func (*badExpr) exprNode() {}

// Equal reports whether a and b have the same shape and values.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *BinaryExpr:
		y, ok := b.(*BinaryExpr)
		return ok && x.Operation == y.Operation && Equal(x.Op1, y.Op1) && Equal(x.Op2, y.Op2)
	case *UnaryExpr:
		y, ok := b.(*UnaryExpr)
		return ok && x.Operation == y.Operation && Equal(x.Operand, y.Operand)
	case *LiteralExpr:
		y, ok := b.(*LiteralExpr)
		return ok && x.Value == y.Value
	}

	return false
}

// Convenience constructors, mostly used by tests and tools that build trees
// by hand.

func Number(v int64) Expr { return &LiteralExpr{Value: v} }
func Negate(e Expr) Expr { return &UnaryExpr{Operation: UnaryNegative, Operand: e} }
func Add(l, r Expr) Expr { return &BinaryExpr{Operation: BinaryAddition, Op1: l, Op2: r} }
func Subtract(l, r Expr) Expr { return &BinaryExpr{Operation: BinarySubtraction, Op1: l, Op2: r} }
func Multiply(l, r Expr) Expr { return &BinaryExpr{Operation: BinaryMultiplication, Op1: l, Op2: r} }
func Divide(l, r Expr) Expr { return &BinaryExpr{Operation: BinaryDivision, Op1: l, Op2: r} }
