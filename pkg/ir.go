package arith

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// ConstantModule builds a module whose main function returns the i32
// constant 0.
func ConstantModule(name string) *ir.Module {
	mod := ir.NewModule()
	mod.SourceFilename = name

	f := mod.NewFunc("main", types.I32)
	b := f.NewBlock("entry")
	b.NewRet(constant.NewInt(types.I32, 0))

	return mod
}

// GenerateIR lowers e into the body of an i64 main function. Nothing is
// folded; every operator becomes one instruction, division by zero
// included.
func GenerateIR(name string, e Expr) *ir.Module {
	mod := ir.NewModule()
	mod.SourceFilename = name

	f := mod.NewFunc("main", types.I64)
	b := &LLVMIRBuilder{block: f.NewBlock("entry")}
	b.block.NewRet(b.recursiveLoad(e))

	return mod
}

type LLVMIRBuilder struct {
	block *ir.Block
}

func (b *LLVMIRBuilder) recursiveLoad(expr Expr) value.Value {
	switch e := expr.(type) {
	case *LiteralExpr:
		return constant.NewInt(types.I64, e.Value)
	case *BinaryExpr:
		return b.binaryExpression(e)
	case *UnaryExpr:
		return b.unaryExpression(e)
	default:
		panic("unexpected expression: " + expr.String())
	}
}

func (b *LLVMIRBuilder) binaryExpression(expr *BinaryExpr) value.Value {
	v1 := b.recursiveLoad(expr.Op1)
	v2 := b.recursiveLoad(expr.Op2)

	switch expr.Operation {
	case BinaryAddition:
		return b.block.NewAdd(v1, v2)
	case BinarySubtraction:
		return b.block.NewSub(v1, v2)
	case BinaryMultiplication:
		return b.block.NewMul(v1, v2)
	case BinaryDivision:
		return b.block.NewSDiv(v1, v2)
	default:
		panic("unexpected binary op: " + expr.Operation)
	}
}

func (b *LLVMIRBuilder) unaryExpression(expr *UnaryExpr) value.Value {
	v := b.recursiveLoad(expr.Operand)

	switch expr.Operation {
	case UnaryNegative:
		return b.block.NewSub(constant.NewInt(types.I64, 0), v)
	default:
		panic("unexpected unary op: " + expr.Operation)
	}
}
