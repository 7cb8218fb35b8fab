package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantModule(t *testing.T) {
	got := ConstantModule("Test").String()

	assert.Contains(t, got, `source_filename = "Test"`)
	assert.Contains(t, got, "define i32 @main()")
	assert.Contains(t, got, "ret i32 0")
}

func TestGenerateIR(t *testing.T) {
	cases := []struct {
		data   Expr
		expect []string
	}{
		{
			Number(7),
			[]string{"define i64 @main()", "ret i64 7"},
		},
		{
			Add(Number(1), Multiply(Number(2), Number(3))),
			[]string{"mul i64 2, 3", "add i64 1, %"},
		},
		{
			Divide(Number(10), Number(0)),
			[]string{"sdiv i64 10, 0"},
		},
		{
			Negate(Number(5)),
			[]string{"sub i64 0, 5"},
		},
		{
			Subtract(Number(-4), Number(2)),
			[]string{"sub i64 -4, 2"},
		},
	}

	for _, c := range cases {
		got := GenerateIR("expr", c.data).String()

		for _, want := range c.expect {
			assert.Contains(t, got, want, c.data.String())
		}
	}
}

func TestGenerateIRRejectsBadExpr(t *testing.T) {
	assert.Panics(t, func() { GenerateIR("expr", &badExpr{}) })
}
