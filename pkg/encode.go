package arith

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatDebug  Format = "debug"
	FormatSource Format = "source"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatIR     Format = "ir"
)

var formats = []Format{FormatDebug, FormatSource, FormatJSON, FormatYAML, FormatIR}

func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown format %q", s)
}

// Node is the serialisable form of an expression tree.
type Node struct {
	Kind    string `json:"kind" yaml:"kind"`
	Value   *int64 `json:"value,omitempty" yaml:"value,omitempty"`
	Operand *Node  `json:"operand,omitempty" yaml:"operand,omitempty"`
	Left    *Node  `json:"left,omitempty" yaml:"left,omitempty"`
	Right   *Node  `json:"right,omitempty" yaml:"right,omitempty"`
}

func ToNode(e Expr) *Node {
	switch e := e.(type) {
	case *LiteralExpr:
		v := e.Value
		return &Node{Kind: "number", Value: &v}
	case *UnaryExpr:
		return &Node{Kind: "negate", Operand: ToNode(e.Operand)}
	case *BinaryExpr:
		return &Node{
			Kind:  strings.ToLower(e.Operation.name()),
			Left:  ToNode(e.Op1),
			Right: ToNode(e.Op2),
		}
	}

	panic("unexpected expression: " + e.String())
}

// Encode writes e to w in the given format, followed by a newline.
func Encode(w io.Writer, e Expr, format Format) error {
	switch format {
	case FormatDebug:
		_, err := fmt.Fprintln(w, e)
		return err
	case FormatSource:
		_, err := fmt.Fprintln(w, Source(e))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ToNode(e))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ToNode(e)); err != nil {
			return err
		}

		return enc.Close()
	case FormatIR:
		_, err := fmt.Fprintln(w, GenerateIR("expr", e))
		return err
	}

	return fmt.Errorf("unknown format %q", format)
}
