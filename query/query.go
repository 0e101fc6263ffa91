// Package query evaluates expr-lang expressions against decoded archives.
// The decoded tree is bound to the identifier "doc" as plain Go values.
package query

import (
	"fmt"
	"time"

	"github.com/nskeyed-format/go-nskeyed/ir"

	"github.com/expr-lang/expr"
)

// Run compiles src and evaluates it with the decoded tree bound as "doc".
func Run(src string, doc *ir.Node) (any, error) {
	env := map[string]any{"doc": Plain(doc)}
	prog, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, err
	}
	return expr.Run(prog, env)
}

// Plain converts an IR tree into plain Go values: maps, slices and scalars.
func Plain(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.IntegerType:
		if node.Int64 != nil {
			return *node.Int64
		}
		return *node.Uint64
	case ir.RealType:
		return *node.Float64
	case ir.DateType:
		return node.Time
	case ir.DataType:
		return node.Bytes
	case ir.UIDType:
		return node.UID
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = Plain(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			key := f.String
			if f.Type != ir.StringType {
				key = plainKey(f)
			}
			res[key] = Plain(node.Values[i])
		}
		return res
	}
	return nil
}

func plainKey(f *ir.Node) string {
	if f.Type == ir.DateType {
		return f.Time.UTC().Format(time.RFC3339)
	}
	return fmt.Sprint(Plain(f))
}
