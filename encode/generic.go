package encode

import (
	"encoding/base64"
	"time"

	"github.com/nskeyed-format/go-nskeyed/ir"

	"github.com/goccy/go-yaml"
	"howett.net/plist"
)

// plistValue renders a node in the codec's generic representation, suitable
// for the plist and CBOR encoders.
func plistValue(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		// property lists have no null; keep the archiver's sentinel
		return "$null"
	case ir.BoolType:
		return node.Bool
	case ir.IntegerType:
		if u, ok := node.AsUint(); ok {
			return u
		}
		return *node.Int64
	case ir.RealType:
		return *node.Float64
	case ir.DateType:
		return node.Time
	case ir.DataType:
		return node.Bytes
	case ir.UIDType:
		return plist.UID(node.UID)
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = plistValue(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[fieldName(f)] = plistValue(node.Values[i])
		}
		return res
	}
	return nil
}

// jsonValue renders a node with only JSON-safe types: dates become RFC 3339
// strings, data becomes base64, references become plain integers.
func jsonValue(node *ir.Node) any {
	switch node.Type {
	case ir.DateType:
		return node.Time.UTC().Format(time.RFC3339)
	case ir.DataType:
		return base64.StdEncoding.EncodeToString(node.Bytes)
	case ir.UIDType:
		return node.UID
	case ir.NullType:
		return nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = jsonValue(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[fieldName(f)] = jsonValue(node.Values[i])
		}
		return res
	default:
		return plistValue(node)
	}
}

// yamlValue is like jsonValue but preserves field order via yaml.MapSlice.
func yamlValue(node *ir.Node) any {
	switch node.Type {
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = yamlValue(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: fieldName(f), Value: yamlValue(node.Values[i])}
		}
		return res
	default:
		return jsonValue(node)
	}
}

func fieldName(f *ir.Node) string {
	if f.Type == ir.StringType {
		return f.String
	}
	d, err := jsonText(f)
	if err != nil {
		return f.Type.String()
	}
	return string(d)
}
