// Package parse converts serialized property lists into IR nodes.
//
// The byte-level codec work is delegated to howett.net/plist, which
// auto-detects XML and binary plist input. This package only bridges the
// codec's generic representation into ir.Node trees.
package parse

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/nskeyed-format/go-nskeyed/ir"

	"howett.net/plist"
)

// Parse decodes a serialized property list into an IR node.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	var v any
	if _, err := plist.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fromAny(v, pOpts)
}

// Reader decodes a serialized property list from a seekable stream.
func Reader(r io.ReadSeeker, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	var v any
	if err := plist.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fromAny(v, pOpts)
}

// File decodes the property list file at path.
func File(path string, opts ...ParseOption) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Reader(f, opts...)
}

func fromAny(v any, opts *parseOpts) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case uint64:
		return ir.FromUint(t), nil
	case int64:
		return ir.FromInt(t), nil
	case float64:
		return ir.FromFloat(t), nil
	case string:
		return ir.FromString(t), nil
	case time.Time:
		return ir.FromDate(t), nil
	case []byte:
		return ir.FromData(t), nil
	case plist.UID:
		return ir.FromUID(uint64(t)), nil
	case []any:
		values := make([]*ir.Node, len(t))
		for i, el := range t {
			y, err := fromAny(el, opts)
			if err != nil {
				return nil, err
			}
			values[i] = y
		}
		return ir.FromSlice(values), nil
	case map[string]any:
		return fromMapAny(t, opts)
	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T", ErrParse, v)
	}
}

func fromMapAny(m map[string]any, opts *parseOpts) (*ir.Node, error) {
	// The codec exposes dictionaries as Go maps, so document order is not
	// observable. Keys are normalized to sorted order for deterministic
	// output unless SortKeys(false) was given.
	keys := slices.Collect(maps.Keys(m))
	if opts.sortKeys {
		slices.Sort(keys)
	}
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, key := range keys {
		y, err := fromAny(m[key], opts)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: y})
	}
	return ir.FromKeyVals(kvs), nil
}
