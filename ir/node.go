package ir

import (
	"maps"
	"slices"
	"time"
)

// Node is a single value in a property list document. The Type field
// determines which value fields are meaningful. Objects are represented with
// parallel Fields/Values slices so that field order is preserved and keys are
// not restricted to strings: Fields[i] is the key node for Values[i].
type Node struct {
	Type Type

	String  string
	Bool    bool
	Int64   *int64
	Uint64  *uint64
	Float64 *float64
	Time    time.Time
	Bytes   []byte
	UID     uint64

	Fields []*Node
	Values []*Node
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Uint64 != nil {
		u := *y.Uint64
		dst.Uint64 = &u
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Time = y.Time
	if y.Bytes != nil {
		dst.Bytes = slices.Clone(y.Bytes)
	}
	dst.UID = y.UID
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: &v}
}

func FromUint(v uint64) *Node {
	return &Node{Type: IntegerType, Uint64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: RealType, Float64: &v}
}

func FromDate(v time.Time) *Node {
	return &Node{Type: DateType, Time: v}
}

func FromData(v []byte) *Node {
	return &Node{Type: DataType, Bytes: v}
}

func FromUID(v uint64) *Node {
	return &Node{Type: UIDType, UID: v}
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{Type: ArrayType, Values: ySlice}
}

// FromMap builds an object node with fields in sorted key order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(yMap))
	res.Fields = make([]*Node, len(keys))
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = yMap[key]
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// Get returns the value of the named field, or nil if y is not an object or
// has no such field.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].Type == StringType && y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Take removes the named field from y and returns its value, or nil if y has
// no such field.
func Take(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].Type == StringType && y.Fields[i].String == field {
			res := y.Values[i]
			y.Fields = slices.Delete(y.Fields, i, i+1)
			y.Values = slices.Delete(y.Values, i, i+1)
			return res
		}
	}
	return nil
}

// Put appends a field to an object node.
func Put(y *Node, field string, val *Node) {
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, val)
}

// AsUint returns the integer value of y as a uint64. It reports false when y
// is not an integer or is negative.
func (y *Node) AsUint() (uint64, bool) {
	if y.Type != IntegerType {
		return 0, false
	}
	if y.Uint64 != nil {
		return *y.Uint64, true
	}
	if y.Int64 != nil && *y.Int64 >= 0 {
		return uint64(*y.Int64), true
	}
	return 0, false
}
