package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Types rank in declaration order:
// Null < Bool < Integer < Real < Date < Data < UID < String < Array < Object.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntegerType:
		return compareIntegers(a, b)
	case RealType:
		return cmp.Compare(*a.Float64, *b.Float64)
	case DateType:
		return a.Time.Compare(b.Time)
	case DataType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case UIDType:
		return cmp.Compare(a.UID, b.UID)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether two nodes represent the same value tree.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareIntegers(a, b *Node) int {
	au, aOK := a.AsUint()
	bu, bOK := b.AsUint()
	switch {
	case aOK && bOK:
		return cmp.Compare(au, bu)
	case aOK:
		// b is negative
		return 1
	case bOK:
		return -1
	default:
		return cmp.Compare(*a.Int64, *b.Int64)
	}
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
