// Package ir provides the intermediate representation (IR) for property list
// documents.
//
// # Overview
//
// The IR package defines the core data structure for representing property
// list values as a tree of nodes. All documents, whether parsed from XML or
// binary plist bytes or created programmatically, are represented as ir.Node
// trees.
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - IntegerType: integer value (int64 or uint64)
//   - RealType: floating point value (64-bit IEEE float)
//   - DateType: point in time
//   - DataType: raw bytes
//   - UIDType: an object reference into a keyed archive's object table
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: ordered key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	ref := ir.FromUID(7)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Keys are usually
// String typed; keyed-archive dictionary records may carry keys of any leaf
// type. Field order is preserved as given; FromMap normalizes to sorted key
// order since Go maps carry no order of their own.
//
// Integer values are placed under Int64 or Uint64 depending on signedness,
// mirroring the property list data model which distinguishes the two.
//
// # Comparison
//
// Nodes can be compared for equality and ordering:
//
//	equal := ir.Equal(a, b)
//	c := ir.Compare(a, b)
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
//
// # Related Packages
//
//   - github.com/nskeyed-format/go-nskeyed/parse - Parses plist bytes into IR nodes
//   - github.com/nskeyed-format/go-nskeyed/encode - Encodes IR nodes to output formats
//   - github.com/nskeyed-format/go-nskeyed/unarchive - Decodes keyed archives over the IR
package ir
