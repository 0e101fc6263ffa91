package unarchive

import (
	"testing"

	"github.com/nskeyed-format/go-nskeyed/ir"
)

// reencoder builds a fresh archive from a decoded value tree using the
// native array conventions, for checking decode idempotence.
type reencoder struct {
	objects []*ir.Node
}

func (e *reencoder) append(y *ir.Node) uint64 {
	e.objects = append(e.objects, y)
	return uint64(len(e.objects) - 1)
}

func (e *reencoder) add(y *ir.Node) uint64 {
	if y.Type != ir.ArrayType {
		return e.append(y.Clone())
	}
	refs := make([]*ir.Node, len(y.Values))
	for i, v := range y.Values {
		refs[i] = ir.FromUID(e.add(v))
	}
	meta := e.append(classMeta("NSArray", "NSObject"))
	return e.append(ir.FromMap(map[string]*ir.Node{
		classKey:     ir.FromUID(meta),
		nsObjectsKey: ir.FromSlice(refs),
	}))
}

func (e *reencoder) archive(tree *ir.Node) *ir.Node {
	e.objects = []*ir.Node{ir.FromString(nullObjectName)}
	top := map[string]*ir.Node{}
	for i, f := range tree.Fields {
		top[f.String] = ir.FromUID(e.add(tree.Values[i]))
	}
	return newArchive(top, e.objects)
}

func TestRoundTrip(t *testing.T) {
	inner := ir.FromMap(map[string]*ir.Node{
		classKey:     ir.FromUID(5),
		nsObjectsKey: ir.FromSlice([]*ir.Node{ir.FromUID(6)}),
	})
	outer := ir.FromMap(map[string]*ir.Node{
		classKey: ir.FromUID(2),
		nsObjectsKey: ir.FromSlice([]*ir.Node{
			ir.FromUID(3), ir.FromUID(4),
		}),
	})
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1), "count": ir.FromUID(3)},
		[]*ir.Node{
			ir.FromString(nullObjectName),
			outer,
			classMeta("NSArray", "NSObject"),
			ir.FromInt(3),
			inner,
			classMeta("NSMutableArray", "NSArray", "NSObject"),
			ir.FromString("deep"),
		},
	)

	first := mustDecode(t, root)
	second := mustDecode(t, (&reencoder{}).archive(first))
	checkTree(t, second, first)
}
