package unarchive

import (
	"errors"
	"testing"

	"github.com/nskeyed-format/go-nskeyed/ir"

	"github.com/google/go-cmp/cmp"
)

func newArchive(top map[string]*ir.Node, objects []*ir.Node) *ir.Node {
	return ir.FromMap(map[string]*ir.Node{
		archiverKey: ir.FromString(archiverName),
		versionKey:  ir.FromUint(archiverVersion),
		topKey:      ir.FromMap(top),
		objectsKey:  ir.FromSlice(objects),
	})
}

// table prepends the reserved "$null" entry at index 0.
func table(objects ...*ir.Node) []*ir.Node {
	return append([]*ir.Node{ir.FromString(nullObjectName)}, objects...)
}

func classMeta(names ...string) *ir.Node {
	values := make([]*ir.Node, len(names))
	for i, name := range names {
		values[i] = ir.FromString(name)
	}
	return ir.FromMap(map[string]*ir.Node{
		classesKey: ir.FromSlice(values),
	})
}

func decode(t *testing.T, root *ir.Node, opts ...Option) (*ir.Node, error) {
	t.Helper()
	u, err := New(root, opts...)
	if err != nil {
		return nil, err
	}
	return u.Decode()
}

func mustDecode(t *testing.T, root *ir.Node, opts ...Option) *ir.Node {
	t.Helper()
	res, err := decode(t, root, opts...)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	return res
}

func checkTree(t *testing.T, got, want *ir.Node) {
	t.Helper()
	if !ir.Equal(got, want) {
		t.Errorf("decoded tree mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestDecodeScalarRoot(t *testing.T) {
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1)},
		table(ir.FromString("hello")),
	)
	got := mustDecode(t, root)
	want := ir.FromMap(map[string]*ir.Node{"root": ir.FromString("hello")})
	checkTree(t, got, want)
}

func TestHeaderValidation(t *testing.T) {
	ok := func() *ir.Node {
		return newArchive(map[string]*ir.Node{"root": ir.FromUID(1)}, table(ir.FromInt(7)))
	}
	tests := []struct {
		name    string
		mutate  func(root *ir.Node)
		wantErr error
	}{
		{"valid", func(root *ir.Node) {}, nil},
		{"missing archiver", func(root *ir.Node) { ir.Take(root, archiverKey) }, ErrMissingHeaderKey},
		{"missing version", func(root *ir.Node) { ir.Take(root, versionKey) }, ErrMissingHeaderKey},
		{"missing top", func(root *ir.Node) { ir.Take(root, topKey) }, ErrMissingHeaderKey},
		{"missing objects", func(root *ir.Node) { ir.Take(root, objectsKey) }, ErrMissingHeaderKey},
		{"archiver wrong type", func(root *ir.Node) {
			ir.Take(root, archiverKey)
			ir.Put(root, archiverKey, ir.FromInt(3))
		}, ErrWrongValueType},
		{"unknown archiver", func(root *ir.Node) {
			ir.Take(root, archiverKey)
			ir.Put(root, archiverKey, ir.FromString("NSArchiver"))
		}, ErrUnsupportedArchiver},
		{"version wrong type", func(root *ir.Node) {
			ir.Take(root, versionKey)
			ir.Put(root, versionKey, ir.FromString("100000"))
		}, ErrWrongValueType},
		{"unsupported version", func(root *ir.Node) {
			ir.Take(root, versionKey)
			ir.Put(root, versionKey, ir.FromUint(99999))
		}, ErrUnsupportedVersion},
		{"top wrong type", func(root *ir.Node) {
			ir.Take(root, topKey)
			ir.Put(root, topKey, ir.FromSlice(nil))
		}, ErrWrongValueType},
		{"objects wrong type", func(root *ir.Node) {
			ir.Take(root, objectsKey)
			ir.Put(root, objectsKey, ir.FromString("x"))
		}, ErrWrongValueType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := ok()
			tt.mutate(root)
			_, err := decode(t, root)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootNotDictionary(t *testing.T) {
	_, err := New(ir.FromString("nope"))
	if !errors.Is(err, ErrWrongValueType) {
		t.Errorf("got error %v, want %v", err, ErrWrongValueType)
	}
}

func TestRootEntryErrors(t *testing.T) {
	t.Run("uid zero", func(t *testing.T) {
		root := newArchive(map[string]*ir.Node{"root": ir.FromUID(0)}, table())
		_, err := decode(t, root)
		if !errors.Is(err, ErrMalformedObject) {
			t.Errorf("got error %v, want %v", err, ErrMalformedObject)
		}
	})
	t.Run("not a uid", func(t *testing.T) {
		root := newArchive(map[string]*ir.Node{"root": ir.FromString("x")}, table())
		_, err := decode(t, root)
		if !errors.Is(err, ErrExpectedReference) {
			t.Errorf("got error %v, want %v", err, ErrExpectedReference)
		}
	})
}

func TestDanglingReference(t *testing.T) {
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(999)},
		table(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3), ir.FromInt(4)),
	)
	_, err := decode(t, root)
	if !errors.Is(err, ErrDanglingReference) {
		t.Errorf("got error %v, want %v", err, ErrDanglingReference)
	}
}

func TestArrayDropsAbsentElements(t *testing.T) {
	// table: 1 container, 2 class meta, 3 "first", 4 "third"
	container := ir.FromMap(map[string]*ir.Node{
		classKey: ir.FromUID(2),
		nsObjectsKey: ir.FromSlice([]*ir.Node{
			ir.FromUID(3), ir.FromUID(0), ir.FromUID(4),
		}),
	})
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1)},
		table(container, classMeta("NSArray", "NSObject"),
			ir.FromString("first"), ir.FromString("third")),
	)
	got := mustDecode(t, root)
	want := ir.FromMap(map[string]*ir.Node{
		"root": ir.FromSlice([]*ir.Node{
			ir.FromString("first"), ir.FromString("third"),
		}),
	})
	checkTree(t, got, want)
}

func TestArrayMissingObjects(t *testing.T) {
	container := ir.FromMap(map[string]*ir.Node{
		classKey: ir.FromUID(2),
	})
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1)},
		table(container, classMeta("NSMutableArray", "NSArray", "NSObject")),
	)
	_, err := decode(t, root)
	if !errors.Is(err, ErrMalformedObject) {
		t.Errorf("got error %v, want %v", err, ErrMalformedObject)
	}
}

func dictRecord(key, val *ir.Node) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("key"), Val: key},
		{Key: ir.FromString("value"), Val: val},
	})
}

func TestDictionaryRecords(t *testing.T) {
	container := ir.FromMap(map[string]*ir.Node{
		classKey:     ir.FromUID(2),
		nsKeysKey:    ir.FromSlice([]*ir.Node{ir.FromUID(3), ir.FromUID(4)}),
		nsObjectsKey: ir.FromSlice([]*ir.Node{ir.FromUID(5), ir.FromUID(6)}),
	})
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1)},
		table(container, classMeta("NSDictionary", "NSObject"),
			ir.FromString("a"), ir.FromString("b"),
			ir.FromInt(1), ir.FromInt(2)),
	)
	got := mustDecode(t, root)
	want := ir.FromMap(map[string]*ir.Node{
		"root": ir.FromSlice([]*ir.Node{
			dictRecord(ir.FromString("a"), ir.FromInt(1)),
			dictRecord(ir.FromString("b"), ir.FromInt(2)),
		}),
	})
	checkTree(t, got, want)
}

func TestDictionaryAbsentEntryFails(t *testing.T) {
	tests := []struct {
		name   string
		keyRef uint64
		valRef uint64
	}{
		{"absent value", 3, 0},
		{"absent key", 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := ir.FromMap(map[string]*ir.Node{
				classKey:     ir.FromUID(2),
				nsKeysKey:    ir.FromSlice([]*ir.Node{ir.FromUID(tt.keyRef)}),
				nsObjectsKey: ir.FromSlice([]*ir.Node{ir.FromUID(tt.valRef)}),
			})
			root := newArchive(
				map[string]*ir.Node{"root": ir.FromUID(1)},
				table(container, classMeta("NSDictionary", "NSObject"),
					ir.FromString("a"), ir.FromInt(1)),
			)
			_, err := decode(t, root)
			if !errors.Is(err, ErrMalformedObject) {
				t.Errorf("got error %v, want %v", err, ErrMalformedObject)
			}
		})
	}
}

func TestCustomClass(t *testing.T) {
	// table: 1 container, 2 class meta, 3 "bob", 4 nested string
	container := ir.FromMap(map[string]*ir.Node{
		classKey: ir.FromUID(2),
		"age":    ir.FromInt(42),
		"name":   ir.FromUID(3),
		"pets":   ir.FromSlice([]*ir.Node{ir.FromUID(4), ir.FromUID(0)}),
		"spouse": ir.FromUID(0),
	})
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1)},
		table(container, classMeta("Person", "NSObject"),
			ir.FromString("bob"), ir.FromString("rex")),
	)
	got := mustDecode(t, root)
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("root"), Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString(classesKey), Val: ir.FromSlice([]*ir.Node{
				ir.FromString("Person"), ir.FromString("NSObject"),
			})},
			{Key: ir.FromString("age"), Val: ir.FromInt(42)},
			{Key: ir.FromString("name"), Val: ir.FromString("bob")},
			{Key: ir.FromString("pets"), Val: ir.FromSlice([]*ir.Node{
				ir.FromString("rex"),
			})},
			// spouse resolved to absence and is omitted
		})},
	})
	checkTree(t, got, want)
}

func TestCustomClassSequenceSkipsMalformedElements(t *testing.T) {
	container := ir.FromMap(map[string]*ir.Node{
		classKey: ir.FromUID(2),
		// 999 dangles; it is skipped rather than failing the field
		"items": ir.FromSlice([]*ir.Node{ir.FromUID(3), ir.FromUID(999)}),
	})
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1)},
		table(container, classMeta("Box", "NSObject"), ir.FromString("kept")),
	)
	got := mustDecode(t, root)
	items := ir.Get(ir.Get(got, "root"), "items")
	want := ir.FromSlice([]*ir.Node{ir.FromString("kept")})
	checkTree(t, items, want)
}

func TestTreatAllAsClasses(t *testing.T) {
	container := ir.FromMap(map[string]*ir.Node{
		classKey:     ir.FromUID(2),
		nsObjectsKey: ir.FromSlice([]*ir.Node{ir.FromUID(3)}),
	})
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1)},
		table(container, classMeta("NSArray", "NSObject"), ir.FromString("el")),
	)
	got := mustDecode(t, root, TreatAllAsClasses(true))
	want := ir.FromMap(map[string]*ir.Node{
		"root": ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString(classesKey), Val: ir.FromSlice([]*ir.Node{
				ir.FromString("NSArray"), ir.FromString("NSObject"),
			})},
			{Key: ir.FromString(nsObjectsKey), Val: ir.FromSlice([]*ir.Node{
				ir.FromString("el"),
			})},
		}),
	})
	checkTree(t, got, want)
}

func TestLeaveNullValues(t *testing.T) {
	container := ir.FromMap(map[string]*ir.Node{
		classKey: ir.FromUID(2),
		"gone":   ir.FromUID(3),
	})
	build := func() *ir.Node {
		return newArchive(
			map[string]*ir.Node{"root": ir.FromUID(1)},
			table(container.Clone(), classMeta("Thing", "NSObject"),
				ir.FromString(nullObjectName)),
		)
	}

	got := mustDecode(t, build(), LeaveNullValues(true))
	if v := ir.Get(ir.Get(got, "root"), "gone"); v == nil || v.String != nullObjectName {
		t.Errorf("gone = %v, want literal %q", v, nullObjectName)
	}

	got = mustDecode(t, build())
	if v := ir.Get(ir.Get(got, "root"), "gone"); v != nil {
		t.Errorf("gone = %v, want omitted", v)
	}
}

func TestCyclicReference(t *testing.T) {
	container := ir.FromMap(map[string]*ir.Node{
		classKey: ir.FromUID(2),
		"self":   ir.FromUID(1),
	})
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1)},
		table(container, classMeta("Loop", "NSObject")),
	)
	_, err := decode(t, root)
	if !errors.Is(err, ErrCyclicReference) {
		t.Errorf("got error %v, want %v", err, ErrCyclicReference)
	}
}

func TestSharedReferenceIsNotACycle(t *testing.T) {
	// two fields referencing the same object decode independently
	container := ir.FromMap(map[string]*ir.Node{
		classKey: ir.FromUID(2),
		"left":   ir.FromUID(3),
		"right":  ir.FromUID(3),
	})
	root := newArchive(
		map[string]*ir.Node{"root": ir.FromUID(1)},
		table(container, classMeta("Pair", "NSObject"), ir.FromString("shared")),
	)
	got := mustDecode(t, root)
	obj := ir.Get(got, "root")
	for _, key := range []string{"left", "right"} {
		if v := ir.Get(obj, key); v == nil || v.String != "shared" {
			t.Errorf("%s = %v, want %q", key, v, "shared")
		}
	}
}

func TestEmptyClassChain(t *testing.T) {
	container := ir.FromMap(map[string]*ir.Node{
		classKey: ir.FromUID(2),
	})
	t.Run("root is an error", func(t *testing.T) {
		root := newArchive(
			map[string]*ir.Node{"root": ir.FromUID(1)},
			table(container.Clone(), classMeta()),
		)
		_, err := decode(t, root)
		if !errors.Is(err, ErrMalformedObject) {
			t.Errorf("got error %v, want %v", err, ErrMalformedObject)
		}
	})
	t.Run("array element is dropped", func(t *testing.T) {
		arr := ir.FromMap(map[string]*ir.Node{
			classKey:     ir.FromUID(4),
			nsObjectsKey: ir.FromSlice([]*ir.Node{ir.FromUID(2)}),
		})
		unresolvable := ir.FromMap(map[string]*ir.Node{
			classKey: ir.FromUID(3),
		})
		root := newArchive(
			map[string]*ir.Node{"root": ir.FromUID(1)},
			table(arr, unresolvable, classMeta(),
				classMeta("NSArray", "NSObject")),
		)
		got := mustDecode(t, root)
		want := ir.FromMap(map[string]*ir.Node{"root": ir.FromSlice(nil)})
		checkTree(t, got, want)
	})
}
