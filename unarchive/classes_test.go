package unarchive

import (
	"errors"
	"testing"

	"github.com/nskeyed-format/go-nskeyed/ir"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		treatAll bool
		expected containerKind
	}{
		{"NSDictionary", false, dictKind},
		{"NSMutableDictionary", false, dictKind},
		{"NSArray", false, arrayKind},
		{"NSMutableArray", false, arrayKind},
		{"NSSet", false, classKind},
		{"Person", false, classKind},
		{"NSDictionary", true, classKind},
		{"NSArray", true, classKind},
		{"Person", true, classKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.name, tt.treatAll); got != tt.expected {
				t.Errorf("classify(%q, %v) = %v, want %v", tt.name, tt.treatAll, got, tt.expected)
			}
		})
	}
}

func TestClassNames(t *testing.T) {
	u := &Unarchiver{objects: []*ir.Node{
		ir.FromString(nullObjectName),
		classMeta("NSMutableArray", "NSArray", "NSObject"),
		ir.FromString("not a class"),
		ir.FromMap(map[string]*ir.Node{"other": ir.FromInt(1)}),
		ir.FromMap(map[string]*ir.Node{classesKey: ir.FromString("not an array")}),
		ir.FromMap(map[string]*ir.Node{
			classesKey: ir.FromSlice([]*ir.Node{ir.FromInt(3)}),
		}),
	}}

	names, err := u.classNames(1)
	if err != nil {
		t.Fatalf("classNames(1) error: %v", err)
	}
	want := []string{"NSMutableArray", "NSArray", "NSObject"}
	if len(names) != len(want) {
		t.Fatalf("classNames(1) = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("classNames(1)[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	for _, ref := range []uint64{2, 3, 4, 5, 99} {
		if _, err := u.classNames(ref); !errors.Is(err, ErrMalformedObject) {
			t.Errorf("classNames(%d) error = %v, want %v", ref, err, ErrMalformedObject)
		}
	}
}
