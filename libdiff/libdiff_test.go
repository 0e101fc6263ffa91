package libdiff

import (
	"bytes"
	"strings"
	"testing"
)

func TestLinesEqual(t *testing.T) {
	text := "a\nb\nc\n"
	diffs := Lines(text, text)
	if HasDiff(diffs) {
		t.Errorf("equal texts reported a diff: %v", diffs)
	}
}

func TestLinesDiff(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nx\nc\n"
	diffs := Lines(from, to)
	if !HasDiff(diffs) {
		t.Fatal("differing texts reported no diff")
	}
	buf := bytes.NewBuffer(nil)
	if err := Print(buf, diffs, false); err != nil {
		t.Fatalf("Print error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"- b", "+ x", "  a", "  c"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff output missing %q:\n%s", want, out)
		}
	}
}
