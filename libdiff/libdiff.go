// Package libdiff computes line-level diffs of encoded decode output, used
// to compare two archives.
package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs two texts line by line.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	fromChars, toChars, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(fromChars, toChars, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// HasDiff reports whether diffs contain any insertion or deletion.
func HasDiff(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Print writes diffs in unified-ish form, one marker per line.
func Print(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	for i := range diffs {
		diff := &diffs[i]
		var marker string
		var paint func(string, ...any) string
		switch diff.Type {
		case diffpatch.DiffInsert:
			marker, paint = "+ ", color.GreenString
		case diffpatch.DiffDelete:
			marker, paint = "- ", color.RedString
		default:
			marker, paint = "  ", func(s string, _ ...any) string { return s }
		}
		for _, line := range splitLines(diff.Text) {
			out := marker + line + "\n"
			if colored {
				out = paint("%s", out)
			}
			if _, err := io.WriteString(w, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
