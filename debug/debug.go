// Package debug provides env-gated stderr tracing for the toolkit. Tracing
// is ambient tooling, not part of any functional contract.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Decode  bool
	Classes bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("NSKA_DEBUG_DECODE")
	d.Classes = boolEnv("NSKA_DEBUG_CLASSES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Classes() bool {
	return d.Classes
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
