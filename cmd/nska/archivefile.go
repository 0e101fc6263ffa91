package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/nskeyed-format/go-nskeyed/ir"
	"github.com/nskeyed-format/go-nskeyed/unarchive"

	"github.com/scott-cotton/cli"
)

// getArchive reads the plist at path ("-" for stdin), decodes the keyed
// archive within, and returns the decoded value tree.
func getArchive(cc *cli.Context, path string, opts ...unarchive.Option) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	u, err := unarchive.Reader(bytes.NewReader(d), opts...)
	if err != nil {
		return nil, err
	}
	return u.Decode()
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
