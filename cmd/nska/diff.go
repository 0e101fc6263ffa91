package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nskeyed-format/go-nskeyed/encode"
	"github.com/nskeyed-format/go-nskeyed/format"
	"github.com/nskeyed-format/go-nskeyed/ir"
	"github.com/nskeyed-format/go-nskeyed/libdiff"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getArchive(cc, args[0], cfg.unarchiveOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getArchive(cc, args[1], cfg.unarchiveOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	aText, err := diffText(a)
	if err != nil {
		return err
	}
	bText, err := diffText(b)
	if err != nil {
		return err
	}
	diffs := libdiff.Lines(aText, bText)
	if !libdiff.HasDiff(diffs) {
		return nil
	}
	colored := cfg.Color
	if f, ok := cc.Out.(*os.File); ok && !colored {
		colored = isatty.IsTerminal(f.Fd())
	}
	if err := libdiff.Print(cc.Out, diffs, colored); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func diffText(y *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
