package main

import (
	"fmt"

	"github.com/nskeyed-format/go-nskeyed/encode"
	"github.com/nskeyed-format/go-nskeyed/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := []encode.EncodeOption{
		encode.EncodeFormat(format.JSONFormat),
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeColors(encode.NewColors()),
	}
	files := argsOrStdin(args)
	for i, file := range files {
		decoded, err := getArchive(cc, file, cfg.unarchiveOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := encode.Encode(decoded, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}
