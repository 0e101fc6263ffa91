package main

import (
	"fmt"

	"github.com/nskeyed-format/go-nskeyed/encode"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range argsOrStdin(args) {
		decoded, err := getArchive(cc, file, cfg.unarchiveOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := encode.Encode(decoded, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
