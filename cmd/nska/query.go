package main

import (
	"encoding/json"
	"fmt"

	"github.com/nskeyed-format/go-nskeyed/ir"
	"github.com/nskeyed-format/go-nskeyed/query"

	"github.com/scott-cotton/cli"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires -e", cli.ErrUsage)
	}
	for _, file := range argsOrStdin(args) {
		decoded, err := getArchive(cc, file, cfg.unarchiveOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := evalExpr(cfg.Expr, decoded)
		if err != nil {
			return fmt.Errorf("error evaluating %q against %s: %w", cfg.Expr, file, err)
		}
		if _, err := cc.Out.Write(append(res, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func evalExpr(src string, decoded *ir.Node) ([]byte, error) {
	res, err := query.Run(src, decoded)
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}
