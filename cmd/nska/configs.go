package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nskeyed-format/go-nskeyed/encode"
	"github.com/nskeyed-format/go-nskeyed/format"
	"github.com/nskeyed-format/go-nskeyed/unarchive"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	AllClasses bool `cli:"name=all-classes desc='treat arrays and dictionaries as regular classes, retaining $classes'"`
	KeepNull   bool `cli:"name=keep-null desc='leave $null sentinel values in the output'"`
	Color      bool `cli:"name=color desc='encode with color'"`
	Indent     int  `cli:"name=indent desc='indentation width for text output'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) unarchiveOpts() []unarchive.Option {
	return []unarchive.Option{
		unarchive.TreatAllAsClasses(cfg.AllClasses),
		unarchive.LeaveNullValues(cfg.KeepNull),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.JSONFormat
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeIndent(cfg.Indent),
	}
	if !fmat.IsJSON() {
		// colorized output is only defined for the JSON text rendering
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='expression to evaluate against the decoded archive'"`

	Query *cli.Command
}
