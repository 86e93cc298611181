package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/signadot/bbdb/bbdb"
	"github.com/signadot/bbdb/encode"
	"github.com/signadot/bbdb/format"
	"github.com/signadot/bbdb/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='output with color'"`
	WireOut  bool `cli:"name=wire desc='output json in compact format'"`
	Workers  int  `cli:"name=j desc='number of decoding workers'"`
	Verbose  bool `cli:"name=v desc='log decoding details'"`
	MaxLine  int  `cli:"name=maxline desc='maximum line size in bytes'"`
	MaxDepth int  `cli:"name=maxdepth desc='maximum nesting depth of a record'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	ctx context.Context
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

func (cfg *MainConfig) readOpts() []bbdb.ReadOption {
	res := []bbdb.ReadOption{
		bbdb.WithLogger(theLog),
		bbdb.WithWorkers(cfg.Workers),
	}
	if cfg.MaxLine > 0 {
		res = append(res, bbdb.WithMaxLineSize(cfg.MaxLine))
	}
	if cfg.MaxDepth > 0 {
		res = append(res, bbdb.WithParseOptions(parse.MaxDepth(cfg.MaxDepth)))
	}
	return res
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TextFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored: when -color is given,
// or when it is not set at all and w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) context() context.Context {
	if cfg.ctx == nil {
		return context.Background()
	}
	return cfg.ctx
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only print the summary'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type FindConfig struct {
	*MainConfig
	Count bool `cli:"name=c desc='only print the number of matching entries'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
