package main

import (
	"fmt"
	"io"

	"github.com/signadot/bbdb/bbdb"
	"github.com/signadot/bbdb/eval"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, an expression", cli.ErrUsage)
	}
	filter, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return findInputs(cfg, cc.Out, cc.In, filter, args[1:])
}

func findInputs(cfg *FindConfig, w io.Writer, in io.Reader, filter *eval.Filter, files []string) error {
	ew := newEntryWriter(cfg.MainConfig, w)
	n := 0
	err := eachInput(cfg.MainConfig, in, files, func(file string, o bbdb.Outcome) error {
		warnFailed(file, o)
		if o.Status != bbdb.OK {
			return nil
		}
		ok, err := filter.Match(o.Entry)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", file, o.Line, err)
		}
		if !ok {
			return nil
		}
		n++
		if cfg.Count {
			return nil
		}
		return ew.write(o.Entry)
	})
	if err != nil {
		return err
	}
	if cfg.Count {
		_, err = fmt.Fprintf(w, "%d\n", n)
	}
	return err
}
