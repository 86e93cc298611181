package main

import (
	"fmt"
	"io"

	"github.com/signadot/bbdb/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
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
	differ, err := diffInputs(cfg.MainConfig, cc.Out, cc.In, args[0], args[1])
	if err != nil {
		return err
	}
	if differ {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffInputs writes the entry differences of two files to w and reports
// whether there were any.
func diffInputs(cfg *MainConfig, w io.Writer, in io.Reader, a, b string) (bool, error) {
	from, err := entries(cfg, in, a)
	if err != nil {
		return false, err
	}
	to, err := entries(cfg, in, b)
	if err != nil {
		return false, err
	}
	diffs := libdiff.DiffEntries(from, to)
	colors := map[diffpatch.Operation]func(a ...any) string{}
	if cfg.useColor(w) {
		colors[diffpatch.DiffInsert] = color.New(color.FgGreen).SprintFunc()
		colors[diffpatch.DiffDelete] = color.New(color.FgRed).SprintFunc()
	}
	paint := func(op diffpatch.Operation, s string) string {
		if f := colors[op]; f != nil {
			return f(s)
		}
		return s
	}
	for i := range diffs {
		d := &diffs[i]
		head := fmt.Sprintf("%s %s", d.Op, d.Key)
		switch d.Op {
		case libdiff.Added:
			head = paint(diffpatch.DiffInsert, head)
		case libdiff.Removed:
			head = paint(diffpatch.DiffDelete, head)
		}
		if _, err := fmt.Fprintln(w, head); err != nil {
			return true, err
		}
		for _, ln := range d.Lines {
			if _, err := fmt.Fprintf(w, "  %s\n", paint(ln.Op, ln.String())); err != nil {
				return true, err
			}
		}
	}
	return len(diffs) != 0, nil
}
