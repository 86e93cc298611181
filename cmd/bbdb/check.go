package main

import (
	"fmt"
	"io"

	"github.com/signadot/bbdb/bbdb"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

type checkCounts struct {
	ok, skipped, failed int
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed, err := checkInputs(cfg, cc.Out, cc.In, args)
	if err != nil {
		return err
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkInputs reports the failed lines and a summary of each file to w.  It
// returns whether any line failed.
func checkInputs(cfg *CheckConfig, w io.Writer, in io.Reader, files []string) (bool, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	red := fmt.Sprint
	if cfg.useColor(w) {
		red = color.New(color.FgRed).SprintFunc()
	}
	anyFailed := false
	for _, file := range files {
		counts := checkCounts{}
		err := eachFile(cfg.MainConfig, in, file, func(o bbdb.Outcome) error {
			switch o.Status {
			case bbdb.OK:
				counts.ok++
				return nil
			case bbdb.Skipped:
				counts.skipped++
				return nil
			}
			counts.failed++
			if cfg.Quiet {
				return nil
			}
			_, err := fmt.Fprintf(w, "%s: %s\n", red(fmt.Sprintf("%s:%d", file, o.Line)), lineMessage(o.Err))
			return err
		})
		if err != nil {
			return anyFailed, err
		}
		anyFailed = anyFailed || counts.failed != 0
		if _, err := fmt.Fprintf(w, "%s: %d ok, %d skipped, %d failed\n", file, counts.ok, counts.skipped, counts.failed); err != nil {
			return anyFailed, err
		}
	}
	return anyFailed, nil
}

// lineMessage strips the line number, which check prints itself.
func lineMessage(err error) string {
	if le, ok := err.(*bbdb.LineError); ok {
		return le.Err.Error()
	}
	return err.Error()
}
