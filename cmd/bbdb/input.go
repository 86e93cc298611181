package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/bbdb/bbdb"
)

// eachInput calls fn with the outcomes of each named file in turn, "-"
// naming in.  No files means in alone.
func eachInput(cfg *MainConfig, in io.Reader, files []string, fn func(string, bbdb.Outcome) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := eachFile(cfg, in, file, func(o bbdb.Outcome) error { return fn(file, o) }); err != nil {
			return err
		}
	}
	return nil
}

func eachFile(cfg *MainConfig, in io.Reader, file string, fn func(bbdb.Outcome) error) error {
	r := in
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	if err := bbdb.Each(cfg.context(), r, fn, cfg.readOpts()...); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// entries returns the decoded entries of file, logging the lines which
// fail.
func entries(cfg *MainConfig, in io.Reader, file string) ([]bbdb.Entry, error) {
	var res []bbdb.Entry
	err := eachFile(cfg, in, file, func(o bbdb.Outcome) error {
		if o.Status == bbdb.OK {
			res = append(res, *o.Entry)
		}
		warnFailed(file, o)
		return nil
	})
	return res, err
}

func warnFailed(file string, o bbdb.Outcome) {
	if o.Status == bbdb.Failed {
		theLog.Warn("skipping line", "file", file, "error", o.Err)
	}
}
