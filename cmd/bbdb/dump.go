package main

import (
	"io"

	"github.com/signadot/bbdb/bbdb"
	"github.com/signadot/bbdb/encode"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return dumpInputs(cfg.MainConfig, cc.Out, cc.In, args)
}

func dumpInputs(cfg *MainConfig, w io.Writer, in io.Reader, files []string) error {
	ew := newEntryWriter(cfg, w)
	return eachInput(cfg, in, files, func(file string, o bbdb.Outcome) error {
		warnFailed(file, o)
		if o.Status != bbdb.OK {
			return nil
		}
		return ew.write(o.Entry)
	})
}

// entryWriter writes a sequence of entries, separating them as the output
// format requires.
type entryWriter struct {
	w    io.Writer
	opts []encode.EncodeOption
	sep  string
	n    int
}

func newEntryWriter(cfg *MainConfig, w io.Writer) *entryWriter {
	ew := &entryWriter{w: w, opts: cfg.encOpts(w)}
	switch f := cfg.format(); {
	case f.IsYAML():
		ew.sep = "---\n"
	case f.IsText():
		ew.sep = "\n"
	}
	return ew
}

func (ew *entryWriter) write(e *bbdb.Entry) error {
	if ew.n > 0 && ew.sep != "" {
		if _, err := io.WriteString(ew.w, ew.sep); err != nil {
			return err
		}
	}
	ew.n++
	return encode.Encode(e, ew.w, ew.opts...)
}
