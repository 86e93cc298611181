package bbdb

import (
	"log/slog"

	"github.com/signadot/bbdb/parse"
)

// DefaultMaxLineSize is the longest line a Reader accepts by default.
const DefaultMaxLineSize = 1 << 20

// linesPerWorker sizes the window of lines decoded concurrently.
const linesPerWorker = 64

type readOpts struct {
	log       *slog.Logger
	maxLine   int
	workers   int
	parseOpts []parse.ParseOption
	parse     func([]byte, ...parse.ParseOption) (*parse.Node, error)
}

type ReadOption func(*readOpts)

// WithLogger sets the logger receiving per-line diagnostics.  By default
// nothing is logged.
func WithLogger(l *slog.Logger) ReadOption {
	return func(o *readOpts) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaxLineSize bounds the length of a line, excluding its newline.  A
// longer line fails with ErrLineTooLong and reading continues.
func WithMaxLineSize(n int) ReadOption {
	return func(o *readOpts) {
		if n > 0 {
			o.maxLine = n
		}
	}
}

// WithWorkers decodes lines with n goroutines.  Outcomes are still
// delivered in input order.
func WithWorkers(n int) ReadOption {
	return func(o *readOpts) { o.workers = n }
}

// WithParseOptions passes options to the record parser.
func WithParseOptions(opts ...parse.ParseOption) ReadOption {
	return func(o *readOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}

func newReadOpts(opts []ReadOption) *readOpts {
	o := &readOpts{
		log:     slog.New(slog.DiscardHandler),
		maxLine: DefaultMaxLineSize,
		workers: 1,
		parse:   parse.ParseRecord,
	}
	for _, f := range opts {
		f(o)
	}
	return o
}
