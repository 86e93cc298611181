package bbdb

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/bbdb/debug"
	"github.com/signadot/bbdb/ir"
	"github.com/signadot/bbdb/parse"

	"golang.org/x/sync/errgroup"
)

type Status int

const (
	Skipped Status = iota
	OK
	Failed
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case OK:
		return "ok"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of one line.  Entry is set when Status is OK, Err
// (a *LineError) when Status is Failed.
type Outcome struct {
	Line   int
	Status Status
	Entry  *Entry
	Err    error
}

// IsComment reports whether line is a comment line.  A leading byte order
// mark is ignored.
func IsComment(line []byte) bool {
	line = bytes.TrimPrefix(line, bom)
	return len(line) > 0 && line[0] == ';'
}

// DecodeLine parses, builds and decodes a single record line.  n is the
// 1-based line number used in error positions.
func DecodeLine(line []byte, n int, opts ...parse.ParseOption) (*Entry, error) {
	return decodeLine(parse.ParseRecord, line, n, opts)
}

func decodeLine(p func([]byte, ...parse.ParseOption) (*parse.Node, error), line []byte, n int, opts []parse.ParseOption) (*Entry, error) {
	pOpts := append([]parse.ParseOption{parse.WithLine(n)}, opts...)
	tree, err := p(line, pOpts...)
	if err != nil {
		return nil, err
	}
	v, err := ir.FromParseTree(tree)
	if err != nil {
		return nil, err
	}
	rec, ok := v.(ir.Collection)
	if !ok {
		return nil, &ir.ContractError{Kind: tree.Kind, Pos: tree.Pos, Message: "record is a " + ir.Classify(v)}
	}
	e, err := DecodeEntry(rec)
	if debug.Decode() {
		if err != nil {
			debug.Logf("decode line %d: %v\n", n, err)
		} else {
			debug.Logf("decode line %d: %v\n", n, e)
		}
	}
	return e, err
}

// outcome produces the Outcome of line n.  A non-nil error means the run
// must stop.
func (o *readOpts) outcome(n int, line []byte) (Outcome, error) {
	if IsComment(line) {
		return Outcome{Line: n, Status: Skipped}, nil
	}
	e, err := decodeLine(o.parse, line, n, o.parseOpts)
	if err != nil {
		lerr := &LineError{Line: n, Err: err}
		if errors.Is(err, ir.ErrGrammarContract) {
			o.log.Error("grammar contract violated", "line", n, "error", err)
			return Outcome{}, lerr
		}
		o.log.Debug("line failed", "line", n, "error", err)
		return Outcome{Line: n, Status: Failed, Err: lerr}, nil
	}
	return Outcome{Line: n, Status: OK, Entry: e}, nil
}

// rawLine is a line as scanned.  An over-long line keeps no bytes.
type rawLine struct {
	n    int
	d    []byte
	long bool
}

var bom = []byte("\xef\xbb\xbf")

// lineOutcome is outcome extended to lines the scanner cut off.
func (o *readOpts) lineOutcome(ln rawLine) (Outcome, error) {
	if ln.long {
		err := fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, o.maxLine)
		o.log.Debug("line failed", "line", ln.n, "error", err)
		return Outcome{Line: ln.n, Status: Failed, Err: &LineError{Line: ln.n, Err: err}}, nil
	}
	return o.outcome(ln.n, ln.d)
}

// Reader reads outcomes one line at a time.
type Reader struct {
	s        *bufio.Scanner
	line     int
	long     bool
	skipping bool
	opts     *readOpts
}

func NewReader(r io.Reader, opts ...ReadOption) *Reader {
	o := newReadOpts(opts)
	rd := &Reader{opts: o}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, min(64*1024, o.maxLine+2)), o.maxLine+2)
	s.Split(rd.splitLines)
	rd.s = s
	return rd
}

// splitLines is bufio.ScanLines, except that a line longer than maxLine is
// returned as an empty token flagged in r.long and the rest of it is
// discarded.  The scanner buffer holds maxLine+2 bytes so that a line of
// maxLine bytes fits with its "\r\n".
func (r *Reader) splitLines(data []byte, atEOF bool) (int, []byte, error) {
	limit := r.opts.maxLine
	if r.skipping {
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			r.skipping = false
			return i + 1, nil, nil
		}
		if atEOF {
			r.skipping = false
		}
		return len(data), nil, nil
	}
	r.long = false
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		ln := dropCR(data[:i])
		if len(ln) > limit {
			r.long = true
			return i + 1, data[:0], nil
		}
		return i + 1, ln, nil
	}
	if atEOF && len(data) > 0 {
		ln := dropCR(data)
		if len(ln) > limit {
			r.long = true
			return len(data), data[:0], nil
		}
		return len(data), ln, nil
	}
	if len(data) > limit+1 {
		r.long = true
		r.skipping = true
		return len(data), data[:0], nil
	}
	return 0, nil, nil
}

func dropCR(d []byte) []byte {
	if len(d) > 0 && d[len(d)-1] == '\r' {
		return d[:len(d)-1]
	}
	return d
}

// Next returns the outcome of the next line, or io.EOF after the last one.
// Any other error is terminal: an I/O error or a grammar contract
// violation.
func (r *Reader) Next() (Outcome, error) {
	ln, ok := r.scan()
	if !ok {
		if err := r.err(); err != nil {
			return Outcome{}, err
		}
		return Outcome{}, io.EOF
	}
	return r.opts.lineOutcome(ln)
}

// scan returns the next line.  Its bytes are only valid until the next
// call.
func (r *Reader) scan() (rawLine, bool) {
	if !r.s.Scan() {
		return rawLine{}, false
	}
	r.line++
	ln := rawLine{n: r.line, long: r.long}
	if !ln.long {
		ln.d = r.s.Bytes()
		if r.line == 1 {
			ln.d = bytes.TrimPrefix(ln.d, bom)
		}
	}
	return ln, true
}

func (r *Reader) err() error {
	if err := r.s.Err(); err != nil {
		return fmt.Errorf("error reading line %d: %w", r.line+1, err)
	}
	return nil
}

// Each calls fn with the outcome of every line of r, in input order.  It
// stops at the first error returned by fn, by reading, or by a grammar
// contract violation, and returns it.
func Each(ctx context.Context, r io.Reader, fn func(Outcome) error, opts ...ReadOption) error {
	rd := NewReader(r, opts...)
	if rd.opts.workers > 1 {
		return rd.eachParallel(ctx, fn)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		o, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(o); err != nil {
			return err
		}
	}
}

// eachParallel decodes windows of lines concurrently.  Only one window is
// held in memory at a time.  The lines scanned before a read error are
// still delivered.
func (r *Reader) eachParallel(ctx context.Context, fn func(Outcome) error) error {
	window := r.opts.workers * linesPerWorker
	lines := make([]rawLine, 0, window)
	outs := make([]Outcome, window)
	fatal := make([]error, window)
	for {
		lines = lines[:0]
		for len(lines) < window {
			ln, ok := r.scan()
			if !ok {
				break
			}
			ln.d = bytes.Clone(ln.d)
			lines = append(lines, ln)
		}
		readErr := r.err()
		if len(lines) == 0 {
			return readErr
		}
		clear(fatal)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.opts.workers)
		for i, ln := range lines {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				outs[i], fatal[i] = r.opts.lineOutcome(ln)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for i := range lines {
			if fatal[i] != nil {
				return fatal[i]
			}
			if err := fn(outs[i]); err != nil {
				return err
			}
		}
		if readErr != nil {
			return readErr
		}
	}
}

// ReadAll returns the outcomes of all lines of r.  On a terminal error it
// returns the outcomes delivered before it together with the error.
func ReadAll(r io.Reader, opts ...ReadOption) ([]Outcome, error) {
	var res []Outcome
	err := Each(context.Background(), r, func(o Outcome) error {
		res = append(res, o)
		return nil
	}, opts...)
	return res, err
}

// ReadString returns the outcomes of all lines of s.
func ReadString(s string, opts ...ReadOption) ([]Outcome, error) {
	return ReadAll(strings.NewReader(s), opts...)
}

// ReadFile returns the outcomes of all lines of the file at path.
func ReadFile(path string, opts ...ReadOption) ([]Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f, opts...)
}
