package token

import (
	"fmt"
	"strconv"
)

// PosDoc is the line a set of positions refer to.
type PosDoc struct {
	d    []byte
	line int
}

// NewPosDoc creates a PosDoc for d.  line is the 1-based number of d within
// its enclosing file, or 0 if unknown.
func NewPosDoc(d []byte, line int) *PosDoc {
	return &PosDoc{d: d, line: line}
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

// End returns the position just past the end of the line.
func (d *PosDoc) End() *Pos {
	return d.Pos(len(d.d))
}

type Pos struct {
	I int
	D *PosDoc
}

// Line returns the 1-based line number, 0 if unknown.
func (p *Pos) Line() int {
	if p == nil || p.D == nil {
		return 0
	}
	return p.D.line
}

// Col returns the 1-based column (in bytes) of the position.
func (p *Pos) Col() int {
	if p == nil {
		return 0
	}
	return p.I + 1
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
