package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one line of a line diff.
type Line struct {
	Op   diffpatch.Operation
	Text string
}

func (l Line) String() string {
	switch l.Op {
	case diffpatch.DiffInsert:
		return "+" + l.Text
	case diffpatch.DiffDelete:
		return "-" + l.Text
	default:
		return " " + l.Text
	}
}

// DiffLines returns the line diff of a and b.
func DiffLines(a, b string) []Line {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []Line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			res = append(res, Line{Op: d.Type, Text: ln})
		}
	}
	return res
}
