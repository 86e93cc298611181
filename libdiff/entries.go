package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/bbdb/bbdb"
	"github.com/signadot/bbdb/encode"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Added Op = iota
	Removed
	Changed
)

func (o Op) String() string {
	switch o {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Changed:
		return "~"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// EntryDiff is the difference of one entry.  From is nil when Added, To is
// nil when Removed.  Lines is set when Changed.
type EntryDiff struct {
	Key   string
	Op    Op
	From  *bbdb.Entry
	To    *bbdb.Entry
	Lines []Line
}

func (d *EntryDiff) String() string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "%s %s\n", d.Op, d.Key)
	for _, ln := range d.Lines {
		fmt.Fprintf(buf, "  %s\n", ln)
	}
	return buf.String()
}

// DiffEntries returns the differences from from to to, in the order of to
// with removals placed where they occurred in from.
func DiffEntries(from, to []bbdb.Entry) []EntryDiff {
	keyRunes := map[string]rune{}
	runeKeys := map[rune]string{}
	fromKeys, toKeys := Keys(from), Keys(to)
	fromRunes := mapKeysTo(keyRunes, runeKeys, fromKeys)
	toRunes := mapKeysTo(keyRunes, runeKeys, toKeys)
	fromIndex, toIndex := indexOf(fromKeys), indexOf(toKeys)

	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	var res []EntryDiff
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				key := runeKeys[r]
				if _, moved := toIndex[key]; !moved {
					res = append(res, EntryDiff{Key: key, Op: Removed, From: &from[fi]})
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				if d := diffEntry(runeKeys[r], &from[fi], &to[ti]); d != nil {
					res = append(res, *d)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				key := runeKeys[r]
				if j, moved := fromIndex[key]; moved {
					if d := diffEntry(key, &from[j], &to[ti]); d != nil {
						res = append(res, *d)
					}
				} else {
					res = append(res, EntryDiff{Key: key, Op: Added, To: &to[ti]})
				}
				ti++
			}
		}
	}
	return res
}

// Keys returns the matching key of each entry.
func Keys(es []bbdb.Entry) []string {
	seen := map[string]int{}
	res := make([]string, len(es))
	for i := range es {
		name := es[i].Name()
		if name == "" {
			name = "(no name)"
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s#%d", name, n)
		}
		res[i] = name
	}
	return res
}

func diffEntry(key string, from, to *bbdb.Entry) *EntryDiff {
	a, b := encode.MustString(from), encode.MustString(to)
	if a == b {
		return nil
	}
	return &EntryDiff{Key: key, Op: Changed, From: from, To: to, Lines: DiffLines(a, b)}
}

func indexOf(keys []string) map[string]int {
	m := make(map[string]int, len(keys))
	for i, k := range keys {
		m[k] = i
	}
	return m
}

func mapKeysTo(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				// skip the surrogate range
				r += 0x800
			}
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}
