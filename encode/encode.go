package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/signadot/bbdb/bbdb"
	"github.com/signadot/bbdb/format"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int
	format format.Format
	wire   bool

	Color func(ColorAttr, string) string
}

// Encode writes e to w in the format selected by opts, text by default.
// The output always ends in a newline.
func Encode(e *bbdb.Entry, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if e == nil {
		return fmt.Errorf("%w: nil entry", ErrEncoding)
	}
	switch f := es.format; {
	case f.IsText():
		return encodeText(e, w, es)
	case f.IsJSON():
		return encodeJSON(e, w, es)
	case f.IsYAML():
		d, err := yaml.MarshalWithOptions(e, yaml.Indent(es.indent))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return writeString(w, string(d))
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

// MustString renders e as uncolored text.
func MustString(e *bbdb.Entry) string {
	buf := &strings.Builder{}
	if err := Encode(e, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func encodeJSON(e *bbdb.Entry, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.wire {
		d, err = json.Marshal(e)
	} else {
		d, err = json.MarshalIndent(e, "", strings.Repeat(" ", es.indent))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d)+"\n")
}

func encodeText(e *bbdb.Entry, w io.Writer, es *EncState) error {
	tw := &textWriter{w: w, es: es}
	name := e.Name()
	if name == "" {
		name = "(no name)"
	}
	tw.line(0, tw.color(NameColor, name))
	if e.Company != nil && (e.FirstName != nil || e.LastName != nil) {
		tw.field(1, "company", "", *e.Company)
	}
	if len(e.AKAs) != 0 {
		tw.field(1, "aka", "", strings.Join(e.AKAs, ", "))
	}
	for _, p := range e.Phones {
		tw.field(1, "phone", p.Identifier, p.Number)
	}
	for _, a := range e.Addresses {
		tw.field(1, "address", bbdb.Deref(a.Identifier), "")
		for _, ln := range addressLines(a) {
			tw.line(2, tw.color(ValueColor, ln))
		}
	}
	for _, n := range e.NetworkAddresses {
		tw.field(1, "net", "", n)
	}
	keys := make([]string, 0, len(e.Notes))
	for k := range e.Notes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		tw.field(1, "note", k, e.Notes[k])
	}
	return tw.err
}

func addressLines(a bbdb.Address) []string {
	lines := slices.Clone(a.Streets)
	if a.Street3 != nil {
		lines = append(lines, *a.Street3)
	}
	var place []string
	for _, s := range []*string{a.City, a.State, a.Zip} {
		if s != nil && *s != "" {
			place = append(place, *s)
		}
	}
	if len(place) != 0 {
		lines = append(lines, strings.Join(place, " "))
	}
	if a.Country != nil && *a.Country != "" {
		lines = append(lines, *a.Country)
	}
	return lines
}

type textWriter struct {
	w   io.Writer
	es  *EncState
	err error
}

func (t *textWriter) color(a ColorAttr, s string) string {
	if t.es.Color == nil {
		return s
	}
	return t.es.Color(a, s)
}

// field writes "name label: value", omitting an empty label and value.
func (t *textWriter) field(depth int, name, label, value string) {
	s := t.color(FieldColor, name)
	if label != "" {
		s += " " + t.color(LabelColor, label)
	}
	s += t.color(SepColor, ":")
	if value != "" {
		s += " " + t.color(ValueColor, value)
	}
	t.line(depth, s)
}

func (t *textWriter) line(depth int, s string) {
	if t.err != nil {
		return
	}
	t.err = writeString(t.w, strings.Repeat(" ", depth*t.es.indent)+s+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
