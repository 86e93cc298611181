package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/bbdb/bbdb"
	"github.com/signadot/bbdb/format"

	"github.com/google/go-cmp/cmp"
)

func ptr(s string) *string { return &s }

func testEntry() *bbdb.Entry {
	return &bbdb.Entry{
		FirstName: ptr("John"),
		LastName:  ptr("Smith"),
		Company:   ptr("Acme"),
		AKAs:      []string{"Johnny"},
		Phones:    []bbdb.Phone{{Identifier: "work", Number: "555-1234"}},
		Addresses: []bbdb.Address{{
			Identifier: ptr("home"),
			Streets:    []string{"1 Main St"},
			City:       ptr("Springfield"),
			State:      ptr("IL"),
			Zip:        ptr("62701"),
			Country:    ptr("USA"),
		}},
		NetworkAddresses: []string{"john@example.com"},
		Notes:            map[string]string{"notes": "met at 50% off sale", "birthday": "May 1"},
	}
}

func TestEncodeText(t *testing.T) {
	want := `John Smith
  company: Acme
  aka: Johnny
  phone work: 555-1234
  address home:
    1 Main St
    Springfield IL 62701
    USA
  net: john@example.com
  note birthday: May 1
  note notes: met at 50% off sale
`
	if diff := cmp.Diff(want, MustString(testEntry())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeTextEmpty(t *testing.T) {
	got := MustString(&bbdb.Entry{Company: ptr("Acme")})
	if got != "Acme\n" {
		t.Errorf("got %q", got)
	}
	got = MustString(&bbdb.Entry{})
	if got != "(no name)\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeColorsPercent(t *testing.T) {
	c := NewColors()
	c.Map = map[ColorAttr]func(string, ...any) string{
		ValueColor: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	buf := &bytes.Buffer{}
	e := &bbdb.Entry{FirstName: ptr("Ann"), NetworkAddresses: []string{"a@b"}}
	if err := Encode(e, buf, EncodeColors(c)); err != nil {
		t.Fatal(err)
	}
	want := "Ann\n  net: <a@b>\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestEncodeJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(testEntry(), buf, EncodeFormat(format.JSONFormat), EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Errorf("wire JSON has %d newlines", n)
	}
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"firstName", "lastName", "akas", "company", "phones", "addresses", "networkAddresses", "notes"} {
		if _, ok := m[k]; !ok {
			t.Errorf("missing field %q", k)
		}
	}
	got := &bbdb.Entry{}
	if err := json.Unmarshal(buf.Bytes(), got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(testEntry(), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeJSONOmitsAbsent(t *testing.T) {
	buf := &bytes.Buffer{}
	e := &bbdb.Entry{LastName: ptr("Doe"), AKAs: []string{}, Notes: map[string]string{}}
	if err := Encode(e, buf, EncodeFormat(format.JSONFormat), EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	if strings.Contains(s, "firstName") || strings.Contains(s, "company") {
		t.Errorf("absent fields encoded: %s", s)
	}
	if !strings.Contains(s, `"lastName":"Doe"`) {
		t.Errorf("missing lastName: %s", s)
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(testEntry(), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	for _, frag := range []string{"firstName: John", "lastName: Smith", "networkAddresses:", "identifier: work", "birthday: May 1"} {
		if !strings.Contains(s, frag) {
			t.Errorf("missing %q in\n%s", frag, s)
		}
	}
}

func TestEncodeNil(t *testing.T) {
	if err := Encode(nil, &bytes.Buffer{}); !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Encode(testEntry(), buf, EncodeFormat(format.Format(17)))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q", buf.String())
	}
}

func TestEncodeIndent(t *testing.T) {
	buf := &bytes.Buffer{}
	e := &bbdb.Entry{FirstName: ptr("Ann"), NetworkAddresses: []string{"a@b"}}
	if err := Encode(e, buf, Indent(4)); err != nil {
		t.Fatal(err)
	}
	if want := "Ann\n    net: a@b\n"; buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}
