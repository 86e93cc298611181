package bbdb

import (
	"errors"
	"testing"

	"github.com/signadot/bbdb/ir"

	"github.com/google/go-cmp/cmp"
)

func ptr(s string) *string { return &s }

func str(s string) ir.Value { return ir.FromString(s) }

func col(vs ...ir.Value) ir.Collection { return ir.FromSlice(vs) }

func strs(ss ...string) ir.Collection {
	vs := make([]ir.Value, len(ss))
	for i, s := range ss {
		vs[i] = str(s)
	}
	return col(vs...)
}

func TestDecodePhone(t *testing.T) {
	for _, tc := range [][2]string{
		{"work", "555-1234"},
		{"", ""},
		{"home ∞", "+1 (555) 000"},
	} {
		p, err := DecodePhone(strs(tc[0], tc[1]))
		if err != nil {
			t.Fatal(err)
		}
		if p != (Phone{Identifier: tc[0], Number: tc[1]}) {
			t.Errorf("got %+v", p)
		}
	}
}

func TestDecodePhoneErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		c    ir.Collection
		path string
		want error
	}{
		{"integer identifier", col(ir.FromInt(5), str("555")), "identifier",
			&ir.TypeError{Index: 0, Expected: "string", Actual: "integer"}},
		{"missing number", strs("work"), "number", &MissingFieldError{Index: 1}},
		{"nil number", col(str("work"), ir.Null()), "number", &MissingFieldError{Index: 1}},
		{"empty", col(), "identifier", &MissingFieldError{Index: 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePhone(tc.c)
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("got %v", err)
			}
			if fe.Path != tc.path {
				t.Errorf("got path %q", fe.Path)
			}
			if diff := cmp.Diff(tc.want, fe.Err); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeAddress(t *testing.T) {
	a, err := DecodeAddress(strs("home"))
	if err != nil {
		t.Fatal(err)
	}
	want := Address{Identifier: ptr("home"), Streets: []string{}}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	full := col(str("home"), strs("1 Main", "Apt 2"), str("Rear"), str("Town"), str("ST"), str("12345"), str("US"))
	a, err = DecodeAddress(full)
	if err != nil {
		t.Fatal(err)
	}
	want = Address{
		Identifier: ptr("home"),
		Streets:    []string{"1 Main", "Apt 2"},
		Street3:    ptr("Rear"),
		City:       ptr("Town"),
		State:      ptr("ST"),
		Zip:        ptr("12345"),
		Country:    ptr("US"),
	}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = DecodeAddress(col(str("home"), str("1 Main")))
	if !errors.Is(err, ir.ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
	if got := err.Error(); got != "streets: index 1: expected list/vector, got string" {
		t.Errorf("got %q", got)
	}
}

// record builds a record collection from its nine positional fields.
func record(fs ...ir.Value) ir.Collection {
	return col(fs...)
}

func TestDecodeEntryFull(t *testing.T) {
	c := record(
		str("John"),
		str("Smith"),
		str("ignored"),
		str("Acme"),
		strs("Johnny", "JS"),
		col(strs("work", "555-1234"), strs("cell", "555-9999")),
		col(col(str("home"), strs("1 Main"), ir.Null(), str("Town"))),
		strs("john@example.com", "js@example.org"),
		ir.FromEntries([]ir.AListEntry{
			ir.Entry("notes", str("met at work")),
			ir.Entry("birthday", str("May 1")),
		}),
		str("cache"),
	)
	e, err := DecodeEntry(c)
	if err != nil {
		t.Fatal(err)
	}
	want := &Entry{
		FirstName: ptr("John"),
		LastName:  ptr("Smith"),
		Company:   ptr("Acme"),
		AKAs:      []string{"Johnny", "JS"},
		Phones: []Phone{
			{Identifier: "work", Number: "555-1234"},
			{Identifier: "cell", Number: "555-9999"},
		},
		Addresses: []Address{{
			Identifier: ptr("home"),
			Streets:    []string{"1 Main"},
			City:       ptr("Town"),
		}},
		NetworkAddresses: []string{"john@example.com", "js@example.org"},
		Notes:            map[string]string{"notes": "met at work", "birthday": "May 1"},
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeEntryAbsent(t *testing.T) {
	for _, c := range []ir.Collection{
		record(),
		record(ir.Null(), ir.Null(), ir.Null(), ir.Null(), ir.Null(), ir.Null(), ir.Null(), ir.Null(), ir.Null()),
		record(ir.Null(), ir.Null(), ir.Null(), ir.Null(), col(), col(), col(), col()),
	} {
		e, err := DecodeEntry(c)
		if err != nil {
			t.Fatal(err)
		}
		want := &Entry{
			AKAs:             []string{},
			Phones:           []Phone{},
			Addresses:        []Address{},
			NetworkAddresses: []string{},
			Notes:            map[string]string{},
		}
		if diff := cmp.Diff(want, e); diff != "" {
			t.Errorf("%s (-want +got):\n%s", c, diff)
		}
	}
}

func TestDecodeEntryReservedIndex(t *testing.T) {
	for _, v := range []ir.Value{ir.FromInt(3), strs("x"), ir.FromEntries(nil)} {
		e, err := DecodeEntry(record(str("A"), str("B"), v))
		if err != nil {
			t.Errorf("%s: %v", v, err)
			continue
		}
		if e.Name() != "A B" {
			t.Errorf("got %q", e.Name())
		}
	}
}

func TestDecodeEntryNotesLastWins(t *testing.T) {
	notes := ir.FromEntries([]ir.AListEntry{
		ir.Entry("a", str("1")),
		ir.Entry("a", str("2")),
	})
	e, err := DecodeEntry(record(ir.Null(), ir.Null(), ir.Null(), ir.Null(), ir.Null(), ir.Null(), ir.Null(), ir.Null(), notes))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"a": "2"}, e.Notes); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeEntryEmptyNotes(t *testing.T) {
	n := ir.Null()
	e, err := DecodeEntry(record(n, n, n, n, n, n, n, n, col()))
	if err != nil {
		t.Fatal(err)
	}
	if e.Notes == nil || len(e.Notes) != 0 {
		t.Errorf("got %#v", e.Notes)
	}
	outs, err := ReadString(`["A" nil nil nil nil nil nil nil ()]` + "\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != 1 || outs[0].Status != OK {
		t.Fatalf("got %+v", outs)
	}
}

func TestDecodeEntryErrors(t *testing.T) {
	n := ir.Null()
	for _, tc := range []struct {
		name string
		c    ir.Collection
		msg  string
		is   error
	}{
		{"first name integer", record(ir.FromInt(1)),
			"firstName: index 0: expected string, got integer", ir.ErrTypeMismatch},
		{"company list", record(n, n, n, strs("x")),
			"company: index 3: expected string, got list/vector", ir.ErrTypeMismatch},
		{"aka not string", record(n, n, n, n, col(str("a"), ir.FromInt(2))),
			"akas: index 1: expected string, got integer", ir.ErrTypeMismatch},
		{"phones string", record(n, n, n, n, n, str("555")),
			"phones: index 5: expected list/vector, got string", ir.ErrTypeMismatch},
		{"phone not collection", record(n, n, n, n, n, col(str("555"))),
			"phones: index 0: expected list/vector, got string", ir.ErrTypeMismatch},
		{"phone missing number", record(n, n, n, n, n, col(strs("a", "1"), strs("b"))),
			"phones[1].number: index 1: missing required field", ErrMissingField},
		{"address bad city", record(n, n, n, n, n, n, col(col(n, n, n, ir.FromInt(9)))),
			"addresses[0].city: index 3: expected string, got integer", ir.ErrTypeMismatch},
		{"net alist", record(n, n, n, n, n, n, n, ir.FromEntries(nil)),
			"networkAddresses: index 7: expected list/vector, got association-list", ir.ErrTypeMismatch},
		{"notes list", record(n, n, n, n, n, n, n, n, col(str("x"))),
			"notes: index 8: expected association-list, got list/vector", ir.ErrTypeMismatch},
		{"note value integer", record(n, n, n, n, n, n, n, n, ir.FromEntries([]ir.AListEntry{
			ir.Entry("ok", str("x")), ir.Entry("bad", ir.FromInt(1)),
		})),
			"notes.bad: index 1: expected string, got integer", ir.ErrTypeMismatch},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e, err := DecodeEntry(tc.c)
			if e != nil {
				t.Errorf("got entry %+v", e)
			}
			if !errors.Is(err, tc.is) {
				t.Fatalf("got %v", err)
			}
			if err.Error() != tc.msg {
				t.Errorf("got %q want %q", err.Error(), tc.msg)
			}
		})
	}
}
