package libdiff

import (
	"testing"

	"github.com/signadot/bbdb/bbdb"

	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func ptr(s string) *string { return &s }

func person(first, last string, net ...string) bbdb.Entry {
	return bbdb.Entry{FirstName: ptr(first), LastName: ptr(last), NetworkAddresses: net}
}

type summary struct {
	Key string
	Op  Op
}

func summarize(ds []EntryDiff) []summary {
	var res []summary
	for _, d := range ds {
		res = append(res, summary{d.Key, d.Op})
	}
	return res
}

func TestDiffEntries(t *testing.T) {
	for _, tc := range []struct {
		name     string
		from, to []bbdb.Entry
		want     []summary
	}{
		{
			name: "same",
			from: []bbdb.Entry{person("A", "B"), person("C", "D")},
			to:   []bbdb.Entry{person("A", "B"), person("C", "D")},
		},
		{
			name: "added",
			from: []bbdb.Entry{person("A", "B")},
			to:   []bbdb.Entry{person("A", "B"), person("C", "D")},
			want: []summary{{"C D", Added}},
		},
		{
			name: "removed",
			from: []bbdb.Entry{person("A", "B"), person("C", "D")},
			to:   []bbdb.Entry{person("C", "D")},
			want: []summary{{"A B", Removed}},
		},
		{
			name: "changed",
			from: []bbdb.Entry{person("A", "B", "a@x")},
			to:   []bbdb.Entry{person("A", "B", "a@y")},
			want: []summary{{"A B", Changed}},
		},
		{
			name: "moved unchanged",
			from: []bbdb.Entry{person("A", "B"), person("C", "D")},
			to:   []bbdb.Entry{person("C", "D"), person("A", "B")},
		},
		{
			name: "moved changed",
			from: []bbdb.Entry{person("A", "B", "a@x"), person("C", "D")},
			to:   []bbdb.Entry{person("C", "D"), person("A", "B", "a@y")},
			want: []summary{{"A B", Changed}},
		},
		{
			name: "duplicate names",
			from: []bbdb.Entry{person("A", "B")},
			to:   []bbdb.Entry{person("A", "B"), person("A", "B")},
			want: []summary{{"A B#2", Added}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := summarize(DiffEntries(tc.from, tc.to))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffEntriesLines(t *testing.T) {
	ds := DiffEntries(
		[]bbdb.Entry{person("A", "B", "a@x")},
		[]bbdb.Entry{person("A", "B", "a@y")})
	if len(ds) != 1 {
		t.Fatalf("got %d diffs", len(ds))
	}
	want := []Line{
		{diffpatch.DiffEqual, "A B"},
		{diffpatch.DiffDelete, "  net: a@x"},
		{diffpatch.DiffInsert, "  net: a@y"},
	}
	if diff := cmp.Diff(want, ds[0].Lines); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	wantText := "~ A B\n   A B\n  -  net: a@x\n  +  net: a@y\n"
	if got := ds[0].String(); got != wantText {
		t.Errorf("got %q want %q", got, wantText)
	}
}

func TestKeys(t *testing.T) {
	es := []bbdb.Entry{person("A", "B"), {}, person("A", "B"), {Company: ptr("Acme")}, {}}
	want := []string{"A B", "(no name)", "A B#2", "Acme", "(no name)#2"}
	if diff := cmp.Diff(want, Keys(es)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
