package ir

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Value is one of Nil, Integer, String, Collection, AList or AListEntry.
type Value interface {
	Kind() Kind
	String() string
	value()
}

type Nil struct{}

func Null() Nil { return Nil{} }

func (Nil) Kind() Kind     { return NilKind }
func (Nil) String() string { return "nil" }
func (Nil) value()         {}

type Integer struct {
	v int64
}

func FromInt(v int64) Integer { return Integer{v: v} }

func (i Integer) Int64() int64   { return i.v }
func (Integer) Kind() Kind       { return IntegerKind }
func (i Integer) String() string { return strconv.FormatInt(i.v, 10) }
func (Integer) value()           {}

type String struct {
	s string
}

func FromString(s string) String { return String{s: s} }

// Text returns the unescaped text of s.
func (s String) Text() string   { return s.s }
func (String) Kind() Kind       { return StringKind }
func (s String) String() string { return strconv.Quote(s.s) }
func (String) value()           {}

type Collection struct {
	items []Value
}

// FromSlice creates a Collection holding a copy of items.  nil items are
// stored as Nil.
func FromSlice(items []Value) Collection {
	res := make([]Value, len(items))
	for i, v := range items {
		res[i] = orNull(v)
	}
	return Collection{items: res}
}

func (c Collection) Len() int { return len(c.items) }

// At returns the i'th item.  It panics if i is out of range.
func (c Collection) At(i int) Value { return c.items[i] }

// Items returns a copy of the items of c.
func (c Collection) Items() []Value { return slices.Clone(c.items) }

func (c Collection) All() iter.Seq2[int, Value] {
	return slices.All(c.items)
}

func (Collection) Kind() Kind { return CollectionKind }
func (c Collection) String() string {
	parts := make([]string, len(c.items))
	for i, v := range c.items {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
func (Collection) value() {}

type AListEntry struct {
	key string
	val Value
}

func Entry(key string, v Value) AListEntry {
	return AListEntry{key: key, val: orNull(v)}
}

func (e AListEntry) Key() string { return e.key }

func (e AListEntry) Value() Value { return orNull(e.val) }

func (AListEntry) Kind() Kind { return AListEntryKind }
func (e AListEntry) String() string {
	return "(" + e.key + " . " + e.Value().String() + ")"
}
func (AListEntry) value() {}

type AList struct {
	entries []AListEntry
}

func FromEntries(entries []AListEntry) AList {
	return AList{entries: slices.Clone(entries)}
}

func (a AList) Len() int { return len(a.entries) }

func (a AList) At(i int) AListEntry { return a.entries[i] }

func (a AList) All() iter.Seq2[int, AListEntry] {
	return slices.All(a.entries)
}

func (AList) Kind() Kind { return AListKind }
func (a AList) String() string {
	parts := make([]string, len(a.entries))
	for i, e := range a.entries {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
func (AList) value() {}

func orNull(v Value) Value {
	if v == nil {
		return Null()
	}
	return v
}
