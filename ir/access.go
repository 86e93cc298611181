package ir

import "fmt"

// Get returns the item of c at index i.  An index out of range and an item
// which is Nil are both reported as absent.
func Get(c Collection, i int) (Value, bool) {
	if i < 0 || i >= len(c.items) {
		return nil, false
	}
	v := c.items[i]
	if _, isNil := v.(Nil); isNil || v == nil {
		return nil, false
	}
	return v, true
}

// Classify returns the kind label of v, for use in error messages.
func Classify(v Value) string {
	switch v.(type) {
	case nil, Nil:
		return NilKind.String()
	case Integer:
		return IntegerKind.String()
	case String:
		return StringKind.String()
	case Collection:
		return CollectionKind.String()
	case AList:
		return AListKind.String()
	case AListEntry:
		return AListEntryKind.String()
	default:
		// Value is sealed; reaching here means a variant was added
		// without updating Classify.
		panic(fmt.Sprintf("ir: unclassified value %T", v))
	}
}

// AsString returns the text of the String at index i of c, or nil if the
// item is absent.
func AsString(c Collection, i int) (*string, error) {
	v, ok := Get(c, i)
	if !ok {
		return nil, nil
	}
	s, ok := v.(String)
	if !ok {
		return nil, &TypeError{Index: i, Expected: StringKind.String(), Actual: Classify(v)}
	}
	res := s.s
	return &res, nil
}

// AsCollection returns the items of the Collection at index i of c.  An
// absent item yields an empty slice.
func AsCollection(c Collection, i int) ([]Value, error) {
	v, ok := Get(c, i)
	if !ok {
		return []Value{}, nil
	}
	col, ok := v.(Collection)
	if !ok {
		return nil, &TypeError{Index: i, Expected: CollectionKind.String(), Actual: Classify(v)}
	}
	if len(col.items) == 0 {
		return []Value{}, nil
	}
	return col.Items(), nil
}
