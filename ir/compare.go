package ir

// equal reports whether a and b are the same value.  Lists and vectors are
// indistinguishable once built, so only the items of collections are
// compared.
func equal(a, b Value) bool {
	a, b = orNull(a), orNull(b)
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Nil:
		return true
	case Integer:
		return x.v == b.(Integer).v
	case String:
		return x.s == b.(String).s
	case Collection:
		y := b.(Collection)
		if len(x.items) != len(y.items) {
			return false
		}
		for i := range x.items {
			if !equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case AList:
		y := b.(AList)
		if len(x.entries) != len(y.entries) {
			return false
		}
		for i := range x.entries {
			if !equal(x.entries[i], y.entries[i]) {
				return false
			}
		}
		return true
	case AListEntry:
		y := b.(AListEntry)
		return x.key == y.key && equal(x.val, y.val)
	}
	return false
}
