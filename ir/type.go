package ir

import "fmt"

type Kind int

const (
	NilKind Kind = iota
	IntegerKind
	StringKind
	CollectionKind
	AListKind
	AListEntryKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NilKind:        "nil",
		IntegerKind:    "integer",
		StringKind:     "string",
		CollectionKind: "list/vector",
		AListKind:      "association-list",
		AListEntryKind: "association-list-entry",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"nil":                    NilKind,
		"integer":                IntegerKind,
		"string":                 StringKind,
		"list/vector":            CollectionKind,
		"association-list":       AListKind,
		"association-list-entry": AListEntryKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NilKind,
		IntegerKind,
		StringKind,
		CollectionKind,
		AListKind,
		AListEntryKind,
	}
}
