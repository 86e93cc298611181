package bbdb

import "strings"

type Phone struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Number     string `json:"number" yaml:"number"`
}

type Address struct {
	Identifier *string  `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Streets    []string `json:"streets" yaml:"streets"`
	Street3    *string  `json:"street3,omitempty" yaml:"street3,omitempty"`
	City       *string  `json:"city,omitempty" yaml:"city,omitempty"`
	State      *string  `json:"state,omitempty" yaml:"state,omitempty"`
	Zip        *string  `json:"zip,omitempty" yaml:"zip,omitempty"`
	Country    *string  `json:"country,omitempty" yaml:"country,omitempty"`
}

// Entry is one decoded address-book record.  Optional fields are nil when
// absent; list fields and Notes are empty but never nil.
type Entry struct {
	FirstName        *string           `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName         *string           `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	AKAs             []string          `json:"akas" yaml:"akas"`
	Company          *string           `json:"company,omitempty" yaml:"company,omitempty"`
	Phones           []Phone           `json:"phones" yaml:"phones"`
	Addresses        []Address         `json:"addresses" yaml:"addresses"`
	NetworkAddresses []string          `json:"networkAddresses" yaml:"networkAddresses"`
	Notes            map[string]string `json:"notes" yaml:"notes"`
}

// Name returns the first and last name of e separated by a space, falling
// back to the company, or "" if e has none of these.
func (e *Entry) Name() string {
	var parts []string
	if s := Deref(e.FirstName); s != "" {
		parts = append(parts, s)
	}
	if s := Deref(e.LastName); s != "" {
		parts = append(parts, s)
	}
	if len(parts) != 0 {
		return strings.Join(parts, " ")
	}
	return Deref(e.Company)
}

// Deref returns *s, or "" if s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
