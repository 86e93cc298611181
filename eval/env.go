package eval

import (
	"github.com/signadot/bbdb/bbdb"
)

type Env = map[string]any

// EntryEnv returns the expression environment of e.
func EntryEnv(e *bbdb.Entry) Env {
	phones := make([]any, 0, len(e.Phones))
	for _, p := range e.Phones {
		phones = append(phones, map[string]any{
			"id":     p.Identifier,
			"number": p.Number,
		})
	}
	addrs := make([]any, 0, len(e.Addresses))
	for _, a := range e.Addresses {
		addrs = append(addrs, map[string]any{
			"id":      bbdb.Deref(a.Identifier),
			"streets": nonNil(a.Streets),
			"street3": bbdb.Deref(a.Street3),
			"city":    bbdb.Deref(a.City),
			"state":   bbdb.Deref(a.State),
			"zip":     bbdb.Deref(a.Zip),
			"country": bbdb.Deref(a.Country),
		})
	}
	notes := e.Notes
	if notes == nil {
		notes = map[string]string{}
	}
	return Env{
		"name":      e.Name(),
		"firstName": bbdb.Deref(e.FirstName),
		"lastName":  bbdb.Deref(e.LastName),
		"company":   bbdb.Deref(e.Company),
		"akas":      nonNil(e.AKAs),
		"net":       nonNil(e.NetworkAddresses),
		"phones":    phones,
		"addresses": addrs,
		"notes":     notes,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// exampleEnv types the environment for compilation.
func exampleEnv() Env {
	return EntryEnv(&bbdb.Entry{})
}
