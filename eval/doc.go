// Package eval evaluates filter expressions over decoded entries.
//
// Expressions use the expr-lang language.  The environment of an entry
// holds:
//
//	name, firstName, lastName, company   string, "" when absent
//	akas, net                            []string
//	phones                               [{id, number}]
//	addresses                            [{id, streets, street3, city, state, zip, country}]
//	notes                                map[string]string
//
// and the function getenv(string) string.
package eval
