// Package parse parses one line of a BBDB file into a concrete parse tree.
//
// # Usage
//
//	n, err := parse.ParseRecord([]byte(`["Jane" "Doe" nil nil nil nil nil nil nil]`))
//	if err != nil {
//	    var se *parse.SyntaxError
//	    errors.As(err, &se) // se.Pos locates the problem
//	    return err
//	}
//
// A record is a vector of objects.  Objects are nil, integers, strings,
// lists, vectors and association lists whose entries have the form
// (key . object).  Symbols, floats and other Lisp reader syntax are
// rejected.
//
// The tree keeps the syntactic distinction between lists and vectors; the
// ir package collapses them.
//
// # Related Packages
//
//   - github.com/signadot/bbdb/token - Tokenization
//   - github.com/signadot/bbdb/ir - Generic values built from parse trees
package parse
