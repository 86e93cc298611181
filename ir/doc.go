// Package ir provides the generic value model for BBDB records.
//
// # Overview
//
// A parsed line is first turned into a tree of [Value]s, a closed tagged
// union with exactly six variants:
//
//   - [Nil]: the absence marker nil
//   - [Integer]: a signed 64-bit integer
//   - [String]: unescaped text
//   - [Collection]: an ordered sequence of values; lists and vectors both
//     become collections
//   - [AList]: an association list, an ordered sequence of [AListEntry]
//   - [AListEntry]: a key and a value
//
// The variants cannot be extended outside this package, so a type switch
// over them is exhaustive.  Values are immutable: their contents are
// unexported and slices are copied in and out.
//
// # Building
//
// [FromParseTree] converts a parse.Node tree into values.  A tree the
// builder does not understand is a [ContractError]: it means the grammar and
// the builder disagree, which is a defect rather than bad input.
//
// # Field Access
//
// Records are positional.  [Get] looks up an index, treating a Nil element
// and an index past the end identically as absent.  [AsString] and
// [AsCollection] add a type assertion on top, failing with a [TypeError]
// naming the index, the expected kind and the actual kind.
//
//	first, err := ir.AsString(rec, 0)   // nil, nil when absent
//	akas, err := ir.AsCollection(rec, 4) // empty when absent
//
// # Related Packages
//
//   - github.com/signadot/bbdb/parse - Produces the parse trees
//   - github.com/signadot/bbdb/bbdb - Decodes values into typed entries
package ir
