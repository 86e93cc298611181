// Package token provides tokenization support for single BBDB record lines.
//
// [Tokenize] splits one line of text into tokens carrying their positions.
// Strings are validated while tokenizing, so [Token.String] never fails on a
// token produced by [Tokenize].
//
// [Balance] checks that the brackets of a token sequence pair up, so that the
// parser only ever sees balanced input.
package token
