package parse

import "github.com/signadot/bbdb/token"

// DefaultMaxDepth bounds the nesting of brackets in a record.
const DefaultMaxDepth = 256

type parseOpts struct {
	line     int
	maxDepth int
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.TokenLine(o.line)}
}

type ParseOption func(*parseOpts)

// WithLine records the 1-based line number of the record in positions.
func WithLine(n int) ParseOption {
	return func(o *parseOpts) { o.line = n }
}

// MaxDepth sets the maximum bracket nesting accepted.  Values < 1 restore
// the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}
