package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/bbdb/bbdb"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrFilter = errors.New("filter error")

// Filter is a compiled boolean expression over entries.  It is safe for
// concurrent use.
type Filter struct {
	src string
	prg *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(exampleEnv()),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Compile compiles src, which must evaluate to a bool.
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFilter, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string { return f.src }

// Match reports whether e satisfies f.
func (f *Filter) Match(e *bbdb.Entry) (bool, error) {
	res, err := expr.Run(f.prg, EntryEnv(e))
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrFilter, f.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T", ErrFilter, f.src, res)
	}
	return b, nil
}
