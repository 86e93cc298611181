package ir

import (
	"errors"
	"fmt"

	"github.com/signadot/bbdb/parse"
	"github.com/signadot/bbdb/token"
)

var (
	ErrGrammarContract = errors.New("grammar contract violation")
	ErrTypeMismatch    = errors.New("type mismatch")
)

// ContractError reports a parse tree the builder cannot represent.  It is
// never caused by input data alone.
type ContractError struct {
	Kind    parse.Kind
	Pos     *token.Pos
	Message string
}

func (e *ContractError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s: %s node at col %d: %s", ErrGrammarContract, e.Kind, e.Pos.Col(), e.Message)
	}
	return fmt.Sprintf("%s: %s node: %s", ErrGrammarContract, e.Kind, e.Message)
}

func (e *ContractError) Unwrap() error {
	return ErrGrammarContract
}

// TypeError reports a value present at Index whose kind is not the
// expected one.  Expected and Actual are kind labels as given by Classify.
type TypeError struct {
	Index    int
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("index %d: expected %s, got %s", e.Index, e.Expected, e.Actual)
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
