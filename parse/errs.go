package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/bbdb/token"
)

var (
	ErrSyntax          = errors.New("syntax error")
	ErrEmptyRecord     = errors.New("empty record")
	ErrTooDeep         = errors.New("nesting too deep")
	ErrTrailing        = errors.New("trailing data after record")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// SyntaxError reports a line which does not conform to the record grammar.
// It matches both ErrSyntax and the underlying cause under errors.Is.
type SyntaxError struct {
	Pos token.Pos
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at col %d: %s", ErrSyntax, e.Pos.Col(), e.Err)
}

func (e *SyntaxError) Unwrap() []error {
	return []error{ErrSyntax, e.Err}
}

func newSyntaxError(err error, pos *token.Pos) *SyntaxError {
	return &SyntaxError{Pos: *pos, Err: err}
}

// syntaxErr converts errors from the token package into a *SyntaxError.
func syntaxErr(err error) error {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return &SyntaxError{Pos: te.Pos, Err: te.Err}
	}
	var ib *token.ErrImbalancedStructure
	if errors.As(err, &ib) {
		return newSyntaxError(ib, ib.Pos())
	}
	return err
}

func unexpected(t *token.Token, want string) *SyntaxError {
	return newSyntaxError(fmt.Errorf("%w %q, expected %s", ErrUnexpectedToken, t.Bytes, want), t.Pos)
}
