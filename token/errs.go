package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated   = errors.New("unterminated string")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode")
	ErrDocBalance     = errors.New("imbalanced record")
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrIntegerRange   = errors.New("integer out of range")
	ErrUnsupported    = errors.New("unsupported")
)

type ErrImbalancedStructure struct {
	Open, Close *Token
}

func (i *ErrImbalancedStructure) Unwrap() error {
	return ErrDocBalance
}

// Pos returns the position best describing the imbalance: the stray
// closing bracket if there is one, otherwise the unmatched opening one.
func (i *ErrImbalancedStructure) Pos() *Pos {
	if i.Close != nil {
		return i.Close.Pos
	}
	return i.Open.Pos
}

func (i *ErrImbalancedStructure) Error() string {
	if i.Open == nil {
		return ErrDocBalance.Error() + ": " + UnexpectedErr(string(i.Close.Bytes), i.Close.Pos).Error()
	}
	if i.Close == nil {
		return ErrDocBalance.Error() + ": " + fmt.Sprintf("unmatched %s at %s", string(i.Open.Bytes),
			i.Open.Pos.String())
	}
	return fmt.Sprintf("%s: %s at %s closed by %s at %s",
		ErrDocBalance.Error(),
		string(i.Open.Bytes), i.Open.Pos.String(),
		string(i.Close.Bytes), i.Close.Pos.String())
}
