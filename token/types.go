package token

import (
	"fmt"
)

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TLSquare
	TRSquare
	TDot
	TNil
	TInteger
	TString
	TSymbol
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TDot:     "TDot",
		TNil:     "TNil",
		TInteger: "TInteger",
		TString:  "TString",
		TSymbol:  "TSymbol",
	}[t]
	if ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsOpen reports whether t opens a bracketed form.
func (t TokenType) IsOpen() bool {
	return t == TLParen || t == TLSquare
}

// IsClose reports whether t closes a bracketed form.
func (t TokenType) IsClose() bool {
	return t == TRParen || t == TRSquare
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the text of the token.  For TString tokens, this is the
// unescaped content without the surrounding quotes.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
