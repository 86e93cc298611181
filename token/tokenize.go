package token

import (
	"fmt"
	"strconv"
)

type tkOpts struct {
	line int
}

type TokenOpt func(*tkOpts)

// TokenLine sets the 1-based line number recorded in token positions.
func TokenLine(n int) TokenOpt {
	return func(o *tkOpts) { o.line = n }
}

// Tokenize appends the tokens of the line src to dst.  A ';' outside of a
// string starts a comment running to the end of src.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	o := &tkOpts{}
	for _, f := range opts {
		f(o)
	}
	doc := NewPosDoc(src, o.line)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			i++
			continue
		case ';':
			return dst, nil
		case '(':
			dst = append(dst, Token{Type: TLParen, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ')':
			dst = append(dst, Token{Type: TRParen, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: doc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '"':
			_, sz, err := readQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, doc.Pos(i+sz))
			}
			dst = append(dst, Token{Type: TString, Pos: doc.Pos(i), Bytes: src[i : i+sz]})
			i += sz
		case '\'', '`', ',', '#', '?':
			return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrUnexpectedChar, c), doc.Pos(i))
		default:
			j := atomEnd(src, i)
			tok, err := atom(src[i:j], doc.Pos(i))
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i = j
		}
	}
	return dst, nil
}

func atomEnd(d []byte, i int) int {
	for i < len(d) && !isDelim(d[i]) {
		i++
	}
	return i
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v', '(', ')', '[', ']', '"', ';', '\'', '`', ',':
		return true
	}
	return false
}

func atom(d []byte, pos *Pos) (Token, error) {
	tok := Token{Pos: pos, Bytes: d}
	s := string(d)
	switch {
	case s == "nil":
		tok.Type = TNil
	case s == ".":
		tok.Type = TDot
	case isInteger(d):
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			return Token{}, NewTokenizeErr(fmt.Errorf("%w: %s", ErrIntegerRange, s), pos)
		}
		tok.Type = TInteger
	case looksNumeric(d):
		return Token{}, NewTokenizeErr(fmt.Errorf("%w: non-integer number %s", ErrUnsupported, s), pos)
	default:
		tok.Type = TSymbol
	}
	return tok, nil
}

func isInteger(d []byte) bool {
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	if len(d) == 0 {
		return false
	}
	for _, c := range d {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func looksNumeric(d []byte) bool {
	if len(d) > 0 && (d[0] == '+' || d[0] == '-' || d[0] == '.') {
		d = d[1:]
	}
	return len(d) > 0 && d[0] >= '0' && d[0] <= '9'
}
