package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokSummary struct {
	Type TokenType
	Text string
	Col  int
}

func summarize(toks []Token) []tokSummary {
	res := make([]tokSummary, len(toks))
	for i := range toks {
		res[i] = tokSummary{toks[i].Type, toks[i].String(), toks[i].Pos.Col()}
	}
	return res
}

func TestTokenize(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out []tokSummary
	}{
		{
			in: `["a" nil 12]`,
			out: []tokSummary{
				{TLSquare, "[", 1},
				{TString, "a", 2},
				{TNil, "nil", 6},
				{TInteger, "12", 10},
				{TRSquare, "]", 12},
			},
		},
		{
			in: `((notes . "x y"))`,
			out: []tokSummary{
				{TLParen, "(", 1},
				{TLParen, "(", 2},
				{TSymbol, "notes", 3},
				{TDot, ".", 9},
				{TString, "x y", 11},
				{TRParen, ")", 16},
				{TRParen, ")", 17},
			},
		},
		{
			in: `[-5 +3 "a;b"] ; trailing`,
			out: []tokSummary{
				{TLSquare, "[", 1},
				{TInteger, "-5", 2},
				{TInteger, "+3", 5},
				{TString, "a;b", 8},
				{TRSquare, "]", 13},
			},
		},
		{
			in: `(mail-alias . "a")`,
			out: []tokSummary{
				{TLParen, "(", 1},
				{TSymbol, "mail-alias", 2},
				{TDot, ".", 13},
				{TString, "a", 15},
				{TRParen, ")", 18},
			},
		},
		{
			in:  "  \t ",
			out: []tokSummary{},
		},
	} {
		toks, err := Tokenize(nil, []byte(tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.out, summarize(toks)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		err error
		col int
	}{
		{`["abc]`, ErrUnterminated, 2},
		{`[99999999999999999999]`, ErrIntegerRange, 2},
		{`[1.5]`, ErrUnsupported, 2},
		{`[1e3]`, ErrUnsupported, 2},
		{`['a]`, ErrUnexpectedChar, 2},
		{`[#s(x)]`, ErrUnexpectedChar, 2},
		{`[?a]`, ErrUnexpectedChar, 2},
		{`[ "\u12" ]`, ErrBadUnicode, 4},
	} {
		_, err := Tokenize(nil, []byte(tc.in), TokenLine(7))
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: got %v want %v", tc.in, err, tc.err)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%s: %T is not a *TokenizeErr", tc.in, err)
			continue
		}
		if te.Pos.Col() != tc.col || te.Pos.Line() != 7 {
			t.Errorf("%s: got line %d col %d, want line 7 col %d", tc.in, te.Pos.Line(), te.Pos.Col(), tc.col)
		}
	}
}

func TestBalance(t *testing.T) {
	for _, tc := range []struct {
		in   string
		ok   bool
		open bool
		col  int
	}{
		{in: `[()[]]`, ok: true},
		{in: `[(]`, col: 3},
		{in: `[(])`, col: 3},
		{in: `[]]`, col: 3},
		{in: `[[]`, open: true, col: 1},
	} {
		toks, err := Tokenize(nil, []byte(tc.in))
		if err != nil {
			t.Fatal(err)
		}
		err = Balance(toks)
		if tc.ok {
			if err != nil {
				t.Errorf("%s: %v", tc.in, err)
			}
			continue
		}
		var ib *ErrImbalancedStructure
		if !errors.As(err, &ib) {
			t.Errorf("%s: got %v", tc.in, err)
			continue
		}
		if !errors.Is(err, ErrDocBalance) {
			t.Errorf("%s: not ErrDocBalance", tc.in)
		}
		if (ib.Close == nil) != tc.open {
			t.Errorf("%s: got close %v", tc.in, ib.Close)
		}
		if ib.Pos().Col() != tc.col {
			t.Errorf("%s: got col %d want %d", tc.in, ib.Pos().Col(), tc.col)
		}
	}
}
