package parse

import (
	"fmt"

	"github.com/signadot/bbdb/debug"
	"github.com/signadot/bbdb/token"
)

// ParseRecord parses d, one line of a BBDB file, into the parse tree of a
// record.  Any failure is reported as a *SyntaxError.
func ParseRecord(d []byte, opts ...ParseOption) (*Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, syntaxErr(err)
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("token %s\n", toks[i].Info())
		}
	}
	if len(toks) == 0 {
		return nil, newSyntaxError(ErrEmptyRecord, token.NewPosDoc(d, pOpts.line).End())
	}
	if err := token.Balance(toks); err != nil {
		return nil, syntaxErr(err)
	}
	if toks[0].Type != token.TLSquare {
		return nil, unexpected(&toks[0], "[ opening a record")
	}
	p := &parser{toks: toks, opts: pOpts}
	res, err := p.object(0)
	if err != nil {
		return nil, err
	}
	if p.i < len(toks) {
		return nil, newSyntaxError(ErrTrailing, toks[p.i].Pos)
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

// next returns the next token.  Balanced input guarantees that a closing
// bracket follows every opening one, so running out of tokens can only
// happen at the top level.
func (p *parser) next() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	t := &p.toks[p.i]
	p.i++
	return t
}

func (p *parser) peek(off int) *token.Token {
	j := p.i + off
	if j >= len(p.toks) {
		return nil
	}
	return &p.toks[j]
}

func (p *parser) object(depth int) (*Node, error) {
	t := p.next()
	if t == nil {
		last := &p.toks[len(p.toks)-1]
		return nil, newSyntaxError(fmt.Errorf("%w: unexpected end of record", ErrUnexpectedToken), last.Pos)
	}
	if depth >= p.opts.maxDepth && t.Type.IsOpen() {
		return nil, newSyntaxError(fmt.Errorf("%w: more than %d levels", ErrTooDeep, p.opts.maxDepth), t.Pos)
	}
	switch t.Type {
	case token.TNil:
		return &Node{Kind: NilNode, Pos: t.Pos, Text: "nil"}, nil
	case token.TInteger:
		return &Node{Kind: IntegerNode, Pos: t.Pos, Text: string(t.Bytes)}, nil
	case token.TString:
		return &Node{Kind: StringNode, Pos: t.Pos, Text: t.String()}, nil
	case token.TLSquare:
		return p.seq(&Node{Kind: VectorNode, Pos: t.Pos}, token.TRSquare, depth)
	case token.TLParen:
		if p.atAList() {
			return p.alist(&Node{Kind: AListNode, Pos: t.Pos}, depth)
		}
		return p.seq(&Node{Kind: ListNode, Pos: t.Pos}, token.TRParen, depth)
	case token.TSymbol:
		return nil, newSyntaxError(fmt.Errorf("%w: symbol %s", token.ErrUnsupported, t.Bytes), t.Pos)
	default:
		return nil, unexpected(t, "an object")
	}
}

// atAList reports whether the form just opened is an association list,
// that is whether it continues with "( key .".
func (p *parser) atAList() bool {
	a, b, c := p.peek(0), p.peek(1), p.peek(2)
	if a == nil || b == nil || c == nil {
		return false
	}
	return a.Type == token.TLParen && b.Type == token.TSymbol && c.Type == token.TDot
}

func (p *parser) seq(n *Node, close token.TokenType, depth int) (*Node, error) {
	n.Children = []*Node{}
	for {
		t := p.peek(0)
		if t == nil {
			return nil, newSyntaxError(fmt.Errorf("%w: unexpected end of record", ErrUnexpectedToken), n.Pos)
		}
		if t.Type == close {
			p.i++
			return n, nil
		}
		child, err := p.object(depth + 1)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
}

func (p *parser) alist(n *Node, depth int) (*Node, error) {
	n.Children = []*Node{}
	for {
		t := p.next()
		if t == nil {
			return nil, newSyntaxError(fmt.Errorf("%w: unexpected end of record", ErrUnexpectedToken), n.Pos)
		}
		if t.Type == token.TRParen {
			return n, nil
		}
		if t.Type != token.TLParen {
			return nil, unexpected(t, "( opening an association")
		}
		ent, err := p.alistEntry(t, depth+1)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, ent)
	}
}

// alistEntry parses the remainder of "( key . object )" after its opening
// parenthesis open.
func (p *parser) alistEntry(open *token.Token, depth int) (*Node, error) {
	key := p.next()
	if key == nil || key.Type != token.TSymbol {
		return nil, p.unexpectedAt(key, open, "an association key")
	}
	dot := p.next()
	if dot == nil || dot.Type != token.TDot {
		return nil, p.unexpectedAt(dot, open, ".")
	}
	val, err := p.object(depth + 1)
	if err != nil {
		return nil, err
	}
	end := p.next()
	if end == nil || end.Type != token.TRParen {
		return nil, p.unexpectedAt(end, open, ") closing the association")
	}
	return &Node{
		Kind:     AListEntryNode,
		Pos:      open.Pos,
		Text:     string(key.Bytes),
		Children: []*Node{val},
	}, nil
}

func (p *parser) unexpectedAt(t, open *token.Token, want string) error {
	if t == nil {
		return newSyntaxError(fmt.Errorf("%w: unexpected end of record, expected %s", ErrUnexpectedToken, want), open.Pos)
	}
	return unexpected(t, want)
}
