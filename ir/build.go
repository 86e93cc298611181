package ir

import (
	"fmt"
	"strconv"

	"github.com/signadot/bbdb/debug"
	"github.com/signadot/bbdb/parse"
)

// FromParseTree builds the generic value of the parse tree n.  The only
// error it returns is a *ContractError.
func FromParseTree(n *parse.Node) (Value, error) {
	v, err := build(n)
	if err != nil {
		return nil, err
	}
	if debug.Build() {
		debug.Logf("built %s\n", v)
	}
	return v, nil
}

func build(n *parse.Node) (Value, error) {
	if n == nil {
		return nil, &ContractError{Message: "missing node"}
	}
	switch n.Kind {
	case parse.NilNode:
		if err := leaf(n); err != nil {
			return nil, err
		}
		return Null(), nil
	case parse.IntegerNode:
		if err := leaf(n); err != nil {
			return nil, err
		}
		i, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return nil, contractErr(n, fmt.Sprintf("invalid integer %q: %v", n.Text, err))
		}
		return FromInt(i), nil
	case parse.StringNode:
		if err := leaf(n); err != nil {
			return nil, err
		}
		return FromString(n.Text), nil
	case parse.ListNode, parse.VectorNode:
		items := make([]Value, len(n.Children))
		for i, c := range n.Children {
			v, err := build(c)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return Collection{items: items}, nil
	case parse.AListNode:
		entries := make([]AListEntry, len(n.Children))
		for i, c := range n.Children {
			if c == nil || c.Kind != parse.AListEntryNode {
				return nil, contractErr(n, fmt.Sprintf("child %d is not an association", i))
			}
			e, err := buildEntry(c)
			if err != nil {
				return nil, err
			}
			entries[i] = e
		}
		return AList{entries: entries}, nil
	case parse.AListEntryNode:
		e, err := buildEntry(n)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, contractErr(n, "unknown node kind")
	}
}

func buildEntry(n *parse.Node) (AListEntry, error) {
	if len(n.Children) != 1 {
		return AListEntry{}, contractErr(n, fmt.Sprintf("association has %d values", len(n.Children)))
	}
	v, err := build(n.Children[0])
	if err != nil {
		return AListEntry{}, err
	}
	return AListEntry{key: n.Text, val: v}, nil
}

func leaf(n *parse.Node) error {
	if len(n.Children) != 0 {
		return contractErr(n, "atom has children")
	}
	return nil
}

func contractErr(n *parse.Node, msg string) *ContractError {
	return &ContractError{Kind: n.Kind, Pos: n.Pos, Message: msg}
}
