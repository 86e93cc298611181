package parse

import (
	"fmt"

	"github.com/signadot/bbdb/token"
)

type Kind int

const (
	NilNode Kind = iota
	IntegerNode
	StringNode
	ListNode
	VectorNode
	AListNode
	AListEntryNode
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NilNode:        "nil",
		IntegerNode:    "integer",
		StringNode:     "string",
		ListNode:       "list",
		VectorNode:     "vector",
		AListNode:      "alist",
		AListEntryNode: "alist-entry",
	}[k]
	if ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is a node of the concrete parse tree of a record.
//
// Text holds the digits of an IntegerNode, the unescaped content of a
// StringNode and the key of an AListEntryNode.  Children holds the elements
// of ListNode and VectorNode, the entries of an AListNode, and the single
// value of an AListEntryNode.
type Node struct {
	Kind     Kind
	Pos      *token.Pos
	Text     string
	Children []*Node
}
