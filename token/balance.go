package token

// Balance checks that every opening bracket in toks is closed by a bracket
// of the same shape, returning an *ErrImbalancedStructure otherwise.
func Balance(toks []Token) error {
	var stack []*Token
	for i := range toks {
		t := &toks[i]
		switch {
		case t.Type.IsOpen():
			stack = append(stack, t)
		case t.Type.IsClose():
			if len(stack) == 0 {
				return &ErrImbalancedStructure{Close: t}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !closes(open.Type, t.Type) {
				return &ErrImbalancedStructure{Open: open, Close: t}
			}
		}
	}
	if len(stack) != 0 {
		return &ErrImbalancedStructure{Open: stack[len(stack)-1]}
	}
	return nil
}

func closes(open, close TokenType) bool {
	switch open {
	case TLParen:
		return close == TRParen
	case TLSquare:
		return close == TRSquare
	}
	return false
}
