package notation

// UnaryMinus is the postfix spelling of negation.
const UnaryMinus = "~"

// atomicPrec is the precedence of an operand. It binds tighter than any
// operator.
const atomicPrec = 100

// operator describes an entry of the precedence table.
type operator struct {
	sym   string
	prec  int
	right bool // right-associative
	arity int
}

// lookupOp finds the operator for a symbol. The table is fixed; there is no
// way for clients to alter it.
func lookupOp(sym string) (operator, bool) {
	switch sym {
	case UnaryMinus:
		return operator{sym: sym, prec: 5, right: true, arity: 1}, true
	case "^":
		return operator{sym: sym, prec: 4, right: true, arity: 2}, true
	case "*", "/":
		return operator{sym: sym, prec: 3, arity: 2}, true
	case "+", "-":
		return operator{sym: sym, prec: 2, arity: 2}, true
	}
	return operator{}, false
}

// mustOp is lookupOp for symbols the lexer has already classified.
func mustOp(sym string) operator {
	op, ok := lookupOp(sym)
	if !ok {
		panic("notation: no operator for " + sym)
	}
	return op
}

// binds reports whether an operator on the stack has to be output before
// pushing op.
func (top operator) binds(op operator) bool {
	return top.prec > op.prec || (top.prec == op.prec && !op.right)
}
