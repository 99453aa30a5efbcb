package notation

import "strings"

// term is a partially rendered infix expression. prec and arity decide
// whether it has to be parenthesized when it becomes the operand of another
// operator.
type term struct {
	text  string
	prec  int
	arity int // 0 for operands, 1 for unary minus, 2 for binary operators
}

// PostfixToInfix converts a postfix expression, consisting of whitespace
// delimited tokens, to infix notation. Every token which is not an
// operator (+ - * / ^ ~) is taken as an operand verbatim.
//
// Parentheses are inserted where necessary:
//
//	PostfixToInfix("A B C + * D E / -")  ⇒  "A * (B + C) - D / E"
//	PostfixToInfix("A ~ B +")            ⇒  "-A + B"
//
// Errors are of type *InsufficientOperandsError or *InvalidExpressionError.
func PostfixToInfix(text string) (string, error) {
	tokens := strings.Fields(text)
	var stack []term
	for i, tok := range tokens {
		op, ok := lookupOp(tok)
		if !ok {
			stack = append(stack, term{text: tok, prec: atomicPrec})
			continue
		}
		if len(stack) < op.arity {
			return "", &InsufficientOperandsError{
				Index:    i + 1,
				Operator: tok,
				Have:     len(stack),
				Need:     op.arity,
			}
		}
		if op.arity == 1 {
			a := stack[len(stack)-1]
			stack[len(stack)-1] = term{
				text:  "-" + a.wrap(a.arity != 0 && a.prec < op.prec),
				prec:  op.prec,
				arity: 1,
			}
			continue
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-1]
		stack[len(stack)-1] = term{
			text:  a.wrap(a.leftOf(op)) + " " + op.sym + " " + b.wrap(b.rightOf(op)),
			prec:  op.prec,
			arity: 2,
		}
	}
	if len(stack) != 1 {
		tracer().Debugf("postfix expression reduced to %d terms", len(stack))
		return "", &InvalidExpressionError{Index: len(tokens), Remaining: len(stack)}
	}
	return stack[0].text, nil
}

// leftOf reports whether t needs parentheses as the left operand of op.
// As ^ is right-associative, a left operand of equal precedence has to be
// grouped explicitly.
func (t term) leftOf(op operator) bool {
	if t.arity == 0 {
		return false
	}
	return t.prec < op.prec || (t.prec == op.prec && op.sym == "^")
}

// rightOf reports whether t needs parentheses as the right operand of op.
// Subtraction and division do not re-associate, so a right operand of equal
// precedence has to be grouped explicitly.
func (t term) rightOf(op operator) bool {
	if t.arity == 0 {
		return false
	}
	return t.prec < op.prec || (t.prec == op.prec && (op.sym == "-" || op.sym == "/"))
}

func (t term) wrap(paren bool) string {
	if paren {
		return "(" + t.text + ")"
	}
	return t.text
}
