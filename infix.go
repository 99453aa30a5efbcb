package notation

import "strings"

// InfixToPostfix converts an infix expression to postfix notation. The
// resulting tokens are separated by a single space each, unary minus is
// represented as "~".
//
//	InfixToPostfix("3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3")  ⇒  "3 4 2 * 1 5 - 2 3 ^ ^ / +"
//
// Errors are of type *LexError or *MismatchedParenthesesError.
func InfixToPostfix(text string) (string, error) {
	out, err := InfixToPostfixTokens(text)
	if err != nil {
		return "", err
	}
	return joinTokens(out), nil
}

// InfixToPostfixTokens converts an infix expression to a sequence of tokens in
// postfix order. Tokens for unary minus are of kind TokenNeg, with text "~".
// Positions refer to the columns of the infix input.
func InfixToPostfixTokens(text string) ([]Token, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return shunt(tokens)
}

// shunt is the shunting-yard algorithm.
//
// It does not check that operands and operators alternate, i.e. "A B" and
// "A +" are converted without complaint. Clients will find out when converting
// the result back to infix.
func shunt(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token // operators and open parentheses
	var prev Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber, TokenIdent:
			out = append(out, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for len(stack) > 0 && stack[len(stack)-1].Kind != TokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &MismatchedParenthesesError{Col: tok.Pos, Paren: ")"}
			}
			stack = stack[:len(stack)-1] // discard "("
		case TokenOp, TokenNeg:
			if tok.Text == "-" && unaryPosition(prev) {
				tracer().Debugf("unary minus at column %d", tok.Pos)
				tok = Token{Text: UnaryMinus, Kind: TokenNeg, Pos: tok.Pos}
			}
			op := mustOp(tok.Text)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TokenOpen || !mustOp(top.Text).binds(op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
		prev = tok
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &MismatchedParenthesesError{Col: top.Pos, Paren: "("}
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// unaryPosition is true if a '-' following prev denotes negation: at the start
// of the expression, after another operator, or after an open parenthesis.
func unaryPosition(prev Token) bool {
	return prev.Kind == TokenNone || prev.IsOperator() || prev.Kind == TokenOpen
}

func joinTokens(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
