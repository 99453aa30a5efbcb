package notation

import "strconv"

// TokenKind classifies the tokens of an expression.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNumber is a decimal number with an optional fraction, e.g. 2.75.
	TokenNumber
	// TokenIdent is a variable name.
	TokenIdent
	// TokenOp is one of the binary operators + - * / ^.
	TokenOp
	// TokenNeg is a unary minus. It is spelled "-" in infix and "~" in postfix.
	TokenNeg
	// TokenOpen is an opening parenthesis.
	TokenOpen
	// TokenClose is a closing parenthesis.
	TokenClose
)

var kindNames = [...]string{"None", "Number", "Ident", "Op", "Neg", "Open", "Close"}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Token is a lexical unit of an expression.
type Token struct {
	Text string    // verbatim text, "~" for unary minus
	Kind TokenKind // token category
	Pos  int       // 1-based rune column of the token's first character
}

// IsOperand is true for numbers and identifiers.
func (t Token) IsOperand() bool {
	return t.Kind == TokenNumber || t.Kind == TokenIdent
}

// IsOperator is true for binary operators and unary minus.
func (t Token) IsOperator() bool {
	return t.Kind == TokenOp || t.Kind == TokenNeg
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}
