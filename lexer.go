package notation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operators contains the runes which are considered to be binary operators
// in infix expressions. A '-' may as well denote unary minus.
const Operators = "+-*/^"

type lexer struct {
	src string
	off int // byte offset of the next rune
	col int // 1-based rune column of the next rune
}

// Tokenize splits an infix expression into tokens. Whitespace separates tokens
// and is skipped otherwise. Numbers are sequences of decimal digits with an
// optional fraction; identifiers start with an ASCII letter or underscore,
// followed by letters, digits or underscores. Any other character than
// operators and parentheses results in a *LexError.
//
// Tokenize does not tell unary minus from binary subtraction; every '-' is
// returned as a TokenOp.
func Tokenize(text string) ([]Token, error) {
	l := &lexer{src: text, col: 1}
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenNone {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// next scans the next token. At the end of the input, the result is a token
// of kind TokenNone.
func (l *lexer) next() (Token, error) {
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		tok := Token{Pos: l.col}
		switch {
		case unicode.IsSpace(r):
			l.advance(sz)
			continue
		case isDigit(r):
			tok.Text = l.scanNum()
			tok.Kind = TokenNumber
		case r == '_' || isLetter(r):
			tok.Text = l.scanIdent()
			tok.Kind = TokenIdent
		case r == '(':
			l.advance(sz)
			tok.Text, tok.Kind = "(", TokenOpen
		case r == ')':
			l.advance(sz)
			tok.Text, tok.Kind = ")", TokenClose
		case strings.ContainsRune(Operators, r):
			l.advance(sz)
			tok.Text, tok.Kind = string(r), TokenOp
		default:
			return tok, &LexError{Char: r, Input: l.src, Col: l.col}
		}
		return tok, nil
	}
	return Token{}, nil
}

func (l *lexer) advance(sz int) {
	l.off += sz
	l.col++
}

// peek returns the byte at offset k from the current position, or 0.
func (l *lexer) peek(k int) byte {
	if l.off+k < len(l.src) {
		return l.src[l.off+k]
	}
	return 0
}

// scanNum scans digits, followed by an optional fraction. A decimal point
// without a digit following it is not part of the number.
func (l *lexer) scanNum() string {
	start := l.off
	for isDigit(rune(l.peek(0))) {
		l.advance(1)
	}
	if l.peek(0) == '.' && isDigit(rune(l.peek(1))) {
		l.advance(1)
		for isDigit(rune(l.peek(0))) {
			l.advance(1)
		}
	}
	return l.src[start:l.off]
}

// scanIdent scans an identifier. The caller has checked the first rune.
func (l *lexer) scanIdent() string {
	start := l.off
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.advance(sz)
	}
	return l.src[start:l.off]
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
