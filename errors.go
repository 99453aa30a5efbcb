package notation

import (
	"strconv"
)

// LexError indicates a character which is not part of the expression
// alphabet. It implements InputError.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Input is the complete expression which was being tokenized.
	Input string
	// Col is the 1-based rune column of Char within Input.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char)+
		" in expression: "+err.Input)
}

func (err *LexError) Pos() int {
	return err.Col
}

// MismatchedParenthesesError indicates a closing parenthesis without an
// opening one, or an opening parenthesis which is never closed.
// It implements InputError.
type MismatchedParenthesesError struct {
	// Col is the column of the unmatched parenthesis. For an unclosed "(" it
	// is the column of the innermost unclosed one.
	Col int
	// Paren is the unmatched parenthesis, "(" or ")".
	Paren string
}

func (err *MismatchedParenthesesError) Error() string {
	if err.Paren == "(" {
		return errpos(err.Col, "mismatched parentheses: ( is never closed")
	}
	return errpos(err.Col, "mismatched parentheses: ) with no matching (")
}

func (err *MismatchedParenthesesError) Pos() int {
	return err.Col
}

// InsufficientOperandsError indicates an operator in a postfix expression
// which finds fewer operands than it requires. It implements InputError.
type InsufficientOperandsError struct {
	// Index is the 1-based position of the operator in the token sequence.
	Index int
	// Operator is the operator's symbol.
	Operator string
	// Have is the number of operands that were available.
	Have int
	// Need is the arity of the operator.
	Need int
}

func (err *InsufficientOperandsError) Error() string {
	s := "insufficient operands for " + err.Operator
	if err.Need == 1 {
		s = "insufficient operands for unary operator " + err.Operator
	}
	return errpos(err.Index, s+" (have "+strconv.Itoa(err.Have)+", need "+
		strconv.Itoa(err.Need)+")")
}

func (err *InsufficientOperandsError) Pos() int {
	return err.Index
}

// InvalidExpressionError indicates a postfix expression which does not
// reduce to exactly one term. It implements InputError.
type InvalidExpressionError struct {
	// Index is the number of tokens consumed.
	Index int
	// Remaining is the number of terms left over; 0 for empty input.
	Remaining int
}

func (err *InvalidExpressionError) Error() string {
	if err.Remaining == 0 {
		return errpos(err.Index, "invalid postfix expression: no terms")
	}
	return errpos(err.Index, "invalid postfix expression: "+strconv.Itoa(err.Remaining)+
		" terms remain")
}

func (err *InvalidExpressionError) Pos() int {
	return err.Index
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error. For infix input, this is the
	// rune column; for postfix input, it is the index of the token.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*MismatchedParenthesesError)(nil)
	_ InputError = (*InsufficientOperandsError)(nil)
	_ InputError = (*InvalidExpressionError)(nil)
)
