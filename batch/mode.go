package batch

import (
	"fmt"
	"strings"

	"github.com/npillmayer/notation"
)

// Mode selects the direction of conversion.
type Mode int

const (
	// InfixToPostfix converts infix expressions to postfix notation.
	InfixToPostfix Mode = iota + 1
	// PostfixToInfix converts postfix expressions to infix notation.
	PostfixToInfix
)

func (m Mode) String() string {
	switch m {
	case InfixToPostfix:
		return "infix2postfix"
	case PostfixToInfix:
		return "postfix2infix"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode for its textual name. Case is ignored.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infix2postfix":
		return InfixToPostfix, nil
	case "postfix2infix":
		return PostfixToInfix, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Convert converts a single expression.
func (m Mode) Convert(expr string) (string, error) {
	switch m {
	case InfixToPostfix:
		return notation.InfixToPostfix(expr)
	case PostfixToInfix:
		return notation.PostfixToInfix(expr)
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownMode, m)
}

// Diagnostic formats the comment line which replaces the output of a line
// that failed to convert.
func Diagnostic(line int, err error) string {
	return fmt.Sprintf("# Error on line %d: %s", line, err.Error())
}
